// Package speech talks to the ASR/TTS provider. Everything here is
// best-effort: callers log failures and move on, and nothing in this package
// may be invoked while session-store locks are held.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/adarsh8081/e-waste-management/internal/config"
)

// Service issues recognition and synthesis calls over HTTP.
type Service struct {
	asrEndpoint string
	ttsEndpoint string
	apiKey      string
	voice       string
	client      *http.Client
}

// NewService builds the speech service, or returns nil when neither endpoint
// is configured so callers can treat voice as absent.
func NewService(cfg config.SpeechConfig) *Service {
	if !cfg.Enabled {
		return nil
	}
	return &Service{
		asrEndpoint: cfg.ASREndpoint,
		ttsEndpoint: cfg.TTSEndpoint,
		apiKey:      cfg.APIKey,
		voice:       cfg.Voice,
		client:      &http.Client{Timeout: cfg.Timeout},
	}
}

// Recognize transcribes audio into text.
func (s *Service) Recognize(ctx context.Context, audio []byte, format, language string) (string, error) {
	if s.asrEndpoint == "" {
		return "", fmt.Errorf("speech recognition not configured")
	}

	endpoint := s.asrEndpoint + "?" + url.Values{
		"format":   {format},
		"language": {language},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("build asr request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call asr endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("asr endpoint returned %d", resp.StatusCode)
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode asr response: %w", err)
	}
	return out.Text, nil
}

// Synthesize renders text into audio in the given language.
func (s *Service) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	if s.ttsEndpoint == "" {
		return nil, fmt.Errorf("speech synthesis not configured")
	}

	body, err := json.Marshal(map[string]string{
		"text":     text,
		"voice":    s.voice,
		"language": language,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal tts request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.ttsEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build tts request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call tts endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts endpoint returned %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tts audio: %w", err)
	}
	return audio, nil
}

func (s *Service) authorize(req *http.Request) {
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}
}

// Package language wraps best-effort language detection and translation, and
// owns the process-scoped language/audio preference. Detection and
// translation are fail-open: on any provider trouble the caller gets back
// usable text, never an error.
package language

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/abadojack/whatlanggo"

	"github.com/adarsh8081/e-waste-management/internal/model/lang"
)

// Provider performs remote text translation.
type Provider interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Service is safe for concurrent use by HTTP handlers.
type Service struct {
	provider Provider

	mu   sync.Mutex
	pref lang.Preference
}

// NewService builds the service. provider may be nil; translation then
// passes text through unchanged.
func NewService(provider Provider) *Service {
	return &Service{
		provider: provider,
		pref:     lang.Preference{Code: lang.Default},
	}
}

// DetectLanguage guesses the language code of text. Unrecognizable or
// unsupported input resolves to "en".
func (s *Service) DetectLanguage(text string) string {
	if strings.TrimSpace(text) == "" {
		return lang.Default
	}

	info := whatlanggo.Detect(text)
	code := info.Lang.Iso6391()
	if code == "" || !lang.IsSupported(code) {
		return lang.Default
	}
	return code
}

// Translate converts text into the target language. When the detected source
// already matches the target, or the provider is absent or errors, the input
// is returned unchanged.
func (s *Service) Translate(ctx context.Context, text, target string) string {
	if strings.TrimSpace(text) == "" || !lang.IsSupported(target) {
		return text
	}

	source := s.DetectLanguage(text)
	if source == target {
		return text
	}

	if s.provider == nil {
		return text
	}

	translated, err := s.provider.Translate(ctx, text, source, target)
	if err != nil || strings.TrimSpace(translated) == "" {
		log.Printf("[language] translation %s→%s failed, returning original: %v", source, target, err)
		return text
	}
	return translated
}

// Preference returns the current language/audio preference.
func (s *Service) Preference() lang.Preference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pref
}

// SetLanguage switches the preferred response language. Codes outside the
// supported set are rejected with the full list echoed back.
func (s *Service) SetLanguage(code string) error {
	if !lang.IsSupported(code) {
		var list []string
		for _, c := range lang.Codes() {
			list = append(list, fmt.Sprintf("%s: %s", c, lang.Name(c)))
		}
		return fmt.Errorf("language not supported. Supported languages: %s", strings.Join(list, ", "))
	}

	s.mu.Lock()
	s.pref.Code = code
	s.mu.Unlock()
	return nil
}

// SetAudio toggles spoken replies.
func (s *Service) SetAudio(enabled bool) {
	s.mu.Lock()
	s.pref.AudioEnabled = enabled
	s.mu.Unlock()
}

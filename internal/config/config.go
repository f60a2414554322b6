package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates every configurable piece of the service.
type Config struct {
	Server     ServerConfig
	AI         AIConfig
	Store      StoreConfig
	Translate  TranslateConfig
	Speech     SpeechConfig
	Classifier ClassifierConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	speech, err := loadSpeechConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:     server,
		AI:         ai,
		Store:      loadStoreConfig(),
		Translate:  loadTranslateConfig(),
		Speech:     speech,
		Classifier: loadClassifierConfig(),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "5000"
	}

	if strings.Contains(port, ":") {
		// Accept ":5000" or "127.0.0.1:5000" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the generative model and the retry budget around it.
type AIConfig struct {
	APIKey      string
	AccessKey   string
	SecretKey   string
	Model       string
	BaseURL     string
	Region      string
	Temperature *float64
	TopP        *float64
	MaxTokens   *int

	// Timeout bounds a single Ask call end to end; MaxRetries and Backoff
	// govern the attempts inside that budget. HandshakeTimeout is the
	// shorter bound used while warming the model during startup.
	Timeout          time.Duration
	MaxRetries       int
	Backoff          time.Duration
	HandshakeTimeout time.Duration
}

// Enabled reports whether credentials for the primary model were provided.
// Without them the service runs on the deterministic fallback alone.
func (c AIConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewChatModel builds the configured Ark chat model.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("ark credentials or model missing: provide ARK_API_KEY + AI_MODEL, or AK/SK pair")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("AI_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("AI_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("AI_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	timeout, err := parseDurationEnv("AI_TIMEOUT", 10*time.Second)
	if err != nil {
		return AIConfig{}, err
	}

	backoff, err := parseDurationEnv("AI_RETRY_BACKOFF", 2*time.Second)
	if err != nil {
		return AIConfig{}, err
	}

	handshake, err := parseDurationEnv("AI_HANDSHAKE_TIMEOUT", 5*time.Second)
	if err != nil {
		return AIConfig{}, err
	}

	maxRetries := 2
	override, err := parseOptionalIntEnv("AI_MAX_RETRIES")
	if err != nil {
		return AIConfig{}, err
	}
	if override != nil && *override > 0 {
		maxRetries = *override
	}

	return AIConfig{
		APIKey:           strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:        strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:        strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:            strings.TrimSpace(os.Getenv("AI_MODEL")),
		BaseURL:          getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:           getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature:      temperature,
		TopP:             topP,
		MaxTokens:        maxTokens,
		Timeout:          timeout,
		MaxRetries:       maxRetries,
		Backoff:          backoff,
		HandshakeTimeout: handshake,
	}, nil
}

// StoreConfig locates the durable chat-history record.
type StoreConfig struct {
	HistoryFile string
}

func loadStoreConfig() StoreConfig {
	return StoreConfig{
		HistoryFile: getEnvOrDefault("CHAT_HISTORY_FILE", "chat_history/chat_history.json"),
	}
}

// TranslateConfig points at the translation provider. An empty endpoint
// disables remote translation; the language service then passes text through.
type TranslateConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

func loadTranslateConfig() TranslateConfig {
	return TranslateConfig{
		Endpoint: strings.TrimSpace(os.Getenv("TRANSLATE_ENDPOINT")),
		APIKey:   strings.TrimSpace(os.Getenv("TRANSLATE_API_KEY")),
		Timeout:  5 * time.Second,
	}
}

// SpeechConfig describes the ASR/TTS provider endpoints. Both are optional;
// voice features degrade to no-ops when unset.
type SpeechConfig struct {
	ASREndpoint string
	TTSEndpoint string
	APIKey      string
	Voice       string
	Timeout     time.Duration
	Enabled     bool
}

func loadSpeechConfig() (SpeechConfig, error) {
	timeout, err := parseDurationEnv("SPEECH_TIMEOUT", 15*time.Second)
	if err != nil {
		return SpeechConfig{}, err
	}

	asr := strings.TrimSpace(os.Getenv("SPEECH_ASR_ENDPOINT"))
	tts := strings.TrimSpace(os.Getenv("SPEECH_TTS_ENDPOINT"))

	return SpeechConfig{
		ASREndpoint: asr,
		TTSEndpoint: tts,
		APIKey:      strings.TrimSpace(os.Getenv("SPEECH_API_KEY")),
		Voice:       getEnvOrDefault("SPEECH_TTS_VOICE", "default"),
		Timeout:     timeout,
		Enabled:     asr != "" || tts != "",
	}, nil
}

// ClassifierConfig points at the external image classifier service.
type ClassifierConfig struct {
	Endpoint string
	Timeout  time.Duration
}

func loadClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Endpoint: strings.TrimSpace(os.Getenv("CLASSIFIER_ENDPOINT")),
		Timeout:  30 * time.Second,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

package genai

import (
	"context"
	"fmt"
)

// Turn is a single exchange in a multi-turn chat history.
type Turn struct {
	Role string // "user" or "model"
	Text string
}

// Provider interface for generative AI backends
type Provider interface {
	// GenerateText returns plain text for a prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// GenerateJSON requests a structured response and decodes it into out.
	// A malformed response is reported as an error; out is left untouched.
	GenerateJSON(ctx context.Context, prompt string, out interface{}) error
	// GenerateImage returns base64-encoded PNG bytes. An empty string with a
	// nil error means the model produced no image payload.
	GenerateImage(ctx context.Context, prompt string) (string, error)
	// SynthesizeSpeech returns decoded audio bytes (raw PCM for Gemini).
	SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error)
	// Chat generates a contextual reply given prior history plus a new message.
	Chat(ctx context.Context, systemPrompt string, history []Turn, message string) (string, error)
	GetProviderName() string
}

// ProviderType for factory
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOpenAI ProviderType = "openai"
)

// ProviderConfig to create a provider
type ProviderConfig struct {
	Type ProviderType

	// API Keys
	GeminiKey string
	OpenAIKey string

	// Model configs
	TextModel   string
	ImageModel  string
	SpeechModel string
	Temperature float32
	MaxTokens   int
}

// NewProvider factory to create a generative AI provider
func NewProvider(cfg *ProviderConfig) (Provider, error) {
	switch cfg.Type {
	case ProviderGemini:
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required")
		}
		return NewGeminiProvider(cfg.GeminiKey, cfg.TextModel, cfg.ImageModel, cfg.SpeechModel, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.TextModel, cfg.ImageModel, cfg.SpeechModel, cfg.Temperature, cfg.MaxTokens), nil

	default:
		return nil, fmt.Errorf("unknown AI provider type: %s", cfg.Type)
	}
}

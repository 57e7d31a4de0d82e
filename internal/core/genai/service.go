package genai

import (
	"context"
)

// Service wraps a generative AI provider for dependency injection.
// Constructed once per process with explicit credentials; callers never reach
// for ambient client state.
type Service struct {
	provider Provider
}

// NewService creates the service from an explicit provider config.
func NewService(cfg *ProviderConfig) (*Service, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	return &Service{provider: provider}, nil
}

// NewServiceWithProvider creates service with a custom provider (for testing)
func NewServiceWithProvider(provider Provider) *Service {
	return &Service{provider: provider}
}

func (s *Service) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.provider.GenerateText(ctx, prompt)
}

func (s *Service) GenerateJSON(ctx context.Context, prompt string, out interface{}) error {
	return s.provider.GenerateJSON(ctx, prompt, out)
}

func (s *Service) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return s.provider.GenerateImage(ctx, prompt)
}

func (s *Service) SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	return s.provider.SynthesizeSpeech(ctx, text, voice)
}

func (s *Service) Chat(ctx context.Context, systemPrompt string, history []Turn, message string) (string, error) {
	return s.provider.Chat(ctx, systemPrompt, history, message)
}

// GetProviderName returns current provider name
func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}

package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIProvider struct {
	client      *openai.Client
	textModel   string
	imageModel  string
	speechModel string
	temperature float32
	maxTokens   int
}

func NewOpenAIProvider(apiKey, textModel, imageModel, speechModel string, temperature float32, maxTokens int) *OpenAIProvider {
	if textModel == "" {
		textModel = "gpt-4o-mini"
	}
	if imageModel == "" {
		imageModel = openai.CreateImageModelDallE3
	}
	if speechModel == "" {
		speechModel = string(openai.TTSModel1)
	}
	if temperature == 0 {
		temperature = 0.7
	}
	if maxTokens == 0 {
		maxTokens = 2048
	}

	config := openai.DefaultConfig(apiKey)
	config.HTTPClient = &http.Client{
		Timeout: 60 * time.Second,
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		textModel:   textModel,
		imageModel:  imageModel,
		speechModel: speechModel,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (p *OpenAIProvider) GetProviderName() string {
	return "OpenAI"
}

func (p *OpenAIProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.textModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) GenerateJSON(ctx context.Context, prompt string, out interface{}) error {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.textModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return fmt.Errorf("openai error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("no structured response from OpenAI")
	}

	if err := json.Unmarshal([]byte(stripCodeFence(resp.Choices[0].Message.Content)), out); err != nil {
		return fmt.Errorf("failed to decode structured response: %w", err)
	}
	return nil
}

func (p *OpenAIProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          p.imageModel,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return "", fmt.Errorf("openai image error: %w", err)
	}
	if len(resp.Data) == 0 {
		return "", nil
	}
	return resp.Data[0].B64JSON, nil
}

func (p *OpenAIProvider) SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	if voice == "" {
		voice = string(openai.VoiceAlloy)
	}
	// Raw PCM so callers can wrap it into a WAV container themselves.
	resp, err := p.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(p.speechModel),
		Input:          text,
		Voice:          openai.SpeechVoice(voice),
		ResponseFormat: openai.SpeechResponseFormatPcm,
	})
	if err != nil {
		return nil, fmt.Errorf("openai speech error: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio payload: %w", err)
	}
	return audio, nil
}

func (p *OpenAIProvider) Chat(ctx context.Context, systemPrompt string, history []Turn, message string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleSystem, Content: systemPrompt,
		})
	}
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == "model" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Text})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: message,
	})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.textModel,
		Messages:    messages,
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no chat response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

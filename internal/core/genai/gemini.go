package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type GeminiProvider struct {
	apiKey      string
	textModel   string
	imageModel  string
	speechModel string
	temperature float32
	maxTokens   int
	client      *http.Client
}

func NewGeminiProvider(apiKey, textModel, imageModel, speechModel string, temperature float32, maxTokens int) *GeminiProvider {
	if textModel == "" {
		textModel = "gemini-2.5-flash"
	}
	if imageModel == "" {
		imageModel = "gemini-2.5-flash-image"
	}
	if speechModel == "" {
		speechModel = "gemini-2.5-flash-preview-tts"
	}
	if temperature == 0 {
		temperature = 0.7
	}
	if maxTokens == 0 {
		maxTokens = 8192
	}

	return &GeminiProvider{
		apiKey:      apiKey,
		textModel:   textModel,
		imageModel:  imageModel,
		speechModel: speechModel,
		temperature: temperature,
		maxTokens:   maxTokens,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (p *GeminiProvider) GetProviderName() string {
	return "Google Gemini"
}

// Gemini REST API request/response structures
type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data"`
}

type geminiGenerationConfig struct {
	Temperature        float32             `json:"temperature,omitempty"`
	MaxOutputTokens    int                 `json:"maxOutputTokens,omitempty"`
	ResponseMimeType   string              `json:"responseMimeType,omitempty"`
	ResponseModalities []string            `json:"responseModalities,omitempty"`
	SpeechConfig       *geminiSpeechConfig `json:"speechConfig,omitempty"`
}

type geminiSpeechConfig struct {
	VoiceConfig geminiVoiceConfig `json:"voiceConfig"`
}

type geminiVoiceConfig struct {
	PrebuiltVoiceConfig geminiPrebuiltVoice `json:"prebuiltVoiceConfig"`
}

type geminiPrebuiltVoice struct {
	VoiceName string `json:"voiceName"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generateContent posts a request against the given model and returns the
// parsed response. Models with image/audio output need the v1beta endpoint.
func (p *GeminiProvider) generateContent(ctx context.Context, model string, reqBody geminiRequest) (*geminiResponse, error) {
	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		model, p.apiKey)

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini error (model: %s, status: %d): %s", model, resp.StatusCode, string(body))
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &geminiResp, nil
}

func (p *GeminiProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := p.generateContent(ctx, p.textModel, geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: prompt}},
			Role:  "user",
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     p.temperature,
			MaxOutputTokens: p.maxTokens,
		},
	})
	if err != nil {
		return "", err
	}

	text := firstText(resp)
	if text == "" {
		return "", fmt.Errorf("no response from Gemini (candidates: %d)", len(resp.Candidates))
	}
	return strings.TrimSpace(text), nil
}

func (p *GeminiProvider) GenerateJSON(ctx context.Context, prompt string, out interface{}) error {
	resp, err := p.generateContent(ctx, p.textModel, geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: prompt}},
			Role:  "user",
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:      p.temperature,
			MaxOutputTokens:  p.maxTokens,
			ResponseMimeType: "application/json",
		},
	})
	if err != nil {
		return err
	}

	text := firstText(resp)
	if text == "" {
		return fmt.Errorf("no structured response from Gemini")
	}

	if err := json.Unmarshal([]byte(stripCodeFence(text)), out); err != nil {
		return fmt.Errorf("failed to decode structured response: %w", err)
	}
	return nil
}

func (p *GeminiProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := p.generateContent(ctx, p.imageModel, geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: prompt}},
		}},
	})
	if err != nil {
		return "", err
	}

	// Image models interleave text and inline data parts; the first inline
	// payload is the image.
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				return part.InlineData.Data, nil
			}
		}
	}
	return "", nil
}

func (p *GeminiProvider) SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	if voice == "" {
		voice = "Kore"
	}
	resp, err := p.generateContent(ctx, p.speechModel, geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: text}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &geminiSpeechConfig{
				VoiceConfig: geminiVoiceConfig{
					PrebuiltVoiceConfig: geminiPrebuiltVoice{VoiceName: voice},
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				audio, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
				if err != nil {
					return nil, fmt.Errorf("failed to decode audio payload: %w", err)
				}
				return audio, nil
			}
		}
	}
	return nil, fmt.Errorf("no audio payload from Gemini")
}

func (p *GeminiProvider) Chat(ctx context.Context, systemPrompt string, history []Turn, message string) (string, error) {
	var contents []geminiContent

	// The API wants the first turn to come from the user, while our history
	// usually opens with the agent greeting. The system instruction doubles
	// as that first user turn.
	if systemPrompt != "" {
		contents = append(contents, geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
			Role:  "user",
		})
	}
	for _, turn := range history {
		contents = append(contents, geminiContent{
			Parts: []geminiPart{{Text: turn.Text}},
			Role:  turn.Role,
		})
	}
	contents = append(contents, geminiContent{
		Parts: []geminiPart{{Text: message}},
		Role:  "user",
	})

	resp, err := p.generateContent(ctx, p.textModel, geminiRequest{
		Contents: contents,
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     p.temperature,
			MaxOutputTokens: p.maxTokens,
		},
	})
	if err != nil {
		return "", err
	}

	text := firstText(resp)
	if text == "" {
		return "", fmt.Errorf("no chat response from Gemini")
	}
	return strings.TrimSpace(text), nil
}

func firstText(resp *geminiResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}

// stripCodeFence removes a markdown ```json fence the model sometimes wraps
// around structured output.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/dukkaniai/dukkani-ai-be/internal/core/agent"
	"github.com/dukkaniai/dukkani-ai-be/internal/core/audio"
	"github.com/dukkaniai/dukkani-ai-be/internal/core/deeplink"
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/models"
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/repositories"
)

// AgentService fronts the order-confirmation simulator: settings management,
// the scripted conversation phases and the outbound deep link.
type AgentService struct {
	engine           *agent.Engine
	settingsRepo     repositories.SettingsRepo
	conversationRepo repositories.ConversationRepo
	storeName        string
	countryCode      string
}

func NewAgentService(
	engine *agent.Engine,
	settingsRepo repositories.SettingsRepo,
	conversationRepo repositories.ConversationRepo,
	storeName, countryCode string,
) *AgentService {
	return &AgentService{
		engine:           engine,
		settingsRepo:     settingsRepo,
		conversationRepo: conversationRepo,
		storeName:        storeName,
		countryCode:      countryCode,
	}
}

// LogTurn implements agent.ConversationLogger.
func (s *AgentService) LogTurn(conversationID, role, text string) error {
	return s.conversationRepo.AppendTurn(&models.ConversationTurn{
		ConversationID: conversationID,
		Role:           role,
		Text:           text,
	})
}

// Generate starts (or restarts) a conversation: greeting plus optional voice
// note. Restarting clears the stored history along with the live transcript.
func (s *AgentService) Generate(ctx context.Context, conversationID string) (*agent.Snapshot, error) {
	cfg, err := s.engineConfig()
	if err != nil {
		return nil, err
	}

	if conversationID != "" {
		if err := s.conversationRepo.ClearTurns(conversationID); err != nil {
			return nil, fmt.Errorf("failed to clear conversation history: %w", err)
		}
	}

	snap, err := s.engine.Generate(ctx, conversationID, *cfg)
	if err != nil {
		return nil, err
	}

	if err := s.conversationRepo.Ensure(snap.ID, s.storeName); err != nil {
		return nil, fmt.Errorf("failed to record conversation: %w", err)
	}
	return snap, nil
}

// Reply submits one customer message to a running conversation.
func (s *AgentService) Reply(ctx context.Context, conversationID, text string) (*agent.Snapshot, error) {
	cfg, err := s.engineConfig()
	if err != nil {
		return nil, err
	}
	return s.engine.Reply(ctx, conversationID, text, *cfg)
}

// Transcript returns the live transcript of a conversation.
func (s *AgentService) Transcript(conversationID string) (*agent.Snapshot, error) {
	return s.engine.Transcript(conversationID)
}

// Clip serves a voice note's WAV bytes.
func (s *AgentService) Clip(conversationID, clipID string) ([]byte, error) {
	return s.engine.Clip(conversationID, clipID)
}

// TogglePlayback drives the single playback slot.
func (s *AgentService) TogglePlayback(conversationID, clipID string) (audio.PlaybackState, error) {
	return s.engine.TogglePlayback(conversationID, clipID)
}

// CompletePlayback releases the slot once the clip finishes playing.
func (s *AgentService) CompletePlayback(conversationID, clipID string) error {
	return s.engine.CompletePlayback(conversationID, clipID)
}

// PlaybackState reports the clip occupying the playback slot, if any.
func (s *AgentService) PlaybackState() (string, audio.PlaybackState) {
	return s.engine.ActiveClip()
}

// GetSettings returns the stored agent configuration (or defaults).
func (s *AgentService) GetSettings() (*models.AgentSettings, error) {
	return s.settingsRepo.Get()
}

// UpdateSettings applies a partial update, validating the enumerations.
func (s *AgentService) UpdateSettings(req *models.UpdateAgentSettingsRequest) (*models.AgentSettings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	if req.Language != nil {
		settings.Language = *req.Language
	}
	if req.Tone != nil {
		settings.Tone = *req.Tone
	}
	if req.AgentName != nil {
		if *req.AgentName == "" {
			return nil, models.ErrEmptyAgentName
		}
		settings.AgentName = *req.AgentName
	}
	if req.ContactNumber != nil {
		settings.ContactNumber = deeplink.NormalizePhone(*req.ContactNumber, s.countryCode)
	}
	if req.ConfirmFields != nil {
		raw, err := json.Marshal(req.ConfirmFields)
		if err != nil {
			return nil, fmt.Errorf("invalid confirm fields: %w", err)
		}
		settings.ConfirmFields = raw
	}
	if req.VoiceNotes != nil {
		settings.VoiceNotes = *req.VoiceNotes
	}
	if req.RequestLocation != nil {
		settings.RequestLocation = *req.RequestLocation
	}
	if req.IncludeDiscount != nil {
		settings.IncludeDiscount = *req.IncludeDiscount
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := s.settingsRepo.Save(settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}

// DeepLinkResponse is the outbound chat link plus its QR rendering.
type DeepLinkResponse struct {
	Phone string `json:"phone"`
	Link  string `json:"link"`
	QRPng string `json:"qr_png"` // base64 PNG
}

// DeepLink builds the wa.me link for the configured contact number,
// prefilled with message.
func (s *AgentService) DeepLink(message string) (*DeepLinkResponse, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if settings.ContactNumber == "" {
		return nil, fmt.Errorf("store contact number is not configured")
	}

	link, err := deeplink.BuildChatLink(settings.ContactNumber, message, s.countryCode)
	if err != nil {
		return nil, err
	}
	png, err := deeplink.ChatLinkQR(settings.ContactNumber, message, s.countryCode, 256)
	if err != nil {
		return nil, err
	}

	return &DeepLinkResponse{
		Phone: deeplink.NormalizePhone(settings.ContactNumber, s.countryCode),
		Link:  link,
		QRPng: base64.StdEncoding.EncodeToString(png),
	}, nil
}

func (s *AgentService) engineConfig() (*agent.Config, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load agent settings: %w", err)
	}

	var confirmFields []string
	if len(settings.ConfirmFields) > 0 {
		if err := json.Unmarshal(settings.ConfirmFields, &confirmFields); err != nil {
			return nil, fmt.Errorf("invalid confirm fields: %w", err)
		}
	}
	if settings.RequestLocation {
		confirmFields = append(confirmFields, "delivery location pin")
	}

	return &agent.Config{
		StoreName:       s.storeName,
		AgentName:       settings.AgentName,
		Language:        settings.Language,
		Tone:            settings.Tone,
		ConfirmFields:   confirmFields,
		IncludeDiscount: settings.IncludeDiscount,
		VoiceNotes:      settings.VoiceNotes,
	}, nil
}

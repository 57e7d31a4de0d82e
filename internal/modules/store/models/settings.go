package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enumerated agent languages and tones. The configuration record is fully
// typed and validated at construction instead of the loose objects the
// dashboard forms produce.
var (
	AllowedLanguages = []string{"Darija (Moroccan)", "French", "Arabic (Standard)"}
	AllowedTones     = []string{"Professional", "Friendly", "Urgent"}
)

const (
	DefaultLanguage = "Darija (Moroccan)"
	DefaultTone     = "Friendly"
)

// AgentSettings configures the auto-confirmation agent for a store.
type AgentSettings struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	Language        string         `gorm:"type:text;not null" json:"language"`
	Tone            string         `gorm:"type:text;not null" json:"tone"`
	AgentName       string         `gorm:"type:text" json:"agent_name"`
	ContactNumber   string         `gorm:"type:text" json:"contact_number"`
	ConfirmFields   datatypes.JSON `gorm:"type:jsonb" json:"confirm_fields"` // list of fields the agent must collect
	VoiceNotes      bool           `gorm:"default:false" json:"voice_notes"`
	RequestLocation bool           `gorm:"default:false" json:"request_location"`
	IncludeDiscount bool           `gorm:"default:false" json:"include_discount"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (AgentSettings) TableName() string {
	return "store_agent_settings"
}

// BeforeCreate sets UUID before creating
func (s *AgentSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Validate enforces the enumerations.
func (s *AgentSettings) Validate() error {
	if !contains(AllowedLanguages, s.Language) {
		return fmt.Errorf("invalid language %q", s.Language)
	}
	if !contains(AllowedTones, s.Tone) {
		return fmt.Errorf("invalid tone %q", s.Tone)
	}
	return nil
}

// DefaultAgentSettings returns the settings used before a merchant saves any.
func DefaultAgentSettings() *AgentSettings {
	return &AgentSettings{
		Language:      DefaultLanguage,
		Tone:          DefaultTone,
		AgentName:     "MyStore Agent",
		ConfirmFields: datatypes.JSON([]byte(`["delivery address","preferred delivery time"]`)),
	}
}

// UpdateAgentSettingsRequest carries partial updates from the dashboard.
type UpdateAgentSettingsRequest struct {
	Language        *string  `json:"language,omitempty"`
	Tone            *string  `json:"tone,omitempty"`
	AgentName       *string  `json:"agent_name,omitempty"`
	ContactNumber   *string  `json:"contact_number,omitempty"`
	ConfirmFields   []string `json:"confirm_fields,omitempty"`
	VoiceNotes      *bool    `json:"voice_notes,omitempty"`
	RequestLocation *bool    `json:"request_location,omitempty"`
	IncludeDiscount *bool    `json:"include_discount,omitempty"`
}

var ErrEmptyAgentName = errors.New("agent name cannot be empty")

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

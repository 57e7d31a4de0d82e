package repositories

import (
	"errors"

	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/models"
	"gorm.io/gorm"
)

type SettingsRepo interface {
	// Get returns the stored settings, or defaults if none were saved yet.
	Get() (*models.AgentSettings, error)
	Save(settings *models.AgentSettings) error
}

type settingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) SettingsRepo {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get() (*models.AgentSettings, error) {
	var settings models.AgentSettings
	err := r.db.Order("created_at ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultAgentSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepo) Save(settings *models.AgentSettings) error {
	return r.db.Save(settings).Error
}

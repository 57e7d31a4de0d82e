package repositories

import (
	"errors"

	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/models"
	"gorm.io/gorm"
)

type ConversationRepo interface {
	Ensure(conversationID, storeName string) error
	AppendTurn(turn *models.ConversationTurn) error
	ClearTurns(conversationID string) error
	GetTurns(conversationID string, limit int) ([]models.ConversationTurn, error)
	CountConversations() (int64, error)
}

type conversationRepo struct {
	db *gorm.DB
}

func NewConversationRepo(db *gorm.DB) ConversationRepo {
	return &conversationRepo{db: db}
}

func (r *conversationRepo) Ensure(conversationID, storeName string) error {
	var existing models.Conversation
	err := r.db.First(&existing, "id = ?", conversationID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(&models.Conversation{ID: conversationID, StoreName: storeName}).Error
}

func (r *conversationRepo) AppendTurn(turn *models.ConversationTurn) error {
	return r.db.Create(turn).Error
}

func (r *conversationRepo) ClearTurns(conversationID string) error {
	return r.db.Where("conversation_id = ?", conversationID).
		Delete(&models.ConversationTurn{}).Error
}

func (r *conversationRepo) GetTurns(conversationID string, limit int) ([]models.ConversationTurn, error) {
	if limit <= 0 {
		limit = 200
	}
	var turns []models.ConversationTurn
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").Limit(limit).Find(&turns).Error
	if err != nil {
		return nil, err
	}
	return turns, nil
}

func (r *conversationRepo) CountConversations() (int64, error) {
	var count int64
	err := r.db.Model(&models.Conversation{}).Count(&count).Error
	return count, err
}

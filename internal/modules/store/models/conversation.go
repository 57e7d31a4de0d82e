package models

import (
	"time"
)

// Conversation is the persisted shell of a simulated agent chat. The live
// transcript is owned by the agent engine; rows here survive for history.
type Conversation struct {
	ID        string    `gorm:"type:text;primary_key" json:"id"`
	StoreName string    `gorm:"type:text" json:"store_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (Conversation) TableName() string {
	return "store_conversations"
}

// ConversationTurn is one persisted transcript turn.
type ConversationTurn struct {
	ID             int64     `gorm:"primary_key;autoIncrement" json:"id"`
	ConversationID string    `gorm:"type:text;not null;index" json:"conversation_id"`
	Role           string    `gorm:"type:text;not null" json:"role"`
	Text           string    `gorm:"type:text" json:"text"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (ConversationTurn) TableName() string {
	return "store_conversation_turns"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatSessionId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chat_messages_position"`
	Position      int       `gorm:"not null;uniqueIndex:idx_chat_messages_position"`
	Role          string    `gorm:"type:varchar(20);not null"`
	Content       string    `gorm:"type:text;not null"`
	Timestamp     time.Time `gorm:"not null"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// GeneratedContent rows are insert-only.
type GeneratedContent struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatSessionId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_generated_contents_position"`
	Position      int       `gorm:"not null;uniqueIndex:idx_generated_contents_position"`
	ThemeId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Content       string    `gorm:"type:text;not null"`
	Platform      string    `gorm:"type:varchar(50)"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (GeneratedContent) TableName() string {
	return "generated_contents"
}

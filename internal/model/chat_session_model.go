package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ModelParameters struct {
	Temperature    float64 `json:"temperature"`
	MaxTokens      int     `json:"maxTokens"`
	PromptTemplate string  `json:"promptTemplate,omitempty"`
}

// ChatSession is the session row. Version increases on every append and
// guards concurrent writers.
type ChatSession struct {
	Id              uuid.UUID                           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID                           `gorm:"type:uuid;not null;index"`
	BrandId         uuid.UUID                           `gorm:"type:uuid;not null;index"`
	Title           string                              `gorm:"type:text;not null"`
	AiModel         string                              `gorm:"type:varchar(50);not null;default:'openai'"`
	ModelParameters datatypes.JSONType[ModelParameters] `gorm:"type:jsonb;not null"`
	Version         int                                 `gorm:"not null;default:1"`
	MessageCount    int                                 `gorm:"not null;default:0"`
	ContentCount    int                                 `gorm:"not null;default:0"`
	CreatedAt       time.Time                           `gorm:"autoCreateTime"`
	UpdatedAt       time.Time                           `gorm:"autoUpdateTime;index"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

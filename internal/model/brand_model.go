package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PostingSlot struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

type Brand struct {
	Id              uuid.UUID                        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId         uuid.UUID                        `gorm:"type:uuid;not null;index"`
	Name            string                           `gorm:"type:varchar(255);not null"`
	Description     string                           `gorm:"type:text;not null"`
	Tone            string                           `gorm:"type:varchar(100);not null;default:'professional'"`
	Keywords        datatypes.JSONSlice[string]      `gorm:"type:jsonb;not null;default:'[]'"`
	Hashtags        datatypes.JSONSlice[string]      `gorm:"type:jsonb;not null;default:'[]'"`
	ContentRules    string                           `gorm:"type:text"`
	Logo            string                           `gorm:"type:text"`
	Images          datatypes.JSONSlice[string]      `gorm:"type:jsonb;not null;default:'[]'"`
	PostingSchedule datatypes.JSONSlice[PostingSlot] `gorm:"type:jsonb;not null;default:'[]'"`
	IsActive        bool                             `gorm:"not null;default:true;index"`
	CreatedAt       time.Time                        `gorm:"autoCreateTime"`
	UpdatedAt       time.Time                        `gorm:"autoUpdateTime"`
}

func (Brand) TableName() string {
	return "brands"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type Theme struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BrandId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	Category      string    `gorm:"type:varchar(50);not null;default:'other'"`
	ContentLength int       `gorm:"not null;default:500"`
	Tone          string    `gorm:"type:varchar(100);not null;default:'professional'"`
	Style         string    `gorm:"type:varchar(100)"`
	IsActive      bool      `gorm:"not null;default:true;index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Theme) TableName() string {
	return "themes"
}

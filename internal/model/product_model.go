package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Product struct {
	Id             uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BrandId        uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Name           string                      `gorm:"type:varchar(255);not null"`
	Description    string                      `gorm:"type:text;not null"`
	Features       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Benefits       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	TargetAudience string                      `gorm:"type:text"`
	Images         datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	IsActive       bool                        `gorm:"not null;default:true;index"`
	CreatedAt      time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt      time.Time                   `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

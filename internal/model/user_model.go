package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ApiKey struct {
	Service string `json:"service"`
	Key     string `json:"key"`
	Active  bool   `json:"active"`
}

type User struct {
	Id           uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string                      `gorm:"type:varchar(255);not null"`
	Email        string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash *string                     `gorm:"type:varchar(255)"`
	Role         string                      `gorm:"type:varchar(50);not null;default:'content_creator'"`
	ApiKeys      datatypes.JSONSlice[ApiKey] `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type UserProvider struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderName   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_provider_identity"`
	ProviderUserId string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_provider_identity"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (UserProvider) TableName() string {
	return "user_providers"
}

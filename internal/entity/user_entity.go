package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleAdmin          UserRole = "admin"
	UserRoleBrandManager   UserRole = "brand_manager"
	UserRoleContentCreator UserRole = "content_creator"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleBrandManager, UserRoleContentCreator:
		return true
	}
	return false
}

// AI services a user can hold API keys for.
const (
	ServiceOpenAI    = "openai"
	ServiceAnthropic = "anthropic"
	ServiceGoogle    = "google"
	ServiceDeepSeek  = "deepseek"
)

var SupportedAiServices = []string{ServiceOpenAI, ServiceAnthropic, ServiceGoogle, ServiceDeepSeek}

func IsSupportedAiService(service string) bool {
	for _, s := range SupportedAiServices {
		if s == service {
			return true
		}
	}
	return false
}

type ApiKey struct {
	Service string
	Key     string
	Active  bool
}

type User struct {
	Id           uuid.UUID
	Name         string
	Email        string
	PasswordHash *string
	Role         UserRole
	ApiKeys      []ApiKey
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProvider links a user to an external identity (Google sign-in).
type UserProvider struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ProviderName   string
	ProviderUserId string
	CreatedAt      time.Time
}

// PendingRegistration is an e-mail awaiting its verification code.
type PendingRegistration struct {
	Email     string
	Code      string
	ExpiresAt time.Time
}

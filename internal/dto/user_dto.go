package dto

import (
	"time"

	"github.com/google/uuid"
)

// ApiKeyView never carries the full key.
type ApiKeyView struct {
	Service string `json:"service"`
	Key     string `json:"key"`
	Active  bool   `json:"active"`
}

type UserProfileResponse struct {
	Id        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Role      string       `json:"role"`
	Brands    []uuid.UUID  `json:"brands"`
	ApiKeys   []ApiKeyView `json:"apiKeys"`
	CreatedAt time.Time    `json:"createdAt"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type UpdateProfileResponse struct {
	UserProfileResponse
	Token string `json:"token"`
}

type ApiKeyInput struct {
	Service string `json:"service" validate:"required"`
	Key     string `json:"key" validate:"required"`
	Active  *bool  `json:"active"`
}

type UpdateApiKeysRequest struct {
	ApiKeys []ApiKeyInput `json:"apiKeys" validate:"dive"`
}

type ApiKeysResponse struct {
	Message string       `json:"message"`
	ApiKeys []ApiKeyView `json:"apiKeys"`
}

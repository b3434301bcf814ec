package dto

import "github.com/google/uuid"

type MessageResponse struct {
	Message string `json:"message"`
}

type BrandSummary struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Tone        string    `json:"tone,omitempty"`
}

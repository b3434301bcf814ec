package dto

import (
	"time"

	"github.com/google/uuid"
)

type PostingSlot struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

type CreateBrandRequest struct {
	Name            string        `json:"name" validate:"required"`
	Description     string        `json:"description" validate:"required"`
	Tone            string        `json:"tone"`
	Keywords        []string      `json:"keywords"`
	Hashtags        []string      `json:"hashtags"`
	ContentRules    string        `json:"contentRules"`
	Logo            string        `json:"logo"`
	Images          []string      `json:"images"`
	PostingSchedule []PostingSlot `json:"postingSchedule"`
}

// UpdateBrandRequest applies only the fields that are present.
type UpdateBrandRequest struct {
	Name            *string        `json:"name" validate:"omitempty,min=1"`
	Description     *string        `json:"description"`
	Tone            *string        `json:"tone"`
	Keywords        *[]string      `json:"keywords"`
	Hashtags        *[]string      `json:"hashtags"`
	ContentRules    *string        `json:"contentRules"`
	Logo            *string        `json:"logo"`
	Images          *[]string      `json:"images"`
	PostingSchedule *[]PostingSlot `json:"postingSchedule"`
}

type BrandResponse struct {
	Id              uuid.UUID     `json:"id"`
	Owner           uuid.UUID     `json:"owner"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Tone            string        `json:"tone"`
	Keywords        []string      `json:"keywords"`
	Hashtags        []string      `json:"hashtags"`
	ContentRules    string        `json:"contentRules"`
	Logo            string        `json:"logo,omitempty"`
	Images          []string      `json:"images"`
	PostingSchedule []PostingSlot `json:"postingSchedule"`
	IsActive        bool          `json:"isActive"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type CreateThemeRequest struct {
	BrandId       string `json:"brandId" validate:"required,uuid"`
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	Category      string `json:"category" validate:"omitempty,oneof=news knowledge entertainment other"`
	ContentLength int    `json:"contentLength" validate:"omitempty,min=1"`
	Tone          string `json:"tone"`
	Style         string `json:"style"`
}

type UpdateThemeRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	Description   *string `json:"description"`
	Category      *string `json:"category" validate:"omitempty,oneof=news knowledge entertainment other"`
	ContentLength *int    `json:"contentLength" validate:"omitempty,min=1"`
	Tone          *string `json:"tone"`
	Style         *string `json:"style"`
}

type ThemeResponse struct {
	Id            uuid.UUID `json:"id"`
	BrandId       uuid.UUID `json:"brand"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	ContentLength int       `json:"contentLength"`
	Tone          string    `json:"tone"`
	Style         string    `json:"style"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateProductRequest struct {
	BrandId        string   `json:"brandId" validate:"required,uuid"`
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Features       []string `json:"features"`
	Benefits       []string `json:"benefits"`
	TargetAudience string   `json:"targetAudience"`
	Images         []string `json:"images"`
}

type UpdateProductRequest struct {
	Name           *string   `json:"name" validate:"omitempty,min=1"`
	Description    *string   `json:"description"`
	Features       *[]string `json:"features"`
	Benefits       *[]string `json:"benefits"`
	TargetAudience *string   `json:"targetAudience"`
	Images         *[]string `json:"images"`
}

type ProductResponse struct {
	Id             uuid.UUID `json:"id"`
	BrandId        uuid.UUID `json:"brand"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Features       []string  `json:"features"`
	Benefits       []string  `json:"benefits"`
	TargetAudience string    `json:"targetAudience"`
	Images         []string  `json:"images"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

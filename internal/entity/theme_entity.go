package entity

import (
	"time"

	"github.com/google/uuid"
)

type ThemeCategory string

const (
	ThemeCategoryNews          ThemeCategory = "news"
	ThemeCategoryKnowledge     ThemeCategory = "knowledge"
	ThemeCategoryEntertainment ThemeCategory = "entertainment"
	ThemeCategoryOther         ThemeCategory = "other"
)

const DefaultContentLength = 500

type Theme struct {
	Id            uuid.UUID
	BrandId       uuid.UUID
	Name          string
	Description   string
	Category      ThemeCategory
	ContentLength int
	Tone          string
	Style         string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

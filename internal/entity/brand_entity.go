package entity

import (
	"time"

	"github.com/google/uuid"
)

type PostingSlot struct {
	Day  string
	Time string
}

type Brand struct {
	Id              uuid.UUID
	OwnerId         uuid.UUID
	Name            string
	Description     string
	Tone            string
	Keywords        []string
	Hashtags        []string
	ContentRules    string
	Logo            string
	Images          []string
	PostingSchedule []PostingSlot
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const DefaultTone = "professional"

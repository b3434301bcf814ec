package entity

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id             uuid.UUID
	BrandId        uuid.UUID
	Name           string
	Description    string
	Features       []string
	Benefits       []string
	TargetAudience string
	Images         []string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

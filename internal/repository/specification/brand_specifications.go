package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnedBy struct {
	OwnerID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerID)
}

type ByBrandID struct {
	BrandID uuid.UUID
}

func (s ByBrandID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("brand_id = ?", s.BrandID)
}

// ActiveOnly excludes soft-deleted brands, themes and products.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

package specification

import (
	"gorm.io/gorm"
)

type ByPlatform struct {
	Platform string
}

func (s ByPlatform) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("platform = ?", s.Platform)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type Connected struct{}

func (s Connected) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_connected = ?", true)
}

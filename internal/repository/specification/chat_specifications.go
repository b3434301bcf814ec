package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByChatSessionID struct {
	ChatSessionID uuid.UUID
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}

type ByThemeID struct {
	ThemeID uuid.UUID
}

func (s ByThemeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("theme_id = ?", s.ThemeID)
}

// InLogOrder sorts messages and ledger entries by their append position.
type InLogOrder struct{}

func (s InLogOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

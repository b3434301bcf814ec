package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleSystem    MessageRole = "system"
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Position      int
	Role          MessageRole
	Content       string
	Timestamp     time.Time
}

// GeneratedContent is one immutable ledger entry.
type GeneratedContent struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Position      int
	ThemeId       uuid.UUID
	Content       string
	Platform      string
	CreatedAt     time.Time
}

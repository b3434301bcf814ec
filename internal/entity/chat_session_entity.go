package entity

import (
	"time"

	"github.com/google/uuid"
)

type AiModel string

const (
	AiModelOpenAI    AiModel = "openai"
	AiModelAnthropic AiModel = "anthropic"
	AiModelGoogle    AiModel = "google"
	AiModelDeepSeek  AiModel = "deepseek"
)

func (m AiModel) Valid() bool {
	switch m {
	case AiModelOpenAI, AiModelAnthropic, AiModelGoogle, AiModelDeepSeek:
		return true
	}
	return false
}

const (
	DefaultChatTitle   = "New Chat"
	DefaultAiModel     = AiModelOpenAI
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1000
)

type ModelParameters struct {
	Temperature    float64
	MaxTokens      int
	PromptTemplate string
}

// ChatSession is the conversation aggregate. UserId and BrandId are fixed at creation.
// Messages and GeneratedContent are only populated when the full log is loaded;
// MessageCount and ContentCount always reflect the persisted log length.
type ChatSession struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	BrandId          uuid.UUID
	Title            string
	AiModel          AiModel
	ModelParameters  ModelParameters
	Version          int
	MessageCount     int
	ContentCount     int
	Messages         []*ChatMessage
	GeneratedContent []*GeneratedContent
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SessionAppend is the set of log entries produced by one mutation.
type SessionAppend struct {
	Messages []*ChatMessage
	Contents []*GeneratedContent
}

func (a *SessionAppend) Empty() bool {
	return len(a.Messages) == 0 && len(a.Contents) == 0
}

// AppendMessage positions a message at the log tail.
func (s *ChatSession) AppendMessage(batch *SessionAppend, role MessageRole, content string, at time.Time) *ChatMessage {
	msg := &ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: s.Id,
		Position:      s.MessageCount,
		Role:          role,
		Content:       content,
		Timestamp:     at,
	}
	s.MessageCount++
	batch.Messages = append(batch.Messages, msg)
	return msg
}

// AppendContent positions a ledger entry at the tail. Entry ids are globally unique.
func (s *ChatSession) AppendContent(batch *SessionAppend, themeId uuid.UUID, content, platform string, at time.Time) *GeneratedContent {
	entry := &GeneratedContent{
		Id:            uuid.New(),
		ChatSessionId: s.Id,
		Position:      s.ContentCount,
		ThemeId:       themeId,
		Content:       content,
		Platform:      platform,
		CreatedAt:     at,
	}
	s.ContentCount++
	batch.Contents = append(batch.Contents, entry)
	return entry
}

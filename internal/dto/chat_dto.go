package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChatRequest struct {
	BrandId string `json:"brandId" validate:"required,uuid"`
	Title   string `json:"title"`
	AiModel string `json:"aiModel" validate:"omitempty,oneof=openai anthropic google deepseek"`
}

type ModelParameters struct {
	Temperature    float64 `json:"temperature"`
	MaxTokens      int     `json:"maxTokens"`
	PromptTemplate string  `json:"promptTemplate,omitempty"`
}

type ChatMessageResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// GeneratedContentResponse denormalizes the theme name for display; storage
// keeps only the theme reference.
type GeneratedContentResponse struct {
	Id        uuid.UUID `json:"id"`
	ThemeId   uuid.UUID `json:"themeId"`
	ThemeName string    `json:"themeName,omitempty"`
	Content   string    `json:"content"`
	Platform  string    `json:"platform,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type ChatSessionResponse struct {
	Id               uuid.UUID                  `json:"id"`
	User             uuid.UUID                  `json:"user"`
	Brand            BrandSummary               `json:"brand"`
	Title            string                     `json:"title"`
	AiModel          string                     `json:"aiModel"`
	ModelParameters  ModelParameters            `json:"modelParameters"`
	Version          int                        `json:"version"`
	Messages         []ChatMessageResponse      `json:"messages"`
	GeneratedContent []GeneratedContentResponse `json:"generatedContent"`
	CreatedAt        time.Time                  `json:"createdAt"`
	UpdatedAt        time.Time                  `json:"updatedAt"`
}

type ChatListItem struct {
	Id        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Brand     BrandSummary `json:"brand"`
	AiModel   string       `json:"aiModel"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// ChatListQuery pages the session list. A zero limit returns every session.
type ChatListQuery struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type ReplyMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type SendMessageResponse struct {
	ChatId  uuid.UUID    `json:"chatId"`
	Message ReplyMessage `json:"message"`
}

// GenerateInChatRequest: a missing or zero count means one piece.
type GenerateInChatRequest struct {
	ThemeId  string `json:"themeId" validate:"required,uuid"`
	Count    int    `json:"count"`
	Platform string `json:"platform"`
}

type GenerateInChatResponse struct {
	ChatId           uuid.UUID                  `json:"chatId"`
	GeneratedContent []GeneratedContentResponse `json:"generatedContent"`
}

type ParseCommandRequest struct {
	Command string `json:"command" validate:"required"`
}

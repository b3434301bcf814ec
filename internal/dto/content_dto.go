package dto

import "github.com/google/uuid"

type GenerateContentRequest struct {
	BrandId        string `json:"brandId" validate:"required,uuid"`
	ThemeId        string `json:"themeId" validate:"required,uuid"`
	SocialPlatform string `json:"socialPlatform" validate:"required"`
	Count          int    `json:"count"`
	AiModel        string `json:"aiModel" validate:"omitempty,oneof=openai anthropic google deepseek"`
}

type GenerateContentResponse struct {
	ChatId   uuid.UUID                  `json:"chatId"`
	Count    int                        `json:"count"`
	Platform string                     `json:"platform"`
	Contents []GeneratedContentResponse `json:"contents"`
}

type OptimizeContentRequest struct {
	ContentId string `json:"contentId" validate:"required,uuid"`
	Platform  string `json:"platform" validate:"required"`
}

type OptimizeContentResponse struct {
	ChatId   uuid.UUID                `json:"chatId"`
	Platform string                   `json:"platform"`
	Content  GeneratedContentResponse `json:"content"`
}

type KeywordQuery struct {
	BrandId string `query:"brandId" validate:"required,uuid"`
	ThemeId string `query:"themeId" validate:"omitempty,uuid"`
}

type GenerateImageRequest struct {
	Prompt  string `json:"prompt" validate:"required"`
	BrandId string `json:"brandId" validate:"required,uuid"`
	ThemeId string `json:"themeId" validate:"omitempty,uuid"`
}

type GenerateImageResponse struct {
	ImageUrl string `json:"imageUrl"`
	Prompt   string `json:"prompt"`
}

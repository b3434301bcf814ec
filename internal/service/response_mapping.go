package service

import (
	"flowa-be/internal/dto"
	"flowa-be/internal/entity"

	"github.com/google/uuid"
)

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func toBrandSummary(b *entity.Brand) dto.BrandSummary {
	return dto.BrandSummary{Id: b.Id, Name: b.Name, Description: b.Description, Tone: b.Tone}
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	schedule := make([]dto.PostingSlot, 0, len(b.PostingSchedule))
	for _, slot := range b.PostingSchedule {
		schedule = append(schedule, dto.PostingSlot{Day: slot.Day, Time: slot.Time})
	}
	return &dto.BrandResponse{
		Id:              b.Id,
		Owner:           b.OwnerId,
		Name:            b.Name,
		Description:     b.Description,
		Tone:            b.Tone,
		Keywords:        nonNil(b.Keywords),
		Hashtags:        nonNil(b.Hashtags),
		ContentRules:    b.ContentRules,
		Logo:            b.Logo,
		Images:          nonNil(b.Images),
		PostingSchedule: schedule,
		IsActive:        b.IsActive,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func toThemeResponse(t *entity.Theme) *dto.ThemeResponse {
	return &dto.ThemeResponse{
		Id:            t.Id,
		BrandId:       t.BrandId,
		Name:          t.Name,
		Description:   t.Description,
		Category:      string(t.Category),
		ContentLength: t.ContentLength,
		Tone:          t.Tone,
		Style:         t.Style,
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Id:             p.Id,
		BrandId:        p.BrandId,
		Name:           p.Name,
		Description:    p.Description,
		Features:       nonNil(p.Features),
		Benefits:       nonNil(p.Benefits),
		TargetAudience: p.TargetAudience,
		Images:         nonNil(p.Images),
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toMessageResponses(messages []*entity.ChatMessage) []dto.ChatMessageResponse {
	res := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		res = append(res, dto.ChatMessageResponse{Role: string(m.Role), Content: m.Content, Timestamp: m.Timestamp})
	}
	return res
}

// toContentResponses denormalizes theme names; unknown themes keep an empty name.
func toContentResponses(contents []*entity.GeneratedContent, themeNames map[uuid.UUID]string) []dto.GeneratedContentResponse {
	res := make([]dto.GeneratedContentResponse, 0, len(contents))
	for _, c := range contents {
		res = append(res, dto.GeneratedContentResponse{
			Id:        c.Id,
			ThemeId:   c.ThemeId,
			ThemeName: themeNames[c.ThemeId],
			Content:   c.Content,
			Platform:  c.Platform,
			CreatedAt: c.CreatedAt,
		})
	}
	return res
}

func toSessionResponse(s *entity.ChatSession, brand *entity.Brand, themeNames map[uuid.UUID]string) *dto.ChatSessionResponse {
	return &dto.ChatSessionResponse{
		Id:      s.Id,
		User:    s.UserId,
		Brand:   toBrandSummary(brand),
		Title:   s.Title,
		AiModel: string(s.AiModel),
		ModelParameters: dto.ModelParameters{
			Temperature:    s.ModelParameters.Temperature,
			MaxTokens:      s.ModelParameters.MaxTokens,
			PromptTemplate: s.ModelParameters.PromptTemplate,
		},
		Version:          s.Version,
		Messages:         toMessageResponses(s.Messages),
		GeneratedContent: toContentResponses(s.GeneratedContent, themeNames),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func toAccountResponse(a *entity.SocialAccount) dto.SocialAccountResponse {
	return dto.SocialAccountResponse{
		Id:          a.Id,
		BrandId:     a.BrandId,
		Platform:    a.Platform,
		AccountId:   a.AccountId,
		AccountName: a.AccountName,
		IsConnected: a.IsConnected,
		ConnectedAt: a.ConnectedAt,
	}
}

func toPostResponse(p *entity.SocialPost) dto.SocialPostResponse {
	return dto.SocialPostResponse{
		Id:           p.Id,
		BrandId:      p.BrandId,
		ContentId:    p.ContentId,
		Platform:     p.Platform,
		Content:      p.Content,
		Status:       string(p.Status),
		ScheduledFor: p.ScheduledFor,
		PublishedAt:  p.PublishedAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

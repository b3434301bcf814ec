package mapper

import (
	"flowa-be/internal/entity"
	"flowa-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	params := s.ModelParameters.Data()
	return &entity.ChatSession{
		Id:      s.Id,
		UserId:  s.UserId,
		BrandId: s.BrandId,
		Title:   s.Title,
		AiModel: entity.AiModel(s.AiModel),
		ModelParameters: entity.ModelParameters{
			Temperature:    params.Temperature,
			MaxTokens:      params.MaxTokens,
			PromptTemplate: params.PromptTemplate,
		},
		Version:      s.Version,
		MessageCount: s.MessageCount,
		ContentCount: s.ContentCount,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:      s.Id,
		UserId:  s.UserId,
		BrandId: s.BrandId,
		Title:   s.Title,
		AiModel: string(s.AiModel),
		ModelParameters: datatypes.NewJSONType(model.ModelParameters{
			Temperature:    s.ModelParameters.Temperature,
			MaxTokens:      s.ModelParameters.MaxTokens,
			PromptTemplate: s.ModelParameters.PromptTemplate,
		}),
		Version:      s.Version,
		MessageCount: s.MessageCount,
		ContentCount: s.ContentCount,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (m *ChatMapper) ChatSessionsToEntities(sessions []*model.ChatSession) []*entity.ChatSession {
	out := make([]*entity.ChatSession, len(sessions))
	for i, s := range sessions {
		out[i] = m.ChatSessionToEntity(s)
	}
	return out
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Position:      msg.Position,
		Role:          entity.MessageRole(msg.Role),
		Content:       msg.Content,
		Timestamp:     msg.Timestamp,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Position:      msg.Position,
		Role:          string(msg.Role),
		Content:       msg.Content,
		Timestamp:     msg.Timestamp,
	}
}

func (m *ChatMapper) ChatMessagesToEntities(msgs []*model.ChatMessage) []*entity.ChatMessage {
	out := make([]*entity.ChatMessage, len(msgs))
	for i, msg := range msgs {
		out[i] = m.ChatMessageToEntity(msg)
	}
	return out
}

func (m *ChatMapper) ChatMessagesToModels(msgs []*entity.ChatMessage) []*model.ChatMessage {
	out := make([]*model.ChatMessage, len(msgs))
	for i, msg := range msgs {
		out[i] = m.ChatMessageToModel(msg)
	}
	return out
}

// Ledger Mappers

func (m *ChatMapper) GeneratedContentToEntity(c *model.GeneratedContent) *entity.GeneratedContent {
	if c == nil {
		return nil
	}
	return &entity.GeneratedContent{
		Id:            c.Id,
		ChatSessionId: c.ChatSessionId,
		Position:      c.Position,
		ThemeId:       c.ThemeId,
		Content:       c.Content,
		Platform:      c.Platform,
		CreatedAt:     c.CreatedAt,
	}
}

func (m *ChatMapper) GeneratedContentToModel(c *entity.GeneratedContent) *model.GeneratedContent {
	if c == nil {
		return nil
	}
	return &model.GeneratedContent{
		Id:            c.Id,
		ChatSessionId: c.ChatSessionId,
		Position:      c.Position,
		ThemeId:       c.ThemeId,
		Content:       c.Content,
		Platform:      c.Platform,
		CreatedAt:     c.CreatedAt,
	}
}

func (m *ChatMapper) GeneratedContentsToEntities(cs []*model.GeneratedContent) []*entity.GeneratedContent {
	out := make([]*entity.GeneratedContent, len(cs))
	for i, c := range cs {
		out[i] = m.GeneratedContentToEntity(c)
	}
	return out
}

func (m *ChatMapper) GeneratedContentsToModels(cs []*entity.GeneratedContent) []*model.GeneratedContent {
	out := make([]*model.GeneratedContent, len(cs))
	for i, c := range cs {
		out[i] = m.GeneratedContentToModel(c)
	}
	return out
}

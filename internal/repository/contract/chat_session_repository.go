package contract

import (
	"context"

	"flowa-be/internal/entity"
	"flowa-be/internal/repository/specification"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)

	// SaveVersioned writes the session row only if storage still holds
	// expectedVersion, then sets session.Version to the next version.
	// Returns ErrStaleVersion otherwise.
	SaveVersioned(ctx context.Context, session *entity.ChatSession, expectedVersion int) error
}

type ChatMessageRepository interface {
	CreateBulk(ctx context.Context, messages []*entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
}

type GeneratedContentRepository interface {
	CreateBulk(ctx context.Context, contents []*entity.GeneratedContent) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GeneratedContent, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedContent, error)
}

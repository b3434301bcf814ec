package contract

import (
	"context"

	"flowa-be/internal/entity"

	"github.com/google/uuid"
)

type SocialAccountRepository interface {
	FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.SocialAccount, error)
	FindByBrand(ctx context.Context, brandId uuid.UUID) ([]*entity.SocialAccount, error)

	// Upsert replaces the link identified by (user, platform, account id).
	Upsert(ctx context.Context, account *entity.SocialAccount) error
}

type SocialPostRepository interface {
	Create(ctx context.Context, post *entity.SocialPost) error
	FindOne(ctx context.Context, id uuid.UUID) (*entity.SocialPost, error)
	FindByUser(ctx context.Context, userId uuid.UUID, filter entity.SocialPostFilter) ([]*entity.SocialPost, error)
	UpdateStatus(ctx context.Context, post *entity.SocialPost) error
}

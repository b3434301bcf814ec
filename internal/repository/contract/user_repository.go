package contract

import (
	"context"

	"flowa-be/internal/entity"
	"flowa-be/internal/repository/specification"
)

type UserRepository interface {
	// Create returns ErrDuplicate when the email is taken.
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Provider
	SaveUserProvider(ctx context.Context, provider *entity.UserProvider) error
	FindByProvider(ctx context.Context, providerName, providerUserId string) (*entity.User, error)
}

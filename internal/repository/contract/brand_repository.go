package contract

import (
	"context"

	"flowa-be/internal/entity"
	"flowa-be/internal/repository/specification"
)

type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	Update(ctx context.Context, brand *entity.Brand) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Brand, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Brand, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ThemeRepository interface {
	Create(ctx context.Context, theme *entity.Theme) error
	Update(ctx context.Context, theme *entity.Theme) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Theme, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Theme, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

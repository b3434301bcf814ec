package memory

import (
	"context"
	"time"

	"flowa-be/internal/entity"
	"flowa-be/internal/repository/specification"

	"github.com/google/uuid"
)

type brandRepository struct {
	uow *UnitOfWork
}

func (r *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	if brand.Id == uuid.Nil {
		brand.Id = uuid.New()
	}
	stamp(&brand.CreatedAt, &brand.UpdatedAt)
	s.brands.insert(s, log, brand.Id, *brand)
	return nil
}

func (r *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	prev, ok := s.brands.get(brand.Id)
	if !ok {
		return nil
	}
	brand.OwnerId = prev.OwnerId
	brand.CreatedAt = prev.CreatedAt
	brand.UpdatedAt = time.Now()
	s.brands.replace(log, brand.Id, *brand)
	return nil
}

func (r *brandRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Brand, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	return first(s.brands.all(), brandColumns, specs)
}

func (r *brandRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Brand, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	rows, err := query(s.brands.all(), brandColumns, specs)
	return pointers(rows), err
}

func (r *brandRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	rows, err := query(s.brands.all(), brandColumns, specs)
	return int64(len(rows)), err
}

type themeRepository struct {
	uow *UnitOfWork
}

func (r *themeRepository) Create(ctx context.Context, theme *entity.Theme) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	if theme.Id == uuid.Nil {
		theme.Id = uuid.New()
	}
	stamp(&theme.CreatedAt, &theme.UpdatedAt)
	s.themes.insert(s, log, theme.Id, *theme)
	return nil
}

func (r *themeRepository) Update(ctx context.Context, theme *entity.Theme) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	prev, ok := s.themes.get(theme.Id)
	if !ok {
		return nil
	}
	theme.BrandId = prev.BrandId
	theme.CreatedAt = prev.CreatedAt
	theme.UpdatedAt = time.Now()
	s.themes.replace(log, theme.Id, *theme)
	return nil
}

func (r *themeRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Theme, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	return first(s.themes.all(), themeColumns, specs)
}

func (r *themeRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Theme, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	rows, err := query(s.themes.all(), themeColumns, specs)
	return pointers(rows), err
}

func (r *themeRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	rows, err := query(s.themes.all(), themeColumns, specs)
	return int64(len(rows)), err
}

type productRepository struct {
	uow *UnitOfWork
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	if product.Id == uuid.Nil {
		product.Id = uuid.New()
	}
	stamp(&product.CreatedAt, &product.UpdatedAt)
	s.products.insert(s, log, product.Id, *product)
	return nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	prev, ok := s.products.get(product.Id)
	if !ok {
		return nil
	}
	product.BrandId = prev.BrandId
	product.CreatedAt = prev.CreatedAt
	product.UpdatedAt = time.Now()
	s.products.replace(log, product.Id, *product)
	return nil
}

func (r *productRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	return first(s.products.all(), productColumns, specs)
}

func (r *productRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	rows, err := query(s.products.all(), productColumns, specs)
	return pointers(rows), err
}

func (r *productRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	rows, err := query(s.products.all(), productColumns, specs)
	return int64(len(rows)), err
}

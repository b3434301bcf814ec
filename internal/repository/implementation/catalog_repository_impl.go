package implementation

import (
	"context"
	"errors"

	"flowa-be/internal/entity"
	"flowa-be/internal/mapper"
	"flowa-be/internal/model"
	"flowa-be/internal/repository/contract"
	"flowa-be/internal/repository/specification"

	"gorm.io/gorm"
)

// Brands

type BrandRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewBrandRepository(db *gorm.DB) contract.BrandRepository {
	return &BrandRepositoryImpl{db: db, mapper: mapper.NewCatalogMapper()}
}

func (r *BrandRepositoryImpl) Create(ctx context.Context, brand *entity.Brand) error {
	m := r.mapper.BrandToModel(brand)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translate(err)
	}
	*brand = *r.mapper.BrandToEntity(m)
	return nil
}

// Update never touches owner_id.
func (r *BrandRepositoryImpl) Update(ctx context.Context, brand *entity.Brand) error {
	m := r.mapper.BrandToModel(brand)
	if err := r.db.WithContext(ctx).Omit("owner_id", "created_at").Save(m).Error; err != nil {
		return translate(err)
	}
	brand.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *BrandRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Brand, error) {
	var m model.Brand
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BrandToEntity(&m), nil
}

func (r *BrandRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Brand, error) {
	var ms []*model.Brand
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.BrandsToEntities(ms), nil
}

func (r *BrandRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	err := applySpecifications(r.db.WithContext(ctx).Model(&model.Brand{}), specs...).Count(&count).Error
	return count, err
}

// Themes

type ThemeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewThemeRepository(db *gorm.DB) contract.ThemeRepository {
	return &ThemeRepositoryImpl{db: db, mapper: mapper.NewCatalogMapper()}
}

func (r *ThemeRepositoryImpl) Create(ctx context.Context, theme *entity.Theme) error {
	m := r.mapper.ThemeToModel(theme)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translate(err)
	}
	*theme = *r.mapper.ThemeToEntity(m)
	return nil
}

// Update never touches brand_id.
func (r *ThemeRepositoryImpl) Update(ctx context.Context, theme *entity.Theme) error {
	m := r.mapper.ThemeToModel(theme)
	if err := r.db.WithContext(ctx).Omit("brand_id", "created_at").Save(m).Error; err != nil {
		return translate(err)
	}
	theme.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ThemeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Theme, error) {
	var m model.Theme
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ThemeToEntity(&m), nil
}

func (r *ThemeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Theme, error) {
	var ms []*model.Theme
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.ThemesToEntities(ms), nil
}

func (r *ThemeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	err := applySpecifications(r.db.WithContext(ctx).Model(&model.Theme{}), specs...).Count(&count).Error
	return count, err
}

// Products

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{db: db, mapper: mapper.NewCatalogMapper()}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	m := r.mapper.ProductToModel(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translate(err)
	}
	*product = *r.mapper.ProductToEntity(m)
	return nil
}

// Update never touches brand_id.
func (r *ProductRepositoryImpl) Update(ctx context.Context, product *entity.Product) error {
	m := r.mapper.ProductToModel(product)
	if err := r.db.WithContext(ctx).Omit("brand_id", "created_at").Save(m).Error; err != nil {
		return translate(err)
	}
	product.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ProductRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	var m model.Product
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProductToEntity(&m), nil
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	var ms []*model.Product
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.ProductsToEntities(ms), nil
}

func (r *ProductRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	err := applySpecifications(r.db.WithContext(ctx).Model(&model.Product{}), specs...).Count(&count).Error
	return count, err
}

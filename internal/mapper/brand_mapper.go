package mapper

import (
	"flowa-be/internal/entity"
	"flowa-be/internal/model"
)

// CatalogMapper maps brands, themes and products.
type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) BrandToEntity(b *model.Brand) *entity.Brand {
	if b == nil {
		return nil
	}
	schedule := make([]entity.PostingSlot, len(b.PostingSchedule))
	for i, s := range b.PostingSchedule {
		schedule[i] = entity.PostingSlot{Day: s.Day, Time: s.Time}
	}
	return &entity.Brand{
		Id:              b.Id,
		OwnerId:         b.OwnerId,
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

func (m *CatalogMapper) BrandToModel(b *entity.Brand) *model.Brand {
	if b == nil {
		return nil
	}
	schedule := make([]model.PostingSlot, len(b.PostingSchedule))
	for i, s := range b.PostingSchedule {
		schedule[i] = model.PostingSlot{Day: s.Day, Time: s.Time}
	}
	return &model.Brand{
		Id:              b.Id,
		OwnerId:         b.OwnerId,
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

func (m *CatalogMapper) BrandsToEntities(brands []*model.Brand) []*entity.Brand {
	out := make([]*entity.Brand, len(brands))
	for i, b := range brands {
		out[i] = m.BrandToEntity(b)
	}
	return out
}

func (m *CatalogMapper) ThemeToEntity(t *model.Theme) *entity.Theme {
	if t == nil {
		return nil
	}
	return &entity.Theme{
		Id:            t.Id,
		BrandId:       t.BrandId,
		Name:          t.Name,
		Description:   t.Description,
		Category:      entity.ThemeCategory(t.Category),
		ContentLength: t.ContentLength,
		Tone:          t.Tone,
		Style:         t.Style,
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (m *CatalogMapper) ThemeToModel(t *entity.Theme) *model.Theme {
	if t == nil {
		return nil
	}
	return &model.Theme{
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

func (m *CatalogMapper) ThemesToEntities(themes []*model.Theme) []*entity.Theme {
	out := make([]*entity.Theme, len(themes))
	for i, t := range themes {
		out[i] = m.ThemeToEntity(t)
	}
	return out
}

func (m *CatalogMapper) ProductToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}
	return &entity.Product{
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

func (m *CatalogMapper) ProductToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}
	return &model.Product{
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

func (m *CatalogMapper) ProductsToEntities(products []*model.Product) []*entity.Product {
	out := make([]*entity.Product, len(products))
	for i, p := range products {
		out[i] = m.ProductToEntity(p)
	}
	return out
}

// nonNil keeps empty lists serialized as [] rather than null.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

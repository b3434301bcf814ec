package service

import (
	"context"
	"time"

	"flowa-be/internal/dto"
	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/repository/specification"
	"flowa-be/internal/repository/unitofwork"
	"flowa-be/pkg/access"

	"github.com/google/uuid"
)

type IThemeService interface {
	Create(ctx context.Context, actor access.Actor, req *dto.CreateThemeRequest) (*dto.ThemeResponse, error)
	ListByBrand(ctx context.Context, actor access.Actor, brandId uuid.UUID) ([]*dto.ThemeResponse, error)
	Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*dto.ThemeResponse, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *dto.UpdateThemeRequest) (*dto.ThemeResponse, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}

type themeService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewThemeService(uowFactory unitofwork.RepositoryFactory) IThemeService {
	return &themeService{uowFactory: uowFactory}
}

func (s *themeService) Create(ctx context.Context, actor access.Actor, req *dto.CreateThemeRequest) (*dto.ThemeResponse, error) {
	brandId, err := parseID(req.BrandId, "Brand")
	if err != nil {
		return nil, err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := activeBrandFor(ctx, uow, actor, brandId); err != nil {
		return nil, err
	}

	now := time.Now()
	theme := &entity.Theme{
		Id:            uuid.New(),
		BrandId:       brandId,
		Name:          req.Name,
		Description:   req.Description,
		Category:      entity.ThemeCategory(req.Category),
		ContentLength: req.ContentLength,
		Tone:          req.Tone,
		Style:         req.Style,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if theme.Category == "" {
		theme.Category = entity.ThemeCategoryOther
	}
	if theme.ContentLength <= 0 {
		theme.ContentLength = entity.DefaultContentLength
	}
	if theme.Tone == "" {
		theme.Tone = entity.DefaultTone
	}

	if err := uow.ThemeRepository().Create(ctx, theme); err != nil {
		return nil, apperror.Internal(err)
	}
	return toThemeResponse(theme), nil
}

func (s *themeService) ListByBrand(ctx context.Context, actor access.Actor, brandId uuid.UUID) ([]*dto.ThemeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := activeBrandFor(ctx, uow, actor, brandId); err != nil {
		return nil, err
	}

	themes, err := uow.ThemeRepository().FindAll(ctx,
		specification.ByBrandID{BrandID: brandId},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	res := make([]*dto.ThemeResponse, 0, len(themes))
	for _, t := range themes {
		res = append(res, toThemeResponse(t))
	}
	return res, nil
}

func (s *themeService) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*dto.ThemeResponse, error) {
	theme, err := s.themeFor(ctx, s.uowFactory.NewUnitOfWork(ctx), actor, id)
	if err != nil {
		return nil, err
	}
	return toThemeResponse(theme), nil
}

func (s *themeService) Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *dto.UpdateThemeRequest) (*dto.ThemeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	theme, err := s.themeFor(ctx, uow, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		theme.Name = *req.Name
	}
	if req.Description != nil {
		theme.Description = *req.Description
	}
	if req.Category != nil {
		theme.Category = entity.ThemeCategory(*req.Category)
	}
	if req.ContentLength != nil {
		theme.ContentLength = *req.ContentLength
	}
	if req.Tone != nil {
		theme.Tone = *req.Tone
	}
	if req.Style != nil {
		theme.Style = *req.Style
	}

	if err := uow.ThemeRepository().Update(ctx, theme); err != nil {
		return nil, apperror.Internal(err)
	}
	return toThemeResponse(theme), nil
}

func (s *themeService) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	theme, err := s.themeFor(ctx, uow, actor, id)
	if err != nil {
		return err
	}
	theme.IsActive = false
	if err := uow.ThemeRepository().Update(ctx, theme); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (s *themeService) themeFor(ctx context.Context, uow unitofwork.UnitOfWork, actor access.Actor, id uuid.UUID) (*entity.Theme, error) {
	theme, err := uow.ThemeRepository().FindOne(ctx, specification.ByID{ID: id}, specification.ActiveOnly{})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if theme == nil {
		return nil, gate(actor, false, "Theme")
	}
	owner, err := brandOwner(ctx, uow, theme.BrandId)
	if err != nil {
		return nil, err
	}
	if err := gate(actor, true, "Theme", owner); err != nil {
		return nil, err
	}
	return theme, nil
}

// brandOwner returns uuid.Nil when the brand is gone, which only admins pass.
func brandOwner(ctx context.Context, uow unitofwork.UnitOfWork, brandId uuid.UUID) (uuid.UUID, error) {
	brand, err := uow.BrandRepository().FindOne(ctx, specification.ByID{ID: brandId})
	if err != nil {
		return uuid.Nil, apperror.Internal(err)
	}
	if brand == nil {
		return uuid.Nil, nil
	}
	return brand.OwnerId, nil
}

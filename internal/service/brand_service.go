package service

import (
	"context"
	"time"

	"flowa-be/internal/dto"
	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/pkg/logger"
	"flowa-be/internal/repository/specification"
	"flowa-be/internal/repository/unitofwork"
	"flowa-be/pkg/access"

	"github.com/google/uuid"
)

type IBrandService interface {
	Create(ctx context.Context, actor access.Actor, req *dto.CreateBrandRequest) (*dto.BrandResponse, error)
	List(ctx context.Context, actor access.Actor) ([]*dto.BrandResponse, error)
	Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*dto.BrandResponse, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *dto.UpdateBrandRequest) (*dto.BrandResponse, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}

type brandService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewBrandService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IBrandService {
	return &brandService{uowFactory: uowFactory, logger: log}
}

func (s *brandService) Create(ctx context.Context, actor access.Actor, req *dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	now := time.Now()
	brand := &entity.Brand{
		Id:              uuid.New(),
		OwnerId:         actor.ID,
		Name:            req.Name,
		Description:     req.Description,
		Tone:            req.Tone,
		Keywords:        nonNil(req.Keywords),
		Hashtags:        nonNil(req.Hashtags),
		ContentRules:    req.ContentRules,
		Logo:            req.Logo,
		Images:          nonNil(req.Images),
		PostingSchedule: toPostingSlots(req.PostingSchedule),
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if brand.Tone == "" {
		brand.Tone = entity.DefaultTone
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.BrandRepository().Create(ctx, brand); err != nil {
		return nil, apperror.Internal(err)
	}

	s.logger.Info("BrandService", "Brand created", map[string]interface{}{"brand_id": brand.Id.String(), "owner": actor.ID.String()})
	return toBrandResponse(brand), nil
}

func (s *brandService) List(ctx context.Context, actor access.Actor) ([]*dto.BrandResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	brands, err := uow.BrandRepository().FindAll(ctx,
		specification.OwnedBy{OwnerID: actor.ID},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	res := make([]*dto.BrandResponse, 0, len(brands))
	for _, b := range brands {
		res = append(res, toBrandResponse(b))
	}
	return res, nil
}

func (s *brandService) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*dto.BrandResponse, error) {
	brand, err := activeBrandFor(ctx, s.uowFactory.NewUnitOfWork(ctx), actor, id)
	if err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

func (s *brandService) Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	brand, err := activeBrandFor(ctx, uow, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		brand.Name = *req.Name
	}
	if req.Description != nil {
		brand.Description = *req.Description
	}
	if req.Tone != nil {
		brand.Tone = *req.Tone
	}
	if req.Keywords != nil {
		brand.Keywords = nonNil(*req.Keywords)
	}
	if req.Hashtags != nil {
		brand.Hashtags = nonNil(*req.Hashtags)
	}
	if req.ContentRules != nil {
		brand.ContentRules = *req.ContentRules
	}
	if req.Logo != nil {
		brand.Logo = *req.Logo
	}
	if req.Images != nil {
		brand.Images = nonNil(*req.Images)
	}
	if req.PostingSchedule != nil {
		brand.PostingSchedule = toPostingSlots(*req.PostingSchedule)
	}

	if err := uow.BrandRepository().Update(ctx, brand); err != nil {
		return nil, apperror.Internal(err)
	}
	return toBrandResponse(brand), nil
}

// Delete deactivates the brand. Sessions and content that reference it stay readable.
func (s *brandService) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	brand, err := activeBrandFor(ctx, uow, actor, id)
	if err != nil {
		return err
	}

	brand.IsActive = false
	if err := uow.BrandRepository().Update(ctx, brand); err != nil {
		return apperror.Internal(err)
	}
	s.logger.Info("BrandService", "Brand deactivated", map[string]interface{}{"brand_id": brand.Id.String()})
	return nil
}

func toPostingSlots(slots []dto.PostingSlot) []entity.PostingSlot {
	out := make([]entity.PostingSlot, 0, len(slots))
	for _, slot := range slots {
		out = append(out, entity.PostingSlot{Day: slot.Day, Time: slot.Time})
	}
	return out
}

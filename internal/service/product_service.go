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

type IProductService interface {
	Create(ctx context.Context, actor access.Actor, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	ListByBrand(ctx context.Context, actor access.Actor, brandId uuid.UUID) ([]*dto.ProductResponse, error)
	Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*dto.ProductResponse, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}

type productService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProductService(uowFactory unitofwork.RepositoryFactory) IProductService {
	return &productService{uowFactory: uowFactory}
}

func (s *productService) Create(ctx context.Context, actor access.Actor, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	brandId, err := parseID(req.BrandId, "Brand")
	if err != nil {
		return nil, err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := activeBrandFor(ctx, uow, actor, brandId); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		Id:             uuid.New(),
		BrandId:        brandId,
		Name:           req.Name,
		Description:    req.Description,
		Features:       nonNil(req.Features),
		Benefits:       nonNil(req.Benefits),
		TargetAudience: req.TargetAudience,
		Images:         nonNil(req.Images),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uow.ProductRepository().Create(ctx, product); err != nil {
		return nil, apperror.Internal(err)
	}
	return toProductResponse(product), nil
}

func (s *productService) ListByBrand(ctx context.Context, actor access.Actor, brandId uuid.UUID) ([]*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := activeBrandFor(ctx, uow, actor, brandId); err != nil {
		return nil, err
	}

	products, err := uow.ProductRepository().FindAll(ctx,
		specification.ByBrandID{BrandID: brandId},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	res := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, toProductResponse(p))
	}
	return res, nil
}

func (s *productService) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := s.productFor(ctx, s.uowFactory.NewUnitOfWork(ctx), actor, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func (s *productService) Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := s.productFor(ctx, uow, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Features != nil {
		product.Features = nonNil(*req.Features)
	}
	if req.Benefits != nil {
		product.Benefits = nonNil(*req.Benefits)
	}
	if req.TargetAudience != nil {
		product.TargetAudience = *req.TargetAudience
	}
	if req.Images != nil {
		product.Images = nonNil(*req.Images)
	}

	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return nil, apperror.Internal(err)
	}
	return toProductResponse(product), nil
}

func (s *productService) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := s.productFor(ctx, uow, actor, id)
	if err != nil {
		return err
	}
	product.IsActive = false
	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (s *productService) productFor(ctx context.Context, uow unitofwork.UnitOfWork, actor access.Actor, id uuid.UUID) (*entity.Product, error) {
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id}, specification.ActiveOnly{})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if product == nil {
		return nil, gate(actor, false, "Product")
	}
	owner, err := brandOwner(ctx, uow, product.BrandId)
	if err != nil {
		return nil, err
	}
	if err := gate(actor, true, "Product", owner); err != nil {
		return nil, err
	}
	return product, nil
}

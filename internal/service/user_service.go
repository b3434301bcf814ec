package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"flowa-be/internal/dto"
	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/repository/contract"
	"flowa-be/internal/repository/specification"
	"flowa-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error)
	UpdateApiKeys(ctx context.Context, userId uuid.UUID, req *dto.UpdateApiKeysRequest) (*dto.ApiKeysResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	tokens     TokenIssuer
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, tokens TokenIssuer) IUserService {
	return &userService{uowFactory: uowFactory, tokens: tokens}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	return s.profile(ctx, uow, user)
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if email := normalizeEmail(req.Email); email != "" && email != user.Email {
		taken, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if taken != nil {
			return nil, apperror.Validation("Email already in use")
		}
		user.Email = email
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		hashStr := string(hash)
		user.PasswordHash = &hashStr
	}
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, apperror.Validation("Email already in use")
		}
		return nil, apperror.Internal(err)
	}

	profile, err := s.profile(ctx, uow, user)
	if err != nil {
		return nil, err
	}
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &dto.UpdateProfileResponse{UserProfileResponse: *profile, Token: token}, nil
}

// UpdateApiKeys replaces the whole key list.
func (s *userService) UpdateApiKeys(ctx context.Context, userId uuid.UUID, req *dto.UpdateApiKeysRequest) (*dto.ApiKeysResponse, error) {
	keys := make([]entity.ApiKey, 0, len(req.ApiKeys))
	for _, in := range req.ApiKeys {
		if !entity.IsSupportedAiService(in.Service) {
			return nil, apperror.Validation("Invalid service: " + in.Service)
		}
		active := true
		if in.Active != nil {
			active = *in.Active
		}
		keys = append(keys, entity.ApiKey{Service: in.Service, Key: in.Key, Active: active})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	user.ApiKeys = keys
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return &dto.ApiKeysResponse{Message: "API keys updated successfully", ApiKeys: maskKeys(user.ApiKeys)}, nil
}

func (s *userService) profile(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User) (*dto.UserProfileResponse, error) {
	brands, err := uow.BrandRepository().FindAll(ctx,
		specification.OwnedBy{OwnerID: user.Id},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	brandIds := make([]uuid.UUID, 0, len(brands))
	for _, b := range brands {
		brandIds = append(brandIds, b.Id)
	}

	return &dto.UserProfileResponse{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		Brands:    brandIds,
		ApiKeys:   maskKeys(user.ApiKeys),
		CreatedAt: user.CreatedAt,
	}, nil
}

func loadUser(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func maskKeys(keys []entity.ApiKey) []dto.ApiKeyView {
	views := make([]dto.ApiKeyView, 0, len(keys))
	for _, k := range keys {
		views = append(views, dto.ApiKeyView{Service: k.Service, Key: maskKey(k.Key), Active: k.Active})
	}
	return views
}

// maskKey keeps the first and last four characters of long keys.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}

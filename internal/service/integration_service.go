package service

import (
	"context"
	"time"

	"flowa-be/internal/dto"
	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	keyActionAdd    = "add"
	keyActionUpdate = "update"
	keyActionDelete = "delete"
	keyActionToggle = "toggle"
)

type IIntegrationService interface {
	ManageApiKey(ctx context.Context, userId uuid.UUID, req *dto.ManageApiKeyRequest) (*dto.ApiKeysResponse, error)
	ApiUsage(ctx context.Context, service string) (*dto.ApiUsageResponse, error)
}

type integrationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewIntegrationService(uowFactory unitofwork.RepositoryFactory) IIntegrationService {
	return &integrationService{uowFactory: uowFactory}
}

// ManageApiKey applies one action to the key list of a single service.
func (s *integrationService) ManageApiKey(ctx context.Context, userId uuid.UUID, req *dto.ManageApiKeyRequest) (*dto.ApiKeysResponse, error) {
	if !entity.IsSupportedAiService(req.Service) {
		return nil, apperror.Validation("Invalid service: " + req.Service)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, k := range user.ApiKeys {
		if k.Service == req.Service {
			idx = i
			break
		}
	}

	switch req.Action {
	case keyActionAdd:
		user.ApiKeys = append(user.ApiKeys, entity.ApiKey{Service: req.Service, Key: req.Key, Active: true})
	case keyActionUpdate:
		if idx < 0 {
			return nil, apperror.Validation("API key not found")
		}
		user.ApiKeys[idx].Key = req.Key
		user.ApiKeys[idx].Active = true
	case keyActionDelete:
		kept := make([]entity.ApiKey, 0, len(user.ApiKeys))
		for _, k := range user.ApiKeys {
			if k.Service != req.Service {
				kept = append(kept, k)
			}
		}
		user.ApiKeys = kept
	case keyActionToggle:
		if idx < 0 {
			return nil, apperror.Validation("API key not found")
		}
		user.ApiKeys[idx].Active = !user.ApiKeys[idx].Active
	default:
		return nil, apperror.Validation("Invalid action")
	}

	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return &dto.ApiKeysResponse{Message: "API keys updated successfully", ApiKeys: maskKeys(user.ApiKeys)}, nil
}

// ApiUsage returns the usage fixture, optionally narrowed to one service.
func (s *integrationService) ApiUsage(ctx context.Context, service string) (*dto.ApiUsageResponse, error) {
	byService := []dto.ServiceUsage{
		{Service: entity.ServiceOpenAI, Requests: 850, Tokens: 2550000, Cost: 51.0},
		{Service: entity.ServiceAnthropic, Requests: 250, Tokens: 750000, Cost: 15.0},
		{Service: entity.ServiceGoogle, Requests: 150, Tokens: 450000, Cost: 9.5},
	}
	if service != "" {
		filtered := make([]dto.ServiceUsage, 0, 1)
		for _, u := range byService {
			if u.Service == service {
				filtered = append(filtered, u)
			}
		}
		byService = filtered
	}

	return &dto.ApiUsageResponse{
		Overview:  dto.UsageOverview{TotalRequests: 1250, TotalTokens: 3750000, EstimatedCost: 75.5},
		ByService: byService,
		TimeDistribution: []dto.DailyUsage{
			{Day: "2025-04-18", Requests: 120, Tokens: 360000},
			{Day: "2025-04-19", Requests: 135, Tokens: 405000},
			{Day: "2025-04-20", Requests: 180, Tokens: 540000},
			{Day: "2025-04-21", Requests: 210, Tokens: 630000},
			{Day: "2025-04-22", Requests: 245, Tokens: 735000},
			{Day: "2025-04-23", Requests: 175, Tokens: 525000},
			{Day: "2025-04-24", Requests: 185, Tokens: 555000},
		},
	}, nil
}

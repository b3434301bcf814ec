package service

import (
	"context"
	"strconv"
	"time"

	"flowa-be/internal/dto"
	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/pkg/logger"
	"flowa-be/internal/repository/unitofwork"
	"flowa-be/pkg/access"

	"github.com/google/uuid"
)

type ISettingsService interface {
	GetGeneral(ctx context.Context, userId uuid.UUID) (*dto.GeneralSettings, error)
	UpdateGeneral(ctx context.Context, userId uuid.UUID, req *dto.UpdateGeneralSettingsRequest) (*dto.GeneralSettings, error)
	GetAi(ctx context.Context, userId uuid.UUID) (*dto.AiSettings, error)
	UpdateAi(ctx context.Context, userId uuid.UUID, req *dto.UpdateAiSettingsRequest) (*dto.AiSettings, error)
	GetAdvanced(ctx context.Context, actor access.Actor) (*dto.AdvancedSettings, error)
	UpdateAdvanced(ctx context.Context, actor access.Actor, req *dto.UpdateAdvancedSettingsRequest) (*dto.AdvancedSettings, error)
	Backup(ctx context.Context, actor access.Actor) (*dto.BackupResponse, error)
	Restore(ctx context.Context, actor access.Actor, req *dto.RestoreRequest) (*dto.BackupResponse, error)
}

type settingsService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	now        func() time.Time
}

func NewSettingsService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ISettingsService {
	return &settingsService{uowFactory: uowFactory, logger: log, now: time.Now}
}

func (s *settingsService) GetGeneral(ctx context.Context, userId uuid.UUID) (*dto.GeneralSettings, error) {
	settings, err := s.load(ctx, s.uowFactory.NewUnitOfWork(ctx), userId)
	if err != nil {
		return nil, err
	}
	return toGeneralSettings(settings.General), nil
}

func (s *settingsService) UpdateGeneral(ctx context.Context, userId uuid.UUID, req *dto.UpdateGeneralSettingsRequest) (*dto.GeneralSettings, error) {
	settings, err := s.update(ctx, userId, func(st *entity.Settings) {
		if req.Language != nil {
			st.General.Language = *req.Language
		}
		if req.Timezone != nil {
			st.General.Timezone = *req.Timezone
		}
		if req.EmailNotifications != nil {
			st.General.EmailNotifications = *req.EmailNotifications
		}
		if req.Theme != nil {
			st.General.Theme = *req.Theme
		}
	})
	if err != nil {
		return nil, err
	}
	return toGeneralSettings(settings.General), nil
}

func (s *settingsService) GetAi(ctx context.Context, userId uuid.UUID) (*dto.AiSettings, error) {
	settings, err := s.load(ctx, s.uowFactory.NewUnitOfWork(ctx), userId)
	if err != nil {
		return nil, err
	}
	return toAiSettings(settings.Ai), nil
}

func (s *settingsService) UpdateAi(ctx context.Context, userId uuid.UUID, req *dto.UpdateAiSettingsRequest) (*dto.AiSettings, error) {
	settings, err := s.update(ctx, userId, func(st *entity.Settings) {
		if req.DefaultModel != nil {
			st.Ai.DefaultModel = *req.DefaultModel
		}
		if req.Parameters != nil {
			st.Ai.Parameters = entity.AiParameters{
				Temperature:      req.Parameters.Temperature,
				FrequencyPenalty: req.Parameters.FrequencyPenalty,
				PresencePenalty:  req.Parameters.PresencePenalty,
				MaxTokens:        req.Parameters.MaxTokens,
			}
		}
		if req.PromptTemplates != nil {
			templates := make([]entity.PromptTemplate, 0, len(*req.PromptTemplates))
			for _, t := range *req.PromptTemplates {
				templates = append(templates, entity.PromptTemplate{Name: t.Name, Content: t.Content})
			}
			st.Ai.PromptTemplates = templates
		}
	})
	if err != nil {
		return nil, err
	}
	return toAiSettings(settings.Ai), nil
}

func (s *settingsService) GetAdvanced(ctx context.Context, actor access.Actor) (*dto.AdvancedSettings, error) {
	if !actor.IsAdmin() {
		return nil, apperror.Forbidden("Not authorized to view advanced settings")
	}
	settings, err := s.load(ctx, s.uowFactory.NewUnitOfWork(ctx), actor.ID)
	if err != nil {
		return nil, err
	}
	return toAdvancedSettings(settings.Advanced), nil
}

func (s *settingsService) UpdateAdvanced(ctx context.Context, actor access.Actor, req *dto.UpdateAdvancedSettingsRequest) (*dto.AdvancedSettings, error) {
	if !actor.IsAdmin() {
		return nil, apperror.Forbidden("Not authorized to change advanced settings")
	}
	settings, err := s.update(ctx, actor.ID, func(st *entity.Settings) {
		if req.WebhookCallbacks != nil {
			st.Advanced.WebhookCallbacks = append([]string{}, (*req.WebhookCallbacks)...)
		}
		if req.ProxySettings != nil {
			proxy := *req.ProxySettings
			st.Advanced.ProxySettings = &proxy
		}
		if req.BackupFrequency != nil {
			st.Advanced.BackupFrequency = *req.BackupFrequency
		}
		if req.UserLimits != nil {
			st.Advanced.UserLimits = entity.UserLimits{
				MaxBrands:   req.UserLimits.MaxBrands,
				MaxThemes:   req.UserLimits.MaxThemes,
				MaxProducts: req.UserLimits.MaxProducts,
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return toAdvancedSettings(settings.Advanced), nil
}

// Backup only acknowledges the request; no data is copied.
func (s *settingsService) Backup(ctx context.Context, actor access.Actor) (*dto.BackupResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperror.Forbidden("Not authorized to back up data")
	}
	now := s.now()
	backupId := strconv.FormatInt(now.UnixMilli(), 10)
	s.logger.Info("SettingsService", "Backup requested", map[string]interface{}{
		"user_id":   actor.ID.String(),
		"backup_id": backupId,
	})
	return &dto.BackupResponse{Message: "Backup started", BackupId: backupId, StartedAt: now}, nil
}

func (s *settingsService) Restore(ctx context.Context, actor access.Actor, req *dto.RestoreRequest) (*dto.BackupResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperror.Forbidden("Not authorized to restore data")
	}
	if req.BackupId == "" {
		return nil, apperror.Validation("Backup id is required")
	}
	s.logger.Info("SettingsService", "Restore requested", map[string]interface{}{
		"user_id":   actor.ID.String(),
		"backup_id": req.BackupId,
	})
	return &dto.BackupResponse{Message: "Restore started", BackupId: req.BackupId, StartedAt: s.now()}, nil
}

// load returns the stored settings or the defaults when none were saved.
func (s *settingsService) load(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.Settings, error) {
	settings, err := uow.SettingsRepository().FindByUser(ctx, userId)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if settings == nil {
		return entity.DefaultSettings(userId), nil
	}
	return settings, nil
}

func (s *settingsService) update(ctx context.Context, userId uuid.UUID, apply func(*entity.Settings)) (*entity.Settings, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback()

	settings, err := s.load(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	apply(settings)
	if err := uow.SettingsRepository().Update(ctx, settings); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(err)
	}
	return settings, nil
}

func toGeneralSettings(g entity.GeneralSettings) *dto.GeneralSettings {
	return &dto.GeneralSettings{
		Language:           g.Language,
		Timezone:           g.Timezone,
		EmailNotifications: g.EmailNotifications,
		Theme:              g.Theme,
	}
}

func toAiSettings(a entity.AiSettings) *dto.AiSettings {
	templates := make([]dto.PromptTemplate, 0, len(a.PromptTemplates))
	for _, t := range a.PromptTemplates {
		templates = append(templates, dto.PromptTemplate{Name: t.Name, Content: t.Content})
	}
	return &dto.AiSettings{
		DefaultModel: a.DefaultModel,
		Parameters: dto.AiParameters{
			Temperature:      a.Parameters.Temperature,
			FrequencyPenalty: a.Parameters.FrequencyPenalty,
			PresencePenalty:  a.Parameters.PresencePenalty,
			MaxTokens:        a.Parameters.MaxTokens,
		},
		PromptTemplates: templates,
	}
}

func toAdvancedSettings(a entity.AdvancedSettings) *dto.AdvancedSettings {
	return &dto.AdvancedSettings{
		WebhookCallbacks: nonNil(a.WebhookCallbacks),
		ProxySettings:    a.ProxySettings,
		BackupFrequency:  a.BackupFrequency,
		UserLimits: dto.UserLimits{
			MaxBrands:   a.UserLimits.MaxBrands,
			MaxThemes:   a.UserLimits.MaxThemes,
			MaxProducts: a.UserLimits.MaxProducts,
		},
	}
}

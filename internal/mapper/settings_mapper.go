package mapper

import (
	"time"

	"flowa-be/internal/entity"
	"flowa-be/internal/model"

	"gorm.io/datatypes"
)

type SettingsMapper struct{}

func NewSettingsMapper() *SettingsMapper {
	return &SettingsMapper{}
}

func (m *SettingsMapper) ToEntity(s *model.UserSettings) *entity.Settings {
	if s == nil {
		return nil
	}
	general := s.General.Data()
	ai := s.Ai.Data()
	adv := s.Advanced.Data()

	templates := make([]entity.PromptTemplate, len(ai.PromptTemplates))
	for i, t := range ai.PromptTemplates {
		templates[i] = entity.PromptTemplate{Name: t.Name, Content: t.Content}
	}

	updatedAt := s.UpdatedAt
	return &entity.Settings{
		UserId: s.UserId,
		General: entity.GeneralSettings{
			Language:           general.Language,
			Timezone:           general.Timezone,
			EmailNotifications: general.EmailNotifications,
			Theme:              general.Theme,
		},
		Ai: entity.AiSettings{
			DefaultModel: ai.DefaultModel,
			Parameters: entity.AiParameters{
				Temperature:      ai.Temperature,
				FrequencyPenalty: ai.FrequencyPenalty,
				PresencePenalty:  ai.PresencePenalty,
				MaxTokens:        ai.MaxTokens,
			},
			PromptTemplates: templates,
		},
		Advanced: entity.AdvancedSettings{
			WebhookCallbacks: adv.WebhookCallbacks,
			ProxySettings:    adv.ProxySettings,
			BackupFrequency:  adv.BackupFrequency,
			UserLimits: entity.UserLimits{
				MaxBrands:   adv.MaxBrands,
				MaxThemes:   adv.MaxThemes,
				MaxProducts: adv.MaxProducts,
			},
		},
		UpdatedAt: &updatedAt,
	}
}

func (m *SettingsMapper) ToModel(s *entity.Settings) *model.UserSettings {
	if s == nil {
		return nil
	}
	templates := make([]model.PromptTemplate, len(s.Ai.PromptTemplates))
	for i, t := range s.Ai.PromptTemplates {
		templates[i] = model.PromptTemplate{Name: t.Name, Content: t.Content}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.UserSettings{
		UserId: s.UserId,
		General: datatypes.NewJSONType(model.GeneralSettings{
			Language:           s.General.Language,
			Timezone:           s.General.Timezone,
			EmailNotifications: s.General.EmailNotifications,
			Theme:              s.General.Theme,
		}),
		Ai: datatypes.NewJSONType(model.AiSettings{
			DefaultModel:     s.Ai.DefaultModel,
			Temperature:      s.Ai.Parameters.Temperature,
			FrequencyPenalty: s.Ai.Parameters.FrequencyPenalty,
			PresencePenalty:  s.Ai.Parameters.PresencePenalty,
			MaxTokens:        s.Ai.Parameters.MaxTokens,
			PromptTemplates:  templates,
		}),
		Advanced: datatypes.NewJSONType(model.AdvancedSettings{
			WebhookCallbacks: s.Advanced.WebhookCallbacks,
			ProxySettings:    s.Advanced.ProxySettings,
			BackupFrequency:  s.Advanced.BackupFrequency,
			MaxBrands:        s.Advanced.UserLimits.MaxBrands,
			MaxThemes:        s.Advanced.UserLimits.MaxThemes,
			MaxProducts:      s.Advanced.UserLimits.MaxProducts,
		}),
		UpdatedAt: updatedAt,
	}
}

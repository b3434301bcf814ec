package entity

import (
	"time"

	"github.com/google/uuid"
)

type GeneralSettings struct {
	Language           string
	Timezone           string
	EmailNotifications bool
	Theme              string
}

type AiParameters struct {
	Temperature      float64
	FrequencyPenalty float64
	PresencePenalty  float64
	MaxTokens        int
}

type PromptTemplate struct {
	Name    string
	Content string
}

type AiSettings struct {
	DefaultModel    string
	Parameters      AiParameters
	PromptTemplates []PromptTemplate
}

type UserLimits struct {
	MaxBrands   int
	MaxThemes   int
	MaxProducts int
}

type AdvancedSettings struct {
	WebhookCallbacks []string
	ProxySettings    *string
	BackupFrequency  string
	UserLimits       UserLimits
}

type Settings struct {
	UserId    uuid.UUID
	General   GeneralSettings
	Ai        AiSettings
	Advanced  AdvancedSettings
	UpdatedAt *time.Time
}

// DefaultSettings is what a user sees before saving anything.
func DefaultSettings(userId uuid.UUID) *Settings {
	return &Settings{
		UserId: userId,
		General: GeneralSettings{
			Language:           "en",
			Timezone:           "UTC",
			EmailNotifications: true,
			Theme:              "light",
		},
		Ai: AiSettings{
			DefaultModel: string(DefaultAiModel),
			Parameters: AiParameters{
				Temperature:      DefaultTemperature,
				FrequencyPenalty: 0.5,
				PresencePenalty:  0.5,
				MaxTokens:        2000,
			},
			PromptTemplates: []PromptTemplate{
				{Name: "Default template", Content: "Create content for the brand {{brand}} with the theme {{theme}}."},
				{Name: "Facebook template", Content: "Create a Facebook post for the brand {{brand}} with the theme {{theme}}. Optimize for engagement and sharing."},
			},
		},
		Advanced: AdvancedSettings{
			WebhookCallbacks: []string{},
			BackupFrequency:  "daily",
			UserLimits: UserLimits{
				MaxBrands:   10,
				MaxThemes:   50,
				MaxProducts: 100,
			},
		},
	}
}

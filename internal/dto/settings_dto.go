package dto

import "time"

type GeneralSettings struct {
	Language           string `json:"language"`
	Timezone           string `json:"timezone"`
	EmailNotifications bool   `json:"emailNotifications"`
	Theme              string `json:"theme"`
}

type UpdateGeneralSettingsRequest struct {
	Language           *string `json:"language"`
	Timezone           *string `json:"timezone"`
	EmailNotifications *bool   `json:"emailNotifications"`
	Theme              *string `json:"theme" validate:"omitempty,oneof=light dark system"`
}

type AiParameters struct {
	Temperature      float64 `json:"temperature" validate:"min=0,max=2"`
	FrequencyPenalty float64 `json:"frequencyPenalty"`
	PresencePenalty  float64 `json:"presencePenalty"`
	MaxTokens        int     `json:"maxTokens" validate:"min=1"`
}

type PromptTemplate struct {
	Name    string `json:"name" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type AiSettings struct {
	DefaultModel    string           `json:"defaultModel"`
	Parameters      AiParameters     `json:"parameters"`
	PromptTemplates []PromptTemplate `json:"promptTemplates"`
}

type UpdateAiSettingsRequest struct {
	DefaultModel    *string           `json:"defaultModel" validate:"omitempty,oneof=openai anthropic google deepseek"`
	Parameters      *AiParameters     `json:"parameters"`
	PromptTemplates *[]PromptTemplate `json:"promptTemplates" validate:"omitempty,dive"`
}

type UserLimits struct {
	MaxBrands   int `json:"maxBrands" validate:"min=0"`
	MaxThemes   int `json:"maxThemes" validate:"min=0"`
	MaxProducts int `json:"maxProducts" validate:"min=0"`
}

type AdvancedSettings struct {
	WebhookCallbacks []string   `json:"webhookCallbacks"`
	ProxySettings    *string    `json:"proxySettings"`
	BackupFrequency  string     `json:"backupFrequency"`
	UserLimits       UserLimits `json:"userLimits"`
}

type UpdateAdvancedSettingsRequest struct {
	WebhookCallbacks *[]string   `json:"webhookCallbacks"`
	ProxySettings    *string     `json:"proxySettings"`
	BackupFrequency  *string     `json:"backupFrequency" validate:"omitempty,oneof=hourly daily weekly monthly"`
	UserLimits       *UserLimits `json:"userLimits"`
}

type BackupResponse struct {
	Message   string    `json:"message"`
	BackupId  string    `json:"backupId"`
	StartedAt time.Time `json:"startedAt"`
}

type RestoreRequest struct {
	BackupId string `json:"backupId" validate:"required"`
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GeneralSettings struct {
	Language           string `json:"language"`
	Timezone           string `json:"timezone"`
	EmailNotifications bool   `json:"emailNotifications"`
	Theme              string `json:"theme"`
}

type PromptTemplate struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type AiSettings struct {
	DefaultModel     string           `json:"defaultModel"`
	Temperature      float64          `json:"temperature"`
	FrequencyPenalty float64          `json:"frequencyPenalty"`
	PresencePenalty  float64          `json:"presencePenalty"`
	MaxTokens        int              `json:"maxTokens"`
	PromptTemplates  []PromptTemplate `json:"promptTemplates"`
}

type AdvancedSettings struct {
	WebhookCallbacks []string `json:"webhookCallbacks"`
	ProxySettings    *string  `json:"proxySettings"`
	BackupFrequency  string   `json:"backupFrequency"`
	MaxBrands        int      `json:"maxBrands"`
	MaxThemes        int      `json:"maxThemes"`
	MaxProducts      int      `json:"maxProducts"`
}

// UserSettings stores one row per user; each section is a JSON document.
type UserSettings struct {
	UserId    uuid.UUID                            `gorm:"type:uuid;primaryKey"`
	General   datatypes.JSONType[GeneralSettings]  `gorm:"type:jsonb;not null"`
	Ai        datatypes.JSONType[AiSettings]       `gorm:"type:jsonb;not null"`
	Advanced  datatypes.JSONType[AdvancedSettings] `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time                            `gorm:"autoUpdateTime"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

package contract

import (
	"context"

	"flowa-be/internal/entity"

	"github.com/google/uuid"
)

type SettingsRepository interface {
	// FindByUser returns nil when the user never saved settings.
	FindByUser(ctx context.Context, userId uuid.UUID) (*entity.Settings, error)
	Update(ctx context.Context, settings *entity.Settings) error
}

package memory

import (
	"context"
	"time"

	"flowa-be/internal/entity"

	"github.com/google/uuid"
)

// settingsRepository keys rows by user id.
type settingsRepository struct {
	uow *UnitOfWork
}

func (r *settingsRepository) FindByUser(ctx context.Context, userId uuid.UUID) (*entity.Settings, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	if settings, ok := s.settings.get(userId); ok {
		return &settings, nil
	}
	return nil, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *entity.Settings) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	now := time.Now()
	settings.UpdatedAt = &now
	if !s.settings.replace(log, settings.UserId, *settings) {
		s.settings.insert(s, log, settings.UserId, *settings)
	}
	return nil
}

package implementation

import (
	"context"
	"errors"

	"flowa-be/internal/entity"
	"flowa-be/internal/mapper"
	"flowa-be/internal/model"
	"flowa-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingsMapper
}

func NewSettingsRepository(db *gorm.DB) contract.SettingsRepository {
	return &SettingsRepositoryImpl{db: db, mapper: mapper.NewSettingsMapper()}
}

func (r *SettingsRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID) (*entity.Settings, error) {
	var m model.UserSettings
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SettingsRepositoryImpl) Update(ctx context.Context, settings *entity.Settings) error {
	m := r.mapper.ToModel(settings)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"general", "ai", "advanced", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	updatedAt := m.UpdatedAt
	settings.UpdatedAt = &updatedAt
	return nil
}

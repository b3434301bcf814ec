package implementation

import (
	"context"
	"errors"
	"time"

	"flowa-be/internal/entity"
	"flowa-be/internal/mapper"
	"flowa-be/internal/model"
	"flowa-be/internal/repository/contract"
	"flowa-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatSessionRepository(db *gorm.DB) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{db: db, mapper: mapper.NewChatMapper()}
}

func (r *ChatSessionRepositoryImpl) Create(ctx context.Context, session *entity.ChatSession) error {
	m := r.mapper.ChatSessionToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translate(err)
	}
	session.CreatedAt = m.CreatedAt
	session.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ChatSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	var m model.ChatSession
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChatSessionToEntity(&m), nil
}

func (r *ChatSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	var ms []*model.ChatSession
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.ChatSessionsToEntities(ms), nil
}

func (r *ChatSessionRepositoryImpl) SaveVersioned(ctx context.Context, session *entity.ChatSession, expectedVersion int) error {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&model.ChatSession{}).
		Where("id = ? AND version = ?", session.Id, expectedVersion).
		Updates(map[string]interface{}{
			"title":         session.Title,
			"version":       expectedVersion + 1,
			"message_count": session.MessageCount,
			"content_count": session.ContentCount,
			"updated_at":    now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return contract.ErrStaleVersion
	}

	session.Version = expectedVersion + 1
	session.UpdatedAt = now
	return nil
}

type ChatMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{db: db, mapper: mapper.NewChatMapper()}
}

// CreateBulk inserts messages; a position clash means another writer got there first.
func (r *ChatMessageRepositoryImpl) CreateBulk(ctx context.Context, messages []*entity.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(r.mapper.ChatMessagesToModels(messages)).Error; err != nil {
		if err = translate(err); errors.Is(err, contract.ErrDuplicate) {
			return contract.ErrStaleVersion
		}
		return err
	}
	return nil
}

func (r *ChatMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var ms []*model.ChatMessage
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.ChatMessagesToEntities(ms), nil
}

type GeneratedContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewGeneratedContentRepository(db *gorm.DB) contract.GeneratedContentRepository {
	return &GeneratedContentRepositoryImpl{db: db, mapper: mapper.NewChatMapper()}
}

func (r *GeneratedContentRepositoryImpl) CreateBulk(ctx context.Context, contents []*entity.GeneratedContent) error {
	if len(contents) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(r.mapper.GeneratedContentsToModels(contents)).Error; err != nil {
		if err = translate(err); errors.Is(err, contract.ErrDuplicate) {
			return contract.ErrStaleVersion
		}
		return err
	}
	return nil
}

func (r *GeneratedContentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GeneratedContent, error) {
	var m model.GeneratedContent
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.GeneratedContentToEntity(&m), nil
}

func (r *GeneratedContentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedContent, error) {
	var ms []*model.GeneratedContent
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.GeneratedContentsToEntities(ms), nil
}

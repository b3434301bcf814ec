package implementation

import (
	"context"
	"errors"

	"flowa-be/internal/entity"
	"flowa-be/internal/mapper"
	"flowa-be/internal/model"
	"flowa-be/internal/repository/contract"
	"flowa-be/internal/repository/scope"
	"flowa-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SocialAccountRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SocialMapper
}

func NewSocialAccountRepository(db *gorm.DB) contract.SocialAccountRepository {
	return &SocialAccountRepositoryImpl{db: db, mapper: mapper.NewSocialMapper()}
}

func (r *SocialAccountRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.SocialAccount, error) {
	var ms []*model.SocialAccount
	err := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByConnectedDesc),
		specification.UserOwnedBy{UserID: userId},
	).Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.AccountsToEntities(ms), nil
}

func (r *SocialAccountRepositoryImpl) FindByBrand(ctx context.Context, brandId uuid.UUID) ([]*entity.SocialAccount, error) {
	var ms []*model.SocialAccount
	err := applySpecifications(r.db.WithContext(ctx),
		specification.ByBrandID{BrandID: brandId},
		specification.Connected{},
	).Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.AccountsToEntities(ms), nil
}

func (r *SocialAccountRepositoryImpl) Upsert(ctx context.Context, account *entity.SocialAccount) error {
	m := r.mapper.AccountToModel(account)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "platform"}, {Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"brand_id", "account_name", "token", "is_connected", "connected_at"}),
	}).Create(m).Error
}

type SocialPostRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SocialMapper
}

func NewSocialPostRepository(db *gorm.DB) contract.SocialPostRepository {
	return &SocialPostRepositoryImpl{db: db, mapper: mapper.NewSocialMapper()}
}

func (r *SocialPostRepositoryImpl) Create(ctx context.Context, post *entity.SocialPost) error {
	m := r.mapper.PostToModel(post)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translate(err)
	}
	*post = *r.mapper.PostToEntity(m)
	return nil
}

func (r *SocialPostRepositoryImpl) FindOne(ctx context.Context, id uuid.UUID) (*entity.SocialPost, error) {
	var m model.SocialPost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PostToEntity(&m), nil
}

func (r *SocialPostRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID, filter entity.SocialPostFilter) ([]*entity.SocialPost, error) {
	specs := []specification.Specification{specification.UserOwnedBy{UserID: userId}}
	if filter.BrandId != nil {
		specs = append(specs, specification.ByBrandID{BrandID: *filter.BrandId})
	}
	if filter.Platform != "" {
		specs = append(specs, specification.ByPlatform{Platform: filter.Platform})
	}
	if filter.Status != "" {
		specs = append(specs, specification.ByStatus{Status: string(filter.Status)})
	}
	var ms []*model.SocialPost
	if err := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...).Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.PostsToEntities(ms), nil
}

func (r *SocialPostRepositoryImpl) UpdateStatus(ctx context.Context, post *entity.SocialPost) error {
	return r.db.WithContext(ctx).Model(&model.SocialPost{}).Where("id = ?", post.Id).
		Updates(map[string]interface{}{
			"status":        string(post.Status),
			"scheduled_for": post.ScheduledFor,
			"published_at":  post.PublishedAt,
		}).Error
}

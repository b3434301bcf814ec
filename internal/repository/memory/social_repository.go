package memory

import (
	"context"
	"time"

	"flowa-be/internal/entity"
	"flowa-be/internal/repository/specification"

	"github.com/google/uuid"
)

type socialAccountRepository struct {
	uow *UnitOfWork
}

func (r *socialAccountRepository) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.SocialAccount, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	rows, err := query(s.accounts.all(), accountColumns, []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "connected_at", Desc: true},
	})
	return pointers(rows), err
}

func (r *socialAccountRepository) FindByBrand(ctx context.Context, brandId uuid.UUID) ([]*entity.SocialAccount, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	rows, err := query(s.accounts.all(), accountColumns, []specification.Specification{
		specification.ByBrandID{BrandID: brandId},
		specification.Connected{},
	})
	return pointers(rows), err
}

func (r *socialAccountRepository) Upsert(ctx context.Context, account *entity.SocialAccount) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	for _, existing := range s.accounts.all() {
		if existing.UserId == account.UserId && existing.Platform == account.Platform && existing.AccountId == account.AccountId {
			account.Id = existing.Id
			s.accounts.replace(log, existing.Id, *account)
			return nil
		}
	}
	if account.Id == uuid.Nil {
		account.Id = uuid.New()
	}
	s.accounts.insert(s, log, account.Id, *account)
	return nil
}

type socialPostRepository struct {
	uow *UnitOfWork
}

func (r *socialPostRepository) Create(ctx context.Context, post *entity.SocialPost) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	if post.Id == uuid.Nil {
		post.Id = uuid.New()
	}
	stamp(&post.CreatedAt, &post.UpdatedAt)
	s.posts.insert(s, log, post.Id, *post)
	return nil
}

func (r *socialPostRepository) FindOne(ctx context.Context, id uuid.UUID) (*entity.SocialPost, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	if p, ok := s.posts.get(id); ok {
		return &p, nil
	}
	return nil, nil
}

func (r *socialPostRepository) FindByUser(ctx context.Context, userId uuid.UUID, filter entity.SocialPostFilter) ([]*entity.SocialPost, error) {
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
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})

	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	rows, err := query(s.posts.all(), postColumns, specs)
	return pointers(rows), err
}

func (r *socialPostRepository) UpdateStatus(ctx context.Context, post *entity.SocialPost) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	stored, ok := s.posts.get(post.Id)
	if !ok {
		return nil
	}
	stored.Status = post.Status
	stored.ScheduledFor = post.ScheduledFor
	stored.PublishedAt = post.PublishedAt
	stored.UpdatedAt = time.Now()
	s.posts.replace(log, stored.Id, stored)
	post.UpdatedAt = stored.UpdatedAt
	return nil
}

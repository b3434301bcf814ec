package memory

import (
	"context"
	"strings"
	"time"

	"flowa-be/internal/entity"
	"flowa-be/internal/repository/contract"
	"flowa-be/internal/repository/specification"

	"github.com/google/uuid"
)

type userRepository struct {
	uow *UnitOfWork
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	for _, existing := range s.users.all() {
		if strings.EqualFold(existing.Email, user.Email) {
			return contract.ErrDuplicate
		}
	}
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	stamp(&user.CreatedAt, &user.UpdatedAt)
	s.users.insert(s, log, user.Id, *user)
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	for _, existing := range s.users.all() {
		if existing.Id != user.Id && strings.EqualFold(existing.Email, user.Email) {
			return contract.ErrDuplicate
		}
	}
	user.UpdatedAt = time.Now()
	if !s.users.replace(log, user.Id, *user) {
		s.users.insert(s, log, user.Id, *user)
	}
	return nil
}

func (r *userRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	return first(s.users.all(), userColumns, specs)
}

func (r *userRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	rows, err := query(s.users.all(), userColumns, specs)
	return pointers(rows), err
}

func (r *userRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()
	rows, err := query(s.users.all(), userColumns, specs)
	return int64(len(rows)), err
}

func (r *userRepository) SaveUserProvider(ctx context.Context, provider *entity.UserProvider) error {
	s, log := r.uow.lock()
	defer s.mu.Unlock()

	for _, existing := range s.providers.all() {
		if existing.ProviderName == provider.ProviderName && existing.ProviderUserId == provider.ProviderUserId {
			existing.UserId = provider.UserId
			s.providers.replace(log, existing.Id, existing)
			return nil
		}
	}
	if provider.Id == uuid.Nil {
		provider.Id = uuid.New()
	}
	if provider.CreatedAt.IsZero() {
		provider.CreatedAt = time.Now()
	}
	s.providers.insert(s, log, provider.Id, *provider)
	return nil
}

func (r *userRepository) FindByProvider(ctx context.Context, providerName, providerUserId string) (*entity.User, error) {
	s, _ := r.uow.lock()
	defer s.mu.Unlock()

	for _, p := range s.providers.all() {
		if p.ProviderName == providerName && p.ProviderUserId == providerUserId {
			if u, ok := s.users.get(p.UserId); ok {
				return &u, nil
			}
		}
	}
	return nil, nil
}

func stamp(createdAt, updatedAt *time.Time) {
	now := time.Now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = *createdAt
	}
}

func pointers[T any](rows []T) []*T {
	out := make([]*T, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}

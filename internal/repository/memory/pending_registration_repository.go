package memory

import (
	"strings"
	"time"

	"flowa-be/internal/entity"
	"flowa-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type PendingRegistrationRepository struct {
	cache *cache.Cache
}

func NewPendingRegistrationRepository() contract.PendingRegistrationRepository {
	// Codes live 15 minutes by default; expired items are purged every 5.
	c := cache.New(15*time.Minute, 5*time.Minute)
	return &PendingRegistrationRepository{
		cache: c,
	}
}

func (r *PendingRegistrationRepository) Save(reg *entity.PendingRegistration, ttl time.Duration) {
	reg.ExpiresAt = time.Now().Add(ttl)
	r.cache.Set(key(reg.Email), reg, ttl)
}

func (r *PendingRegistrationRepository) Get(email string) (*entity.PendingRegistration, bool) {
	if x, found := r.cache.Get(key(email)); found {
		return x.(*entity.PendingRegistration), true
	}
	return nil, false
}

func (r *PendingRegistrationRepository) Consume(email string) (*entity.PendingRegistration, bool) {
	reg, ok := r.Get(email)
	if ok {
		r.cache.Delete(key(email))
	}
	return reg, ok
}

func key(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// StateStore remembers OAuth state values between redirect and callback.
type StateStore struct {
	cache *cache.Cache
}

func NewStateStore(ttl time.Duration) *StateStore {
	return &StateStore{cache: cache.New(ttl, ttl)}
}

func (s *StateStore) Put(state string) {
	s.cache.SetDefault(state, struct{}{})
}

// Take reports whether the state was issued and forgets it.
func (s *StateStore) Take(state string) bool {
	if _, found := s.cache.Get(state); !found {
		return false
	}
	s.cache.Delete(state)
	return true
}

package memory

import (
	"context"
	"fmt"

	"flowa-be/internal/repository/contract"
	"flowa-be/internal/repository/unitofwork"
)

type RepositoryFactory struct {
	store *Store
}

func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &RepositoryFactory{store: store}
}

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork gives all-or-nothing writes through an undo log. Reads are
// not isolated; the session version check is what serializes writers.
type UnitOfWork struct {
	store *Store
	log   *txLog
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.log != nil {
		return fmt.Errorf("transaction already started")
	}
	u.log = &txLog{}
	return nil
}

func (u *UnitOfWork) Commit() error {
	if u.log == nil {
		return fmt.Errorf("no transaction to commit")
	}
	u.log = nil
	return nil
}

func (u *UnitOfWork) Rollback() error {
	if u.log == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	u.store.mu.Lock()
	u.log.rollback()
	u.store.mu.Unlock()
	u.log = nil
	return nil
}

func (u *UnitOfWork) UserRepository() contract.UserRepository {
	return &userRepository{uow: u}
}

func (u *UnitOfWork) BrandRepository() contract.BrandRepository {
	return &brandRepository{uow: u}
}

func (u *UnitOfWork) ThemeRepository() contract.ThemeRepository {
	return &themeRepository{uow: u}
}

func (u *UnitOfWork) ProductRepository() contract.ProductRepository {
	return &productRepository{uow: u}
}

func (u *UnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return &chatSessionRepository{uow: u}
}

func (u *UnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return &chatMessageRepository{uow: u}
}

func (u *UnitOfWork) GeneratedContentRepository() contract.GeneratedContentRepository {
	return &generatedContentRepository{uow: u}
}

func (u *UnitOfWork) SocialAccountRepository() contract.SocialAccountRepository {
	return &socialAccountRepository{uow: u}
}

func (u *UnitOfWork) SocialPostRepository() contract.SocialPostRepository {
	return &socialPostRepository{uow: u}
}

func (u *UnitOfWork) SettingsRepository() contract.SettingsRepository {
	return &settingsRepository{uow: u}
}

// lock takes the store lock and returns the active undo log (nil outside a transaction).
func (u *UnitOfWork) lock() (*Store, *txLog) {
	u.store.mu.Lock()
	return u.store, u.log
}

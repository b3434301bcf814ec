package unitofwork

import (
	"context"

	"flowa-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	BrandRepository() contract.BrandRepository
	ThemeRepository() contract.ThemeRepository
	ProductRepository() contract.ProductRepository

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	GeneratedContentRepository() contract.GeneratedContentRepository

	SocialAccountRepository() contract.SocialAccountRepository
	SocialPostRepository() contract.SocialPostRepository
	SettingsRepository() contract.SettingsRepository
}

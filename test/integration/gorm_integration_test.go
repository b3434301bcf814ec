package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"flowa-be/internal/entity"
	"flowa-be/internal/model"
	"flowa-be/internal/repository/contract"
	"flowa-be/internal/repository/specification"
	"flowa-be/internal/repository/unitofwork"
	"flowa-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormRepositories(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn, database.DefaultPoolConfig())
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(model.All()...))

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)

	owner := &entity.User{
		Id:      uuid.New(),
		Name:    "Integration Owner",
		Email:   "integration-" + uuid.New().String() + "@example.com",
		Role:    entity.UserRoleBrandManager,
		ApiKeys: []entity.ApiKey{},
	}
	brand := &entity.Brand{
		Id:       uuid.New(),
		OwnerId:  owner.Id,
		Name:     "Integration Brand",
		Tone:     entity.DefaultTone,
		Keywords: []string{"coffee"},
		Hashtags: []string{"#coffee"},
		IsActive: true,
	}
	theme := &entity.Theme{
		Id:            uuid.New(),
		BrandId:       brand.Id,
		Name:          "Morning",
		Category:      entity.ThemeCategoryKnowledge,
		ContentLength: entity.DefaultContentLength,
		IsActive:      true,
	}

	t.Run("Catalog round trip", func(t *testing.T) {
		uow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		require.NoError(t, uow.UserRepository().Create(ctx, owner))
		require.NoError(t, uow.BrandRepository().Create(ctx, brand))
		require.NoError(t, uow.ThemeRepository().Create(ctx, theme))
		require.NoError(t, uow.Commit())

		found, err := uowFactory.NewUnitOfWork(ctx).BrandRepository().FindOne(ctx,
			specification.ByID{ID: brand.Id},
			specification.OwnedBy{OwnerID: owner.Id},
		)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, []string{"#coffee"}, found.Hashtags)
	})

	t.Run("Duplicate e-mail is rejected", func(t *testing.T) {
		dup := *owner
		dup.Id = uuid.New()
		err := uowFactory.NewUnitOfWork(ctx).UserRepository().Create(ctx, &dup)
		assert.ErrorIs(t, err, contract.ErrDuplicate)
	})

	t.Run("Stale session version is rejected", func(t *testing.T) {
		now := time.Now()
		session := &entity.ChatSession{
			Id:        uuid.New(),
			UserId:    owner.Id,
			BrandId:   brand.Id,
			Title:     entity.DefaultChatTitle,
			AiModel:   entity.DefaultAiModel,
			Version:   1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		uow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, uow.ChatSessionRepository().Create(ctx, session))

		batch := &entity.SessionAppend{}
		session.AppendMessage(batch, entity.MessageRoleUser, "hello", now)
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.ChatSessionRepository().SaveVersioned(ctx, session, 1))
		require.NoError(t, uow.ChatMessageRepository().CreateBulk(ctx, batch.Messages))
		require.NoError(t, uow.Commit())
		assert.Equal(t, 2, session.Version)

		err := uowFactory.NewUnitOfWork(ctx).ChatSessionRepository().SaveVersioned(ctx, session, 1)
		assert.ErrorIs(t, err, contract.ErrStaleVersion)
	})
}

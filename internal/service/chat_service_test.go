package service

import (
	"context"
	"testing"
	"time"

	"flowa-be/internal/dto"
	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/repository/specification"
	"flowa-be/pkg/access"
	"flowa-be/pkg/chatcmd"
	"flowa-be/pkg/events"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatCreateSeedsSystemMessage(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	brand := f.brand(t, owner)

	chat, err := f.chatService().Create(context.Background(), owner, &dto.CreateChatRequest{BrandId: brand.Id.String()})
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultChatTitle, chat.Title)
	assert.Equal(t, "openai", chat.AiModel)
	assert.Equal(t, 1, chat.Version)
	assert.Equal(t, brand.Name, chat.Brand.Name)
	require.Len(t, chat.Messages, 1)
	assert.Equal(t, "system", chat.Messages[0].Role)
	assert.Contains(t, chat.Messages[0].Content, "Flowa Coffee")
	assert.Empty(t, chat.GeneratedContent)
	assert.Equal(t, []string{events.ChatCreated}, f.publisher.types())
}

func TestChatCreateRequiresBrandAccess(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	stranger := f.user(t, entity.UserRoleContentCreator)
	brand := f.brand(t, owner)
	svc := f.chatService()
	ctx := context.Background()

	_, err := svc.Create(ctx, stranger, &dto.CreateChatRequest{BrandId: uuid.NewString()})
	assert.True(t, apperror.HasCode(err, apperror.ErrNotFound))

	_, err = svc.Create(ctx, stranger, &dto.CreateChatRequest{BrandId: brand.Id.String()})
	assert.True(t, apperror.HasCode(err, apperror.ErrForbidden))

	_, err = svc.Create(ctx, owner, &dto.CreateChatRequest{BrandId: brand.Id.String(), AiModel: "mistral"})
	assert.True(t, apperror.HasCode(err, apperror.ErrValidation))
}

func TestChatSendMessageAppendsExchange(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	brand := f.brand(t, owner)
	svc := f.chatService()
	ctx := context.Background()

	chat, err := svc.Create(ctx, owner, &dto.CreateChatRequest{BrandId: brand.Id.String(), Title: "Launch"})
	require.NoError(t, err)

	res, err := svc.SendMessage(ctx, owner, chat.Id, &dto.SendMessageRequest{Message: "hello there"})
	require.NoError(t, err)
	assert.Equal(t, "assistant", res.Message.Role)
	assert.Contains(t, res.Message.Content, "Flowa Coffee")

	loaded, err := svc.Get(ctx, owner, chat.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Version)
	require.Len(t, loaded.Messages, 3)
	assert.Equal(t, []string{"system", "user", "assistant"},
		[]string{loaded.Messages[0].Role, loaded.Messages[1].Role, loaded.Messages[2].Role})
	assert.Equal(t, "hello there", loaded.Messages[1].Content)
}

func TestChatGenerateAppendsBatch(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	brand := f.brand(t, owner)
	theme := f.theme(t, brand)
	svc := f.chatService()
	ctx := context.Background()

	chat, err := svc.Create(ctx, owner, &dto.CreateChatRequest{BrandId: brand.Id.String()})
	require.NoError(t, err)

	res, err := svc.Generate(ctx, owner, chat.Id, &dto.GenerateInChatRequest{ThemeId: theme.Id.String(), Count: 3, Platform: "facebook"})
	require.NoError(t, err)
	require.Len(t, res.GeneratedContent, 3)
	for _, c := range res.GeneratedContent {
		assert.Equal(t, theme.Id, c.ThemeId)
		assert.Equal(t, "Morning", c.ThemeName)
		assert.Equal(t, "facebook", c.Platform)
		assert.NotEmpty(t, c.Content)
	}

	loaded, err := svc.Get(ctx, owner, chat.Id)
	require.NoError(t, err)
	assert.Len(t, loaded.GeneratedContent, 3)
	require.Len(t, loaded.Messages, 2)
	assert.Equal(t, "I've generated 3 content pieces based on the \"Morning\" theme.", loaded.Messages[1].Content)
	assert.Equal(t, 3.0, testutil.ToFloat64(f.metrics.GeneratedContent.WithLabelValues("facebook")))

	// Default count is one piece.
	res, err = svc.Generate(ctx, owner, chat.Id, &dto.GenerateInChatRequest{ThemeId: theme.Id.String()})
	require.NoError(t, err)
	assert.Len(t, res.GeneratedContent, 1)
}

func TestChatGenerateValidatesInput(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	brand := f.brand(t, owner)
	theme := f.theme(t, brand)
	otherTheme := f.theme(t, f.brand(t, owner))
	svc := f.chatService()
	ctx := context.Background()

	chat, err := svc.Create(ctx, owner, &dto.CreateChatRequest{BrandId: brand.Id.String()})
	require.NoError(t, err)

	_, err = svc.Generate(ctx, owner, chat.Id, &dto.GenerateInChatRequest{ThemeId: theme.Id.String(), Count: -1})
	assert.True(t, apperror.HasCode(err, apperror.ErrValidation))

	_, err = svc.Generate(ctx, owner, chat.Id, &dto.GenerateInChatRequest{ThemeId: theme.Id.String(), Count: 11})
	assert.True(t, apperror.HasCode(err, apperror.ErrValidation))

	_, err = svc.Generate(ctx, owner, chat.Id, &dto.GenerateInChatRequest{ThemeId: otherTheme.Id.String()})
	assert.True(t, apperror.HasCode(err, apperror.ErrNotFound))

	loaded, err := svc.Get(ctx, owner, chat.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Version)
	assert.Empty(t, loaded.GeneratedContent)
}

func TestChatNotFoundBeforeForbidden(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	stranger := f.user(t, entity.UserRoleContentCreator)
	admin := f.user(t, entity.UserRoleAdmin)
	brand := f.brand(t, owner)
	svc := f.chatService()
	ctx := context.Background()

	chat, err := svc.Create(ctx, owner, &dto.CreateChatRequest{BrandId: brand.Id.String()})
	require.NoError(t, err)

	_, err = svc.Get(ctx, stranger, uuid.New())
	assert.True(t, apperror.HasCode(err, apperror.ErrNotFound))

	_, err = svc.Get(ctx, stranger, chat.Id)
	assert.True(t, apperror.HasCode(err, apperror.ErrForbidden))

	_, err = svc.SendMessage(ctx, stranger, chat.Id, &dto.SendMessageRequest{Message: "hi"})
	assert.True(t, apperror.HasCode(err, apperror.ErrForbidden))

	_, err = svc.Get(ctx, admin, chat.Id)
	assert.NoError(t, err)
}

func TestChatBrandOwnerReachesSessionsOnTheirBrand(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	admin := f.user(t, entity.UserRoleAdmin)
	brand := f.brand(t, owner)
	svc := f.chatService()
	ctx := context.Background()

	chat, err := svc.Create(ctx, admin, &dto.CreateChatRequest{BrandId: brand.Id.String()})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, chat.User)

	_, err = svc.Get(ctx, owner, chat.Id)
	assert.NoError(t, err)
}

func TestChatListReturnsOwnSessions(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	other := f.user(t, entity.UserRoleBrandManager)
	svc := f.chatService()
	ctx := context.Background()

	_, err := svc.Create(ctx, owner, &dto.CreateChatRequest{BrandId: f.brand(t, owner).Id.String(), Title: "First"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, other, &dto.CreateChatRequest{BrandId: f.brand(t, other).Id.String(), Title: "Other"})
	require.NoError(t, err)

	items, err := svc.List(ctx, owner, &dto.ChatListQuery{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "First", items[0].Title)
	assert.Equal(t, "Flowa Coffee", items[0].Brand.Name)
}

func TestChatListPages(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	brand := f.brand(t, owner)
	svc := f.chatService()
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := svc.Create(ctx, owner, &dto.CreateChatRequest{BrandId: brand.Id.String(), Title: title})
		require.NoError(t, err)
	}

	first, err := svc.List(ctx, owner, &dto.ChatListQuery{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := svc.List(ctx, owner, &dto.ChatListQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.NotContains(t, []string{first[0].Title, first[1].Title}, second[0].Title)
}

func TestChatStaleWriteIsRejected(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	brand := f.brand(t, owner)
	svc := f.chatService()
	ctx := context.Background()

	chat, err := svc.Create(ctx, owner, &dto.CreateChatRequest{BrandId: brand.Id.String()})
	require.NoError(t, err)

	uow := f.uowFactory.NewUnitOfWork(ctx)
	stale, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: chat.Id})
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, owner, chat.Id, &dto.SendMessageRequest{Message: "first writer"})
	require.NoError(t, err)

	batch := &entity.SessionAppend{}
	stale.AppendMessage(batch, entity.MessageRoleUser, "second writer", time.Now())
	err = storageError(commitAppend(ctx, uow, stale, batch))
	assert.True(t, apperror.HasCode(err, apperror.ErrConflict))

	loaded, err := svc.Get(ctx, owner, chat.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Version)
	assert.Len(t, loaded.Messages, 3)
}

func TestChatParseCommand(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	brand := f.brand(t, owner)
	svc := f.chatService()
	ctx := context.Background()

	chat, err := svc.Create(ctx, owner, &dto.CreateChatRequest{BrandId: brand.Id.String()})
	require.NoError(t, err)

	parsed, err := svc.ParseCommand(ctx, owner, chat.Id, &dto.ParseCommandRequest{Command: "Create 3 posts for summer sale"})
	require.NoError(t, err)
	assert.Equal(t, chatcmd.TypeCreate, parsed.Type)
	assert.Equal(t, 3, parsed.Count)
	assert.Equal(t, brand.Id, parsed.BrandId)

	_, err = svc.ParseCommand(ctx, access.Actor{ID: uuid.New(), Role: "content_creator"}, chat.Id, &dto.ParseCommandRequest{Command: "x"})
	assert.True(t, apperror.HasCode(err, apperror.ErrForbidden))
}

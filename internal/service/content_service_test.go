package service

import (
	"context"
	"testing"

	"flowa-be/internal/dto"
	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentGenerateOpensDedicatedSession(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	brand := f.brand(t, owner)
	theme := f.theme(t, brand)
	ctx := context.Background()

	res, err := f.contentService().Generate(ctx, owner, &dto.GenerateContentRequest{
		BrandId:        brand.Id.String(),
		ThemeId:        theme.Id.String(),
		SocialPlatform: "Instagram",
		Count:          2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "instagram", res.Platform)
	require.Len(t, res.Contents, 2)

	chat, err := f.chatService().Get(ctx, owner, res.ChatId)
	require.NoError(t, err)
	assert.Equal(t, "Generated content for Morning", chat.Title)
	assert.Len(t, chat.GeneratedContent, 2)
	require.Len(t, chat.Messages, 2)
	assert.Equal(t, "system", chat.Messages[0].Role)
	assert.Equal(t, "assistant", chat.Messages[1].Role)
	assert.Contains(t, f.publisher.types(), events.ContentGenerated)
}

func TestContentGenerateRequiresOwnedTheme(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	stranger := f.user(t, entity.UserRoleContentCreator)
	brand := f.brand(t, owner)
	theme := f.theme(t, brand)
	svc := f.contentService()
	ctx := context.Background()

	_, err := svc.Generate(ctx, stranger, &dto.GenerateContentRequest{
		BrandId: brand.Id.String(), ThemeId: theme.Id.String(), SocialPlatform: "facebook",
	})
	assert.True(t, apperror.HasCode(err, apperror.ErrForbidden))

	_, err = svc.Generate(ctx, owner, &dto.GenerateContentRequest{
		BrandId: brand.Id.String(), ThemeId: uuid.NewString(), SocialPlatform: "facebook",
	})
	assert.True(t, apperror.HasCode(err, apperror.ErrNotFound))
}

func TestContentOptimizeAppendsCopy(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	brand := f.brand(t, owner)
	theme := f.theme(t, brand)
	svc := f.contentService()
	ctx := context.Background()

	generated, err := svc.Generate(ctx, owner, &dto.GenerateContentRequest{
		BrandId: brand.Id.String(), ThemeId: theme.Id.String(), SocialPlatform: "facebook",
	})
	require.NoError(t, err)
	original := generated.Contents[0]

	res, err := svc.Optimize(ctx, owner, &dto.OptimizeContentRequest{ContentId: original.Id.String(), Platform: "twitter"})
	require.NoError(t, err)
	assert.Equal(t, generated.ChatId, res.ChatId)
	assert.Equal(t, "twitter", res.Content.Platform)
	assert.NotEqual(t, original.Id, res.Content.Id)

	chat, err := f.chatService().Get(ctx, owner, generated.ChatId)
	require.NoError(t, err)
	require.Len(t, chat.GeneratedContent, 2)
	assert.Equal(t, original.Content, chat.GeneratedContent[0].Content)
	assert.Equal(t, res.Content.Id, chat.GeneratedContent[1].Id)
	assert.Equal(t, 2, chat.Version)
}

func TestContentOptimizeGate(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	stranger := f.user(t, entity.UserRoleContentCreator)
	brand := f.brand(t, owner)
	theme := f.theme(t, brand)
	svc := f.contentService()
	ctx := context.Background()

	generated, err := svc.Generate(ctx, owner, &dto.GenerateContentRequest{
		BrandId: brand.Id.String(), ThemeId: theme.Id.String(), SocialPlatform: "facebook",
	})
	require.NoError(t, err)

	_, err = svc.Optimize(ctx, stranger, &dto.OptimizeContentRequest{ContentId: uuid.NewString(), Platform: "x"})
	assert.True(t, apperror.HasCode(err, apperror.ErrNotFound))

	_, err = svc.Optimize(ctx, stranger, &dto.OptimizeContentRequest{ContentId: generated.Contents[0].Id.String(), Platform: "x"})
	assert.True(t, apperror.HasCode(err, apperror.ErrForbidden))
}

func TestContentKeywordsAndImage(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	brand := f.brand(t, owner)
	svc := f.contentService()
	ctx := context.Background()

	analysis, err := svc.Keywords(ctx, owner, &dto.KeywordQuery{BrandId: brand.Id.String()})
	require.NoError(t, err)
	assert.NotEmpty(t, analysis.Keywords)
	assert.NotEmpty(t, analysis.Recommendations)

	image, err := svc.GenerateImage(ctx, owner, &dto.GenerateImageRequest{Prompt: "latte art", BrandId: brand.Id.String()})
	require.NoError(t, err)
	assert.Equal(t, "latte art", image.Prompt)
	assert.NotEmpty(t, image.ImageUrl)

	_, err = svc.Keywords(ctx, owner, &dto.KeywordQuery{BrandId: brand.Id.String(), ThemeId: uuid.NewString()})
	assert.True(t, apperror.HasCode(err, apperror.ErrNotFound))
}

package service

import (
	"context"
	"testing"
	"time"

	"flowa-be/internal/dto"
	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocialConnectAndPost(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	brand := f.brand(t, owner)
	theme := f.theme(t, brand)
	social := NewSocialService(f.uowFactory, f.activity, f.log)
	ctx := context.Background()

	account, err := social.Connect(ctx, owner, &dto.ConnectSocialRequest{Platform: "Facebook", BrandId: brand.Id.String()})
	require.NoError(t, err)
	assert.Equal(t, "facebook", account.Platform)
	assert.Equal(t, "facebook Account", account.AccountName)
	assert.True(t, account.IsConnected)

	generated, err := f.contentService().Generate(ctx, owner, &dto.GenerateContentRequest{
		BrandId: brand.Id.String(), ThemeId: theme.Id.String(), SocialPlatform: "facebook",
	})
	require.NoError(t, err)
	contentId := generated.Contents[0].Id.String()

	// Platforms without a connected account are skipped.
	posts, err := social.CreatePost(ctx, owner, &dto.CreateSocialPostRequest{
		ContentId: contentId,
		Platforms: []string{"facebook", "instagram", "facebook"},
		BrandId:   brand.Id.String(),
	})
	require.NoError(t, err)
	require.Len(t, posts.Posts, 1)
	assert.Equal(t, "published", posts.Posts[0].Status)
	assert.NotNil(t, posts.Posts[0].PublishedAt)
	assert.Equal(t, generated.Contents[0].Content, posts.Posts[0].Content)
	assert.Contains(t, f.publisher.types(), events.SocialPostCreated)

	later := time.Now().Add(24 * time.Hour)
	scheduled, err := social.CreatePost(ctx, owner, &dto.CreateSocialPostRequest{
		ContentId:     contentId,
		Platforms:     []string{"facebook"},
		ScheduledTime: &later,
		BrandId:       brand.Id.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "scheduled", scheduled.Posts[0].Status)
	assert.Nil(t, scheduled.Posts[0].PublishedAt)

	list, err := social.ListPosts(ctx, owner, &dto.SocialPostQuery{Status: "scheduled"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, scheduled.Posts[0].Id, list[0].Id)

	_, err = social.CreatePost(ctx, owner, &dto.CreateSocialPostRequest{
		ContentId: contentId, Platforms: []string{"tiktok"}, BrandId: brand.Id.String(),
	})
	assert.True(t, apperror.HasCode(err, apperror.ErrValidation))
}

func TestSocialConnectRejectsUnknownPlatform(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	social := NewSocialService(f.uowFactory, f.activity, f.log)

	_, err := social.Connect(context.Background(), owner, &dto.ConnectSocialRequest{Platform: "myspace"})
	assert.True(t, apperror.HasCode(err, apperror.ErrValidation))

	accounts, err := social.Accounts(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestSocialScheduleAndStatus(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	stranger := f.user(t, entity.UserRoleContentCreator)
	brand := f.brand(t, owner)
	theme := f.theme(t, brand)
	social := NewSocialService(f.uowFactory, f.activity, f.log)
	ctx := context.Background()

	_, err := social.Connect(ctx, owner, &dto.ConnectSocialRequest{Platform: "linkedin", BrandId: brand.Id.String()})
	require.NoError(t, err)
	generated, err := f.contentService().Generate(ctx, owner, &dto.GenerateContentRequest{
		BrandId: brand.Id.String(), ThemeId: theme.Id.String(), SocialPlatform: "linkedin",
	})
	require.NoError(t, err)
	posts, err := social.CreatePost(ctx, owner, &dto.CreateSocialPostRequest{
		ContentId: generated.Contents[0].Id.String(), Platforms: []string{"linkedin"}, BrandId: brand.Id.String(),
	})
	require.NoError(t, err)
	postId := posts.Posts[0].Id

	when := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	res, err := social.Schedule(ctx, owner, &dto.SchedulePostsRequest{Posts: []dto.ScheduleItem{{Id: postId.String(), ScheduledTime: when}}})
	require.NoError(t, err)
	assert.Equal(t, "scheduled", res.Posts[0].Status)
	assert.True(t, when.Equal(*res.Posts[0].ScheduledFor))
	assert.Nil(t, res.Posts[0].PublishedAt)

	_, err = social.Schedule(ctx, stranger, &dto.SchedulePostsRequest{Posts: []dto.ScheduleItem{{Id: postId.String(), ScheduledTime: when}}})
	assert.True(t, apperror.HasCode(err, apperror.ErrForbidden))

	updated, err := social.UpdateStatus(ctx, owner, postId, &dto.UpdatePostStatusRequest{Status: "published"})
	require.NoError(t, err)
	assert.Equal(t, "published", updated.Status)
	assert.NotNil(t, updated.PublishedAt)

	_, err = social.UpdateStatus(ctx, owner, uuid.New(), &dto.UpdatePostStatusRequest{Status: "failed"})
	assert.True(t, apperror.HasCode(err, apperror.ErrNotFound))

	_, err = social.UpdateStatus(ctx, owner, postId, &dto.UpdatePostStatusRequest{Status: "archived"})
	assert.True(t, apperror.HasCode(err, apperror.ErrValidation))
}

func TestSocialPostRejectsContentFromAnotherBrand(t *testing.T) {
	f := newFixture(t)
	victim := f.user(t, entity.UserRoleBrandManager)
	victimBrand := f.brand(t, victim)
	victimTheme := f.theme(t, victimBrand)
	attacker := f.user(t, entity.UserRoleBrandManager)
	attackerBrand := f.brand(t, attacker)
	social := NewSocialService(f.uowFactory, f.activity, f.log)
	ctx := context.Background()

	generated, err := f.contentService().Generate(ctx, victim, &dto.GenerateContentRequest{
		BrandId: victimBrand.Id.String(), ThemeId: victimTheme.Id.String(), SocialPlatform: "facebook",
	})
	require.NoError(t, err)

	_, err = social.Connect(ctx, attacker, &dto.ConnectSocialRequest{Platform: "facebook", BrandId: attackerBrand.Id.String()})
	require.NoError(t, err)

	res, err := social.CreatePost(ctx, attacker, &dto.CreateSocialPostRequest{
		ContentId: generated.Contents[0].Id.String(),
		Platforms: []string{"facebook"},
		BrandId:   attackerBrand.Id.String(),
	})
	assert.Nil(t, res)
	assert.True(t, apperror.HasCode(err, apperror.ErrNotFound))

	posts, err := social.ListPosts(ctx, attacker, &dto.SocialPostQuery{})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

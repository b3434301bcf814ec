package service

import (
	"context"
	"testing"

	"flowa-be/internal/dto"
	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/apperror"
	"flowa-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfileListsActiveBrands(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	brand := f.brand(t, owner)
	users := NewUserService(f.uowFactory, testTokens)
	ctx := context.Background()

	profile, err := users.GetProfile(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{brand.Id}, profile.Brands)
	assert.Empty(t, profile.ApiKeys)

	_, err = users.GetProfile(ctx, uuid.New())
	assert.True(t, apperror.HasCode(err, apperror.ErrNotFound))
}

func TestUserUpdateProfileReissuesToken(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	other := f.user(t, entity.UserRoleContentCreator)
	users := NewUserService(f.uowFactory, testTokens)
	ctx := context.Background()

	otherProfile, err := users.GetProfile(ctx, other.ID)
	require.NoError(t, err)
	_, err = users.UpdateProfile(ctx, owner.ID, &dto.UpdateProfileRequest{Email: otherProfile.Email})
	assert.True(t, apperror.HasCode(err, apperror.ErrValidation))

	res, err := users.UpdateProfile(ctx, owner.ID, &dto.UpdateProfileRequest{Name: "Renamed", Email: "Renamed@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", res.Name)
	assert.Equal(t, "renamed@example.com", res.Email)

	claims, err := serverutils.ParseToken(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, owner.ID.String(), claims.UserID)
}

func TestUserApiKeysAreMasked(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleContentCreator)
	users := NewUserService(f.uowFactory, testTokens)
	ctx := context.Background()
	inactive := false

	res, err := users.UpdateApiKeys(ctx, owner.ID, &dto.UpdateApiKeysRequest{ApiKeys: []dto.ApiKeyInput{
		{Service: "openai", Key: "sk-1234567890abcd"},
		{Service: "google", Key: "short", Active: &inactive},
	}})
	require.NoError(t, err)
	require.Len(t, res.ApiKeys, 2)
	assert.Equal(t, "sk-1*********abcd", res.ApiKeys[0].Key)
	assert.True(t, res.ApiKeys[0].Active)
	assert.Equal(t, "*****", res.ApiKeys[1].Key)
	assert.False(t, res.ApiKeys[1].Active)

	_, err = users.UpdateApiKeys(ctx, owner.ID, &dto.UpdateApiKeysRequest{ApiKeys: []dto.ApiKeyInput{{Service: "cohere", Key: "k"}}})
	assert.True(t, apperror.HasCode(err, apperror.ErrValidation))
}

func TestIntegrationManageApiKey(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleContentCreator)
	integrations := NewIntegrationService(f.uowFactory)
	ctx := context.Background()

	_, err := integrations.ManageApiKey(ctx, owner.ID, &dto.ManageApiKeyRequest{Service: "openai", Key: "k", Action: "update"})
	assert.True(t, apperror.HasCode(err, apperror.ErrValidation))

	res, err := integrations.ManageApiKey(ctx, owner.ID, &dto.ManageApiKeyRequest{Service: "openai", Key: "sk-abcdefghijkl", Action: "add"})
	require.NoError(t, err)
	require.Len(t, res.ApiKeys, 1)
	assert.True(t, res.ApiKeys[0].Active)

	res, err = integrations.ManageApiKey(ctx, owner.ID, &dto.ManageApiKeyRequest{Service: "openai", Action: "toggle"})
	require.NoError(t, err)
	assert.False(t, res.ApiKeys[0].Active)

	res, err = integrations.ManageApiKey(ctx, owner.ID, &dto.ManageApiKeyRequest{Service: "openai", Action: "delete"})
	require.NoError(t, err)
	assert.Empty(t, res.ApiKeys)

	_, err = integrations.ManageApiKey(ctx, owner.ID, &dto.ManageApiKeyRequest{Service: "openai", Action: "rotate"})
	require.Error(t, err)
	assert.Equal(t, "Invalid action", err.Error())

	_, err = integrations.ManageApiKey(ctx, owner.ID, &dto.ManageApiKeyRequest{Service: "cohere", Action: "add"})
	require.Error(t, err)
	assert.Equal(t, "Invalid service: cohere", err.Error())
}

func TestIntegrationApiUsageFiltersByService(t *testing.T) {
	integrations := NewIntegrationService(newFixture(t).uowFactory)
	ctx := context.Background()

	all, err := integrations.ApiUsage(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all.ByService, 3)
	assert.Equal(t, 1250, all.Overview.TotalRequests)

	one, err := integrations.ApiUsage(ctx, "anthropic")
	require.NoError(t, err)
	require.Len(t, one.ByService, 1)
	assert.Equal(t, "anthropic", one.ByService[0].Service)
}

func TestSettingsDefaultsAndUpdates(t *testing.T) {
	f := newFixture(t)
	user := f.user(t, entity.UserRoleContentCreator)
	settings := NewSettingsService(f.uowFactory, f.log)
	ctx := context.Background()

	general, err := settings.GetGeneral(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "en", general.Language)
	assert.Equal(t, "light", general.Theme)

	dark := "dark"
	general, err = settings.UpdateGeneral(ctx, user.ID, &dto.UpdateGeneralSettingsRequest{Theme: &dark})
	require.NoError(t, err)
	assert.Equal(t, "dark", general.Theme)
	assert.Equal(t, "en", general.Language)

	model := "anthropic"
	ai, err := settings.UpdateAi(ctx, user.ID, &dto.UpdateAiSettingsRequest{DefaultModel: &model})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", ai.DefaultModel)
	assert.Len(t, ai.PromptTemplates, 2)

	reloaded, err := settings.GetGeneral(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "dark", reloaded.Theme)
}

func TestSettingsAdvancedIsAdminOnly(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, entity.UserRoleAdmin)
	creator := f.user(t, entity.UserRoleContentCreator)
	settings := NewSettingsService(f.uowFactory, f.log)
	ctx := context.Background()

	_, err := settings.GetAdvanced(ctx, creator)
	assert.True(t, apperror.HasCode(err, apperror.ErrForbidden))
	_, err = settings.Backup(ctx, creator)
	assert.True(t, apperror.HasCode(err, apperror.ErrForbidden))

	weekly := "weekly"
	advanced, err := settings.UpdateAdvanced(ctx, admin, &dto.UpdateAdvancedSettingsRequest{BackupFrequency: &weekly})
	require.NoError(t, err)
	assert.Equal(t, "weekly", advanced.BackupFrequency)
	assert.NotNil(t, advanced.WebhookCallbacks)

	backup, err := settings.Backup(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, "Backup started", backup.Message)
	assert.NotEmpty(t, backup.BackupId)

	_, err = settings.Restore(ctx, admin, &dto.RestoreRequest{})
	assert.True(t, apperror.HasCode(err, apperror.ErrValidation))

	restore, err := settings.Restore(ctx, admin, &dto.RestoreRequest{BackupId: backup.BackupId})
	require.NoError(t, err)
	assert.Equal(t, "Restore started", restore.Message)
}

func TestAnalyticsGatesBrandAndTheme(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	stranger := f.user(t, entity.UserRoleContentCreator)
	brand := f.brand(t, owner)
	theme := f.theme(t, brand)
	analytics := NewAnalyticsService(f.uowFactory)
	ctx := context.Background()

	stats, err := analytics.ContentStats(ctx, owner, &dto.AnalyticsQuery{BrandId: brand.Id.String()})
	require.NoError(t, err)
	assert.Equal(t, 156, stats.TotalContents)

	_, err = analytics.ContentStats(ctx, stranger, &dto.AnalyticsQuery{BrandId: brand.Id.String()})
	assert.True(t, apperror.HasCode(err, apperror.ErrForbidden))

	perf, err := analytics.SocialPerformance(ctx, owner, &dto.AnalyticsQuery{Platform: "instagram"})
	require.NoError(t, err)
	require.Len(t, perf.Platforms, 1)
	assert.Equal(t, "instagram", perf.Platforms[0].Platform)

	_, err = analytics.ContentAnalysis(ctx, owner, &dto.AnalyticsQuery{ThemeId: theme.Id.String()})
	require.NoError(t, err)
	_, err = analytics.ContentAnalysis(ctx, owner, &dto.AnalyticsQuery{ThemeId: uuid.NewString()})
	assert.True(t, apperror.HasCode(err, apperror.ErrNotFound))

	suggestions, err := analytics.ImprovementSuggestions(ctx, owner, &dto.AnalyticsQuery{})
	require.NoError(t, err)
	assert.NotEmpty(t, suggestions)
}

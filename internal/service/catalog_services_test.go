package service

import (
	"context"
	"testing"

	"flowa-be/internal/dto"
	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandLifecycle(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	stranger := f.user(t, entity.UserRoleBrandManager)
	brands := NewBrandService(f.uowFactory, f.log)
	ctx := context.Background()

	created, err := brands.Create(ctx, owner, &dto.CreateBrandRequest{
		Name:        "Flowa Tea",
		Description: "Loose leaf",
		Hashtags:    []string{"#tea"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultTone, created.Tone)
	assert.Equal(t, owner.ID, created.Owner)
	assert.NotNil(t, created.Keywords)

	_, err = brands.Get(ctx, stranger, created.Id)
	assert.True(t, apperror.HasCode(err, apperror.ErrForbidden))

	tone := "playful"
	updated, err := brands.Update(ctx, owner, created.Id, &dto.UpdateBrandRequest{Tone: &tone})
	require.NoError(t, err)
	assert.Equal(t, "playful", updated.Tone)
	assert.Equal(t, "Flowa Tea", updated.Name)

	list, err := brands.List(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, brands.Delete(ctx, owner, created.Id))

	_, err = brands.Get(ctx, owner, created.Id)
	assert.True(t, apperror.HasCode(err, apperror.ErrNotFound))

	list, err = brands.List(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeletedBrandKeepsChatHistory(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	brand := f.brand(t, owner)
	chats := f.chatService()
	ctx := context.Background()

	chat, err := chats.Create(ctx, owner, &dto.CreateChatRequest{BrandId: brand.Id.String()})
	require.NoError(t, err)
	require.NoError(t, NewBrandService(f.uowFactory, f.log).Delete(ctx, owner, brand.Id))

	loaded, err := chats.Get(ctx, owner, chat.Id)
	require.NoError(t, err)
	assert.Len(t, loaded.Messages, 1)

	_, err = chats.Create(ctx, owner, &dto.CreateChatRequest{BrandId: brand.Id.String()})
	assert.True(t, apperror.HasCode(err, apperror.ErrNotFound))
}

func TestThemeDefaultsAndScope(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	stranger := f.user(t, entity.UserRoleContentCreator)
	brand := f.brand(t, owner)
	themes := NewThemeService(f.uowFactory)
	ctx := context.Background()

	created, err := themes.Create(ctx, owner, &dto.CreateThemeRequest{BrandId: brand.Id.String(), Name: "Recipes"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.ThemeCategoryOther), created.Category)
	assert.Equal(t, entity.DefaultContentLength, created.ContentLength)
	assert.Equal(t, entity.DefaultTone, created.Tone)

	_, err = themes.Create(ctx, stranger, &dto.CreateThemeRequest{BrandId: brand.Id.String(), Name: "Hijack"})
	assert.True(t, apperror.HasCode(err, apperror.ErrForbidden))

	list, err := themes.ListByBrand(ctx, owner, brand.Id)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, themes.Delete(ctx, owner, created.Id))
	list, err = themes.ListByBrand(ctx, owner, brand.Id)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProductCrud(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, entity.UserRoleBrandManager)
	brand := f.brand(t, owner)
	products := NewProductService(f.uowFactory)
	ctx := context.Background()

	created, err := products.Create(ctx, owner, &dto.CreateProductRequest{
		BrandId:     brand.Id.String(),
		Name:        "Espresso Beans",
		Description: "Dark roast",
		Features:    []string{"Fair trade"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fair trade"}, created.Features)
	assert.NotNil(t, created.Benefits)

	audience := "Baristas"
	updated, err := products.Update(ctx, owner, created.Id, &dto.UpdateProductRequest{TargetAudience: &audience})
	require.NoError(t, err)
	assert.Equal(t, "Baristas", updated.TargetAudience)

	got, err := products.Get(ctx, owner, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Espresso Beans", got.Name)
}

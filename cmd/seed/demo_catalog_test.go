package main

import (
	"context"
	"testing"

	"flowa-be/internal/repository/memory"
	"flowa-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemoCatalogIsIdempotent(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewRepositoryFactory(memory.NewStore())

	require.NoError(t, SeedDemoCatalog(ctx, factory, "secret123"))
	require.NoError(t, SeedDemoCatalog(ctx, factory, "secret123"))

	uow := factory.NewUnitOfWork(ctx)
	admin, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: demoAdminEmail})
	require.NoError(t, err)
	require.NotNil(t, admin)

	brands, err := uow.BrandRepository().FindAll(ctx, specification.OwnedBy{OwnerID: admin.Id})
	require.NoError(t, err)
	require.Len(t, brands, 1)

	themes, err := uow.ThemeRepository().Count(ctx, specification.ByBrandID{BrandID: brands[0].Id})
	require.NoError(t, err)
	assert.Equal(t, int64(len(demoThemes)), themes)

	products, err := uow.ProductRepository().Count(ctx, specification.ByBrandID{BrandID: brands[0].Id})
	require.NoError(t, err)
	assert.Equal(t, int64(len(demoProducts)), products)
}

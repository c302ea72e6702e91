//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-service/tests/testutil"
)

func TestCatalogReadModel_ListProducts(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := repo.NewCatalogReadModel(client)

	testutil.CreateTestProduct(t, client, testutil.ProductFixture{
		Title: "Dune", Category: "Books", Brand: "Ace", Genre: "Sci-Fi", Price: 20, TotalStock: 5,
	})
	testutil.CreateTestProduct(t, client, testutil.ProductFixture{
		Title: "Neuromancer", Category: "Books", Brand: "Gollancz", Genre: "Sci-Fi", Price: 18, TotalStock: 5,
	})
	testutil.CreateTestProduct(t, client, testutil.ProductFixture{
		Title: "Abbey Road", Category: "Music", Brand: "Apple", Genre: "Rock", Price: 28, TotalStock: 5,
	})

	t.Run("no filter returns everything price ascending", func(t *testing.T) {
		result, err := readModel.ListProducts(ctx, &contracts.ProductFilter{})
		require.NoError(t, err)

		require.Len(t, result, 3)
		assert.Equal(t, "Neuromancer", result[0].Title)
		assert.Equal(t, "Dune", result[1].Title)
		assert.Equal(t, "Abbey Road", result[2].Title)
	})

	t.Run("facets AND across kinds OR within a kind", func(t *testing.T) {
		result, err := readModel.ListProducts(ctx, &contracts.ProductFilter{
			Categories: []string{"Books"},
			Brands:     []string{"Ace", "Gollancz"},
		})
		require.NoError(t, err)

		require.Len(t, result, 2)
		for _, product := range result {
			assert.Equal(t, "Books", product.Category)
		}
	})

	t.Run("non-matching facet combination is empty", func(t *testing.T) {
		result, err := readModel.ListProducts(ctx, &contracts.ProductFilter{
			Categories: []string{"Music"},
			Genres:     []string{"Sci-Fi"},
		})
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("title descending", func(t *testing.T) {
		result, err := readModel.ListProducts(ctx, &contracts.ProductFilter{
			OrderBy: contracts.OrderTitleDesc,
		})
		require.NoError(t, err)

		require.Len(t, result, 3)
		assert.Equal(t, "Neuromancer", result[0].Title)
		assert.Equal(t, "Dune", result[1].Title)
		assert.Equal(t, "Abbey Road", result[2].Title)
	})
}

func TestCatalogReadModel_GetProductByID(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := repo.NewCatalogReadModel(client)

	productID := testutil.CreateTestProduct(t, client, testutil.ProductFixture{
		Title: "Dune", Price: 20, SalePrice: 15, TotalStock: 5,
	})

	t.Run("found", func(t *testing.T) {
		dto, err := readModel.GetProductByID(ctx, productID)
		require.NoError(t, err)

		assert.Equal(t, productID, dto.ProductID)
		assert.Equal(t, "Dune", dto.Title)
		assert.InDelta(t, 20, dto.Price, 0.001)
		assert.InDelta(t, 15, dto.SalePrice, 0.001)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := readModel.GetProductByID(ctx, "no-such-product")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestCatalogReadModel_SearchProducts(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := repo.NewCatalogReadModel(client)

	testutil.CreateTestProduct(t, client, testutil.ProductFixture{
		Title: "Dune", Brand: "Ace", Genre: "Sci-Fi", Price: 20,
	})
	testutil.CreateTestProduct(t, client, testutil.ProductFixture{
		Title: "The Hobbit", Brand: "HarperCollins", Genre: "Fantasy", Price: 22,
	})

	t.Run("matches title case-insensitively", func(t *testing.T) {
		result, err := readModel.SearchProducts(ctx, "dUnE", 0)
		require.NoError(t, err)

		require.Len(t, result, 1)
		assert.Equal(t, "Dune", result[0].Title)
	})

	t.Run("matches brand and genre fields", func(t *testing.T) {
		result, err := readModel.SearchProducts(ctx, "harper", 0)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "The Hobbit", result[0].Title)

		result, err = readModel.SearchProducts(ctx, "fanta", 0)
		require.NoError(t, err)
		require.Len(t, result, 1)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		result, err := readModel.SearchProducts(ctx, "e", 1)
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("no match is empty not error", func(t *testing.T) {
		result, err := readModel.SearchProducts(ctx, "zzzzz", 0)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestCatalogReadModel_ListLowStock(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := repo.NewCatalogReadModel(client)

	testutil.CreateTestProduct(t, client, testutil.ProductFixture{Title: "Sold Out", Price: 5, TotalStock: 0})
	testutil.CreateTestProduct(t, client, testutil.ProductFixture{Title: "Nearly Gone", Price: 5, TotalStock: 1})
	testutil.CreateTestProduct(t, client, testutil.ProductFixture{Title: "Running Low", Price: 5, TotalStock: 4})
	testutil.CreateTestProduct(t, client, testutil.ProductFixture{Title: "Plenty", Price: 5, TotalStock: 50})

	result, err := readModel.ListLowStock(ctx, 5)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "Nearly Gone", result[0].Title)
	assert.Equal(t, "Running Low", result[1].Title)
}

func TestCatalogReadModel_GetProductsByIDs(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := repo.NewCatalogReadModel(client)

	id1 := testutil.CreateTestProduct(t, client, testutil.ProductFixture{Title: "Dune", Price: 20})
	testutil.CreateTestProduct(t, client, testutil.ProductFixture{Title: "Other", Price: 10})

	result, err := readModel.GetProductsByIDs(ctx, []string{id1, "no-such-product"})
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "Dune", result[id1].Title)
}

func TestTaxonomyRepo_ListAndUniqueness(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	taxonomyRepo := repo.NewTaxonomyRepo(client)

	testutil.CreateTestTaxonomy(t, client, "genre", "Sci-Fi")
	testutil.CreateTestTaxonomy(t, client, "genre", "Fantasy")
	testutil.CreateTestTaxonomy(t, client, "brand", "Ace")

	entries, err := taxonomyRepo.List(ctx, "genre")
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	taken, err := taxonomyRepo.NameExists(ctx, "genre", "Sci-Fi")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = taxonomyRepo.NameExists(ctx, "category", "Sci-Fi")
	require.NoError(t, err)
	assert.False(t, taken, "names are scoped per kind")
}

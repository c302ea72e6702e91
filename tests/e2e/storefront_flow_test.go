package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_taxonomy"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/search_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/suggest_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/save_taxonomy"
)

// TestBrowseCatalog walks the storefront read path: vocabulary listing,
// facet filtering with sort keys, and free-text search.
func TestBrowseCatalog(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	for _, name := range []string{"Sci-Fi", "Fantasy"} {
		_, err := suite.SaveTaxonomy.Execute(ctx(), &save_taxonomy.Request{Kind: "genre", Name: name})
		require.NoError(t, err)
	}

	_, err := suite.CreateProduct.Execute(ctx(), NewProductBuilder().
		WithTitle("Dune").WithGenre("Sci-Fi").WithBrand("Ace").WithPrice(20).Build())
	require.NoError(t, err)
	_, err = suite.CreateProduct.Execute(ctx(), NewProductBuilder().
		WithTitle("Neuromancer").WithGenre("Sci-Fi").WithBrand("Gollancz").WithPrice(18).Build())
	require.NoError(t, err)
	_, err = suite.CreateProduct.Execute(ctx(), NewProductBuilder().
		WithTitle("The Hobbit").WithGenre("Fantasy").WithBrand("HarperCollins").WithPrice(22).Build())
	require.NoError(t, err)

	t.Run("vocabulary listing", func(t *testing.T) {
		entries, err := suite.ListTaxonomy.Execute(ctx(), &list_taxonomy.Request{Kind: "genre"})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Sci-Fi", entries[0].Name)
		assert.Equal(t, "Fantasy", entries[1].Name)
	})

	t.Run("filter by genre, price descending", func(t *testing.T) {
		result, err := suite.ListProducts.Execute(ctx(), &list_products.Request{
			Genres: []string{"Sci-Fi"},
			SortBy: list_products.SortPriceHighToLow,
		})
		require.NoError(t, err)

		require.Len(t, result, 2)
		assert.Equal(t, "Dune", result[0].Title)
		assert.Equal(t, "Neuromancer", result[1].Title)
	})

	t.Run("filter by genre entry id matches name-stored rows", func(t *testing.T) {
		entries, err := suite.ListTaxonomy.Execute(ctx(), &list_taxonomy.Request{Kind: "genre"})
		require.NoError(t, err)

		var sciFiID string
		for _, entry := range entries {
			if entry.Name == "Sci-Fi" {
				sciFiID = entry.ID
			}
		}
		require.NotEmpty(t, sciFiID)

		result, err := suite.ListProducts.Execute(ctx(), &list_products.Request{
			Genres: []string{sciFiID},
		})
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("search spans title and brand", func(t *testing.T) {
		result, err := suite.SearchProducts.Execute(ctx(), &search_products.Request{Keyword: "gollancz"})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Neuromancer", result[0].Title)
	})

	t.Run("single-keystroke search returns nothing", func(t *testing.T) {
		result, err := suite.SearchProducts.Execute(ctx(), &search_products.Request{Keyword: "d"})
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("suggestions deduplicate repeated titles", func(t *testing.T) {
		_, err := suite.CreateProduct.Execute(ctx(), NewProductBuilder().
			WithTitle("DUNE").WithGenre("Sci-Fi").WithBrand("Reissue").WithPrice(12).Build())
		require.NoError(t, err)

		suggestions, err := suite.SuggestProducts.Execute(ctx(), &suggest_products.Request{Keyword: "dune"})
		require.NoError(t, err)

		require.Len(t, suggestions, 1)
		assert.Equal(t, "Dune", suggestions[0].Title)
	})
}

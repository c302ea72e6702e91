package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/low_stock"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/top_categories"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/top_genres"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/update_order_status"
)

var checkoutAddress = domain.AddressInfo{
	Address: "1 Demo Street",
	City:    "Springfield",
	Pincode: "00001",
	Phone:   "555-0100",
}

// TestCheckoutToDashboard walks an order from checkout to delivery and
// checks that the admin dashboard reflects it.
func TestCheckoutToDashboard(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	duneID, err := suite.CreateProduct.Execute(ctx(), NewProductBuilder().
		WithTitle("Dune").WithCategory("Books").WithGenre("Sci-Fi").WithPrice(20).WithStock(4).Build())
	require.NoError(t, err)
	hobbitID, err := suite.CreateProduct.Execute(ctx(), NewProductBuilder().
		WithTitle("The Hobbit").WithCategory("Books").WithGenre("Fantasy").WithPrice(22).WithStock(30).Build())
	require.NoError(t, err)

	orderID, err := suite.PlaceOrder.Execute(ctx(), &place_order.Request{
		UserID: "shopper-1",
		Items: []place_order.ItemRequest{
			{ProductID: duneID, Quantity: 3},
			{ProductID: hobbitID, Quantity: 1},
		},
		Address:       checkoutAddress,
		PaymentMethod: "cod",
	})
	require.NoError(t, err)

	t.Run("pending orders do not count as sales", func(t *testing.T) {
		stats, err := suite.TopGenres.Execute(ctx(), &top_genres.Request{})
		require.NoError(t, err)
		assert.Empty(t, stats)

		summary, err := suite.SalesSummary.Execute(ctx())
		require.NoError(t, err)
		assert.InDelta(t, 0, summary.TotalSales, 0.001)
		assert.Equal(t, int64(2), summary.ActiveItemCount)
	})

	for _, status := range []string{"confirmed", "inProcess", "inShipping", "delivered"} {
		require.NoError(t, suite.UpdateOrderStatus.Execute(ctx(), &update_order_status.Request{
			OrderID: orderID,
			Status:  status,
		}))
	}

	t.Run("delivery surfaces the sale everywhere", func(t *testing.T) {
		genres, err := suite.TopGenres.Execute(ctx(), &top_genres.Request{})
		require.NoError(t, err)
		require.Len(t, genres, 2)
		assert.Equal(t, "Sci-Fi", genres[0].Name)
		assert.Equal(t, int64(3), genres[0].UnitsSold)

		categories, err := suite.TopCategories.Execute(ctx(), &top_categories.Request{})
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Books", categories[0].Name)
		assert.Equal(t, int64(4), categories[0].UnitsSold)

		summary, err := suite.SalesSummary.Execute(ctx())
		require.NoError(t, err)
		assert.InDelta(t, 82, summary.TotalSales, 0.001)
		assert.Equal(t, int64(4), summary.TotalUnitsSold)
	})

	t.Run("checkout drained stock into the low-stock view", func(t *testing.T) {
		result, err := suite.LowStock.Execute(ctx(), &low_stock.Request{})
		require.NoError(t, err)

		require.Len(t, result, 1)
		assert.Equal(t, "Dune", result[0].Title)
		assert.Equal(t, int64(1), result[0].TotalStock)
	})

	t.Run("deleting a sold product degrades its category to Unknown", func(t *testing.T) {
		require.NoError(t, suite.DeleteProduct.Execute(ctx(), &delete_product.Request{ProductID: duneID}))

		categories, err := suite.TopCategories.Execute(ctx(), &top_categories.Request{})
		require.NoError(t, err)

		require.Len(t, categories, 2)
		// 3 Dune units now attribute to Unknown, outranking the 1 Hobbit unit.
		assert.Equal(t, "Unknown", categories[0].Name)
		assert.Equal(t, int64(3), categories[0].UnitsSold)
		assert.Equal(t, "Books", categories[1].Name)

		// Genre came from the checkout snapshot, so it survives the delete.
		genres, err := suite.TopGenres.Execute(ctx(), &top_genres.Request{})
		require.NoError(t, err)
		assert.Equal(t, "Sci-Fi", genres[0].Name)
	})
}

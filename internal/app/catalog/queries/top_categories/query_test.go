package top_categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

type fakeOrders struct {
	contracts.OrderReadModel

	delivered []*contracts.OrderDTO
}

func (f *fakeOrders) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*contracts.OrderDTO, error) {
	return f.delivered, nil
}

type fakeCatalog struct {
	contracts.CatalogReadModel

	products map[string]*contracts.ProductDTO
	lookups  int
}

func (f *fakeCatalog) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	f.lookups++
	product, ok := f.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func TestExecute_ResolvesCategoryFromCatalog(t *testing.T) {
	orders := &fakeOrders{delivered: []*contracts.OrderDTO{
		{CartItems: []contracts.CartItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		}},
	}}
	catalog := &fakeCatalog{products: map[string]*contracts.ProductDTO{
		"p1": {ProductID: "p1", Category: "Books"},
		"p2": {ProductID: "p2", Category: "Music"},
	}}
	query := NewQuery(orders, catalog)

	result, err := query.Execute(context.Background(), &Request{})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Books", result[0].Name)
	assert.Equal(t, int64(2), result[0].UnitsSold)
	assert.Equal(t, "Music", result[1].Name)
	assert.Equal(t, int64(1), result[1].UnitsSold)
}

func TestExecute_MemoizesLookupsPerProduct(t *testing.T) {
	orders := &fakeOrders{delivered: []*contracts.OrderDTO{
		{CartItems: []contracts.CartItem{{ProductID: "p1", Quantity: 1}}},
		{CartItems: []contracts.CartItem{{ProductID: "p1", Quantity: 1}}},
		{CartItems: []contracts.CartItem{{ProductID: "p1", Quantity: 1}}},
	}}
	catalog := &fakeCatalog{products: map[string]*contracts.ProductDTO{
		"p1": {ProductID: "p1", Category: "Books"},
	}}
	query := NewQuery(orders, catalog)

	result, err := query.Execute(context.Background(), &Request{})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(3), result[0].UnitsSold)
	assert.Equal(t, 1, catalog.lookups, "one lookup per distinct product")
}

func TestExecute_DeletedProductCountsAsUnknown(t *testing.T) {
	orders := &fakeOrders{delivered: []*contracts.OrderDTO{
		{CartItems: []contracts.CartItem{
			{ProductID: "gone", Quantity: 5},
			{ProductID: "p1", Quantity: 1},
		}},
	}}
	catalog := &fakeCatalog{products: map[string]*contracts.ProductDTO{
		"p1": {ProductID: "p1", Category: "Books"},
	}}
	query := NewQuery(orders, catalog)

	result, err := query.Execute(context.Background(), &Request{})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Unknown", result[0].Name)
	assert.Equal(t, int64(5), result[0].UnitsSold)
}

func TestExecute_TruncatesToLimit(t *testing.T) {
	orders := &fakeOrders{delivered: []*contracts.OrderDTO{
		{CartItems: []contracts.CartItem{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "p2", Quantity: 2},
			{ProductID: "p3", Quantity: 1},
		}},
	}}
	catalog := &fakeCatalog{products: map[string]*contracts.ProductDTO{
		"p1": {ProductID: "p1", Category: "Books"},
		"p2": {ProductID: "p2", Category: "Music"},
		"p3": {ProductID: "p3", Category: "Games"},
	}}
	query := NewQuery(orders, catalog)

	result, err := query.Execute(context.Background(), &Request{Limit: 1})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Books", result[0].Name)
}

package sales_summary

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

	lastStatus domain.OrderStatus
	delivered  []*contracts.OrderDTO
}

func (f *fakeOrders) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*contracts.OrderDTO, error) {
	f.lastStatus = status
	return f.delivered, nil
}

type fakeCatalog struct {
	contracts.CatalogReadModel

	count int64
}

func (f *fakeCatalog) CountProducts(ctx context.Context) (int64, error) {
	return f.count, nil
}

func TestExecute_SumsDeliveredOrders(t *testing.T) {
	orders := &fakeOrders{delivered: []*contracts.OrderDTO{
		{
			TotalAmount: 39.50,
			CartItems: []contracts.CartItem{
				{ProductID: "p1", Quantity: 2},
				{ProductID: "p2", Quantity: 1},
			},
		},
		{
			TotalAmount: 10,
			CartItems: []contracts.CartItem{
				{ProductID: "p1", Quantity: 1},
			},
		},
	}}
	catalog := &fakeCatalog{count: 42}
	query := NewQuery(orders, catalog)

	summary, err := query.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, orders.lastStatus)
	assert.InDelta(t, 49.50, summary.TotalSales, 0.001)
	assert.Equal(t, int64(4), summary.TotalUnitsSold)
	assert.Equal(t, int64(42), summary.ActiveItemCount)
}

func TestExecute_EmptyHistory(t *testing.T) {
	query := NewQuery(&fakeOrders{}, &fakeCatalog{count: 3})

	summary, err := query.Execute(context.Background())

	require.NoError(t, err)
	assert.Zero(t, summary.TotalSales)
	assert.Zero(t, summary.TotalUnitsSold)
	assert.Equal(t, int64(3), summary.ActiveItemCount)
}

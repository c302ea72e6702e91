package sales_summary

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// Query computes the admin dashboard headline numbers: revenue and
// units from delivered orders, plus the current catalog size. Like the
// rankings, it recomputes from the full history on every call.
type Query struct {
	orders  contracts.OrderReadModel
	catalog contracts.CatalogReadModel
}

// NewQuery creates a new sales summary query.
func NewQuery(orders contracts.OrderReadModel, catalog contracts.CatalogReadModel) *Query {
	return &Query{
		orders:  orders,
		catalog: catalog,
	}
}

// Execute derives the summary from delivered orders and the catalog.
func (q *Query) Execute(ctx context.Context) (*contracts.SalesSummary, error) {
	delivered, err := q.orders.ListOrdersByStatus(ctx, domain.StatusDelivered)
	if err != nil {
		return nil, err
	}

	summary := &contracts.SalesSummary{}
	for _, order := range delivered {
		summary.TotalSales += order.TotalAmount
		for _, item := range order.CartItems {
			// Units, not order count.
			summary.TotalUnitsSold += item.Quantity
		}
	}

	summary.ActiveItemCount, err = q.catalog.CountProducts(ctx)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

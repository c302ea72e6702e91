package low_stock

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
)

// DefaultThreshold matches the admin dashboard's low-inventory view.
const DefaultThreshold = 5

// Request contains the stock threshold. Threshold <= 0 uses
// DefaultThreshold.
type Request struct {
	Threshold int64
}

// Query lists products running low: 0 < total_stock <= threshold,
// lowest first. Products at exactly zero are out of stock, a separate
// state, and excluded here.
type Query struct {
	readModel contracts.CatalogReadModel
}

// NewQuery creates a new low stock query.
func NewQuery(readModel contracts.CatalogReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves the low-stock product list.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductDTO, error) {
	threshold := req.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	return q.readModel.ListLowStock(ctx, threshold)
}

package top_products

import (
	"context"
	"sort"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// DefaultLimit is the ranking length the storefront renders.
const DefaultLimit = 5

// Request contains the ranking length. Limit <= 0 uses DefaultLimit.
type Request struct {
	Limit int
}

// Query derives the top-selling-products ranking from delivered orders.
// Units accumulate per product id; full product records are then fetched
// for the winning id set only and the computed counts merged on. Winners
// deleted from the catalog since their sales are skipped.
type Query struct {
	orders  contracts.OrderReadModel
	catalog contracts.CatalogReadModel
}

// NewQuery creates a new top products query.
func NewQuery(orders contracts.OrderReadModel, catalog contracts.CatalogReadModel) *Query {
	return &Query{
		orders:  orders,
		catalog: catalog,
	}
}

type productUnits struct {
	productID string
	units     int64
}

// Execute recomputes the ranking from the full delivered-order history.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductStat, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	delivered, err := q.orders.ListOrdersByStatus(ctx, domain.StatusDelivered)
	if err != nil {
		return nil, err
	}

	counts := make([]*productUnits, 0)
	index := make(map[string]int)

	for _, order := range delivered {
		for _, item := range order.CartItems {
			if item.ProductID == "" {
				continue
			}
			i, ok := index[item.ProductID]
			if !ok {
				i = len(counts)
				index[item.ProductID] = i
				counts = append(counts, &productUnits{productID: item.ProductID})
			}
			counts[i].units += item.Quantity
		}
	}

	sort.SliceStable(counts, func(a, b int) bool {
		return counts[a].units > counts[b].units
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}
	if len(counts) == 0 {
		return []*contracts.ProductStat{}, nil
	}

	ids := make([]string, 0, len(counts))
	for _, c := range counts {
		ids = append(ids, c.productID)
	}

	products, err := q.catalog.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Preserve the sales ranking, not the fetch order.
	ranked := make([]*contracts.ProductStat, 0, len(counts))
	for _, c := range counts {
		product, ok := products[c.productID]
		if !ok {
			continue
		}
		ranked = append(ranked, &contracts.ProductStat{
			ProductDTO: *product,
			UnitsSold:  c.units,
		})
	}

	return ranked, nil
}

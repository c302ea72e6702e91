package top_categories

import (
	"context"
	"errors"
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

// Query derives the category sales ranking from delivered orders.
// Unlike genre, category is not snapshotted onto cart items, so each
// line resolves its category from the current product record. A
// per-request memo keyed by product id bounds the lookups to one per
// distinct product. Products deleted since the sale resolve to
// "Unknown", which shifts their historical units into that bucket.
type Query struct {
	orders  contracts.OrderReadModel
	catalog contracts.CatalogReadModel
}

// NewQuery creates a new top categories query.
func NewQuery(orders contracts.OrderReadModel, catalog contracts.CatalogReadModel) *Query {
	return &Query{
		orders:  orders,
		catalog: catalog,
	}
}

// Execute recomputes the ranking from the full delivered-order history.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.FacetStat, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	delivered, err := q.orders.ListOrdersByStatus(ctx, domain.StatusDelivered)
	if err != nil {
		return nil, err
	}

	stats := make([]*contracts.FacetStat, 0)
	index := make(map[string]int)
	categoryMemo := make(map[string]string)

	for _, order := range delivered {
		for _, item := range order.CartItems {
			if item.ProductID == "" {
				continue
			}

			category, err := q.resolveCategory(ctx, item.ProductID, categoryMemo)
			if err != nil {
				return nil, err
			}

			i, ok := index[category]
			if !ok {
				i = len(stats)
				index[category] = i
				stats = append(stats, &contracts.FacetStat{Name: category})
			}
			stats[i].UnitsSold += item.Quantity
		}
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].UnitsSold > stats[b].UnitsSold
	})

	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}

// resolveCategory looks up a product's current category through the
// per-request memo.
func (q *Query) resolveCategory(ctx context.Context, productID string, memo map[string]string) (string, error) {
	if category, ok := memo[productID]; ok {
		return category, nil
	}

	product, err := q.catalog.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			memo[productID] = "Unknown"
			return "Unknown", nil
		}
		return "", err
	}

	category := product.Category
	if category == "" {
		category = "Unknown"
	}
	memo[productID] = category
	return category, nil
}

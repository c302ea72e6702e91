package top_genres

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

// Query derives the genre sales ranking from delivered orders. Genre is
// snapshotted onto each cart item at checkout, so the whole aggregation
// runs off the order history without product lookups.
type Query struct {
	orders contracts.OrderReadModel
}

// NewQuery creates a new top genres query.
func NewQuery(orders contracts.OrderReadModel) *Query {
	return &Query{
		orders: orders,
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

	// Accumulate units per genre, remembering first-seen order so the
	// descending sort breaks ties stably.
	stats := make([]*contracts.FacetStat, 0)
	index := make(map[string]int)

	for _, order := range delivered {
		for _, item := range order.CartItems {
			genre := item.Genre
			if genre == "" {
				genre = "Unknown"
			}
			i, ok := index[genre]
			if !ok {
				i = len(stats)
				index[genre] = i
				stats = append(stats, &contracts.FacetStat{Name: genre})
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

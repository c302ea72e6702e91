package search_products

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
)

// minKeywordRunes guards against scanning the whole catalog for one or
// two keystrokes. Shorter keywords return an empty result without
// issuing a storage query at all.
const minKeywordRunes = 2

// Request contains the free-text keyword.
type Request struct {
	Keyword string
}

// Query handles the full-text search use case: a case-insensitive
// substring match of the keyword against title, brand, genre and
// category. No relevance scoring; storage order is the default
// "Relevance" sort and the client applies its own re-sorts.
type Query struct {
	readModel contracts.CatalogReadModel
}

// NewQuery creates a new search products query.
func NewQuery(readModel contracts.CatalogReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves every product matching the keyword.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductDTO, error) {
	keyword := strings.TrimSpace(req.Keyword)
	if utf8.RuneCountInString(keyword) < minKeywordRunes {
		return []*contracts.ProductDTO{}, nil
	}

	return q.readModel.SearchProducts(ctx, keyword, 0)
}

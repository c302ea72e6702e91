package suggest_products

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
)

const (
	// minKeywordRunes mirrors the search guard: suggestions for a single
	// keystroke are not worth a catalog scan.
	minKeywordRunes = 2

	// maxSuggestions caps the storage query. The cap applies before title
	// deduplication, so fewer entries may come back even when the catalog
	// holds more matches.
	maxSuggestions = 8
)

// Request contains the partial keyword typed so far.
type Request struct {
	Keyword string
}

// Query handles the autocomplete use case. Matching is the same
// substring-OR-across-fields rule as full search; results are trimmed
// to suggestion shape and deduplicated by case-insensitive title.
type Query struct {
	readModel contracts.CatalogReadModel
}

// NewQuery creates a new suggest products query.
func NewQuery(readModel contracts.CatalogReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves at most maxSuggestions deduplicated suggestions.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.Suggestion, error) {
	keyword := strings.TrimSpace(req.Keyword)
	if utf8.RuneCountInString(keyword) < minKeywordRunes {
		return []*contracts.Suggestion{}, nil
	}

	matches, err := q.readModel.SearchProducts(ctx, keyword, maxSuggestions)
	if err != nil {
		return nil, err
	}

	suggestions := make([]*contracts.Suggestion, 0, len(matches))
	seenTitles := make(map[string]bool, len(matches))

	for _, product := range matches {
		titleKey := strings.ToLower(product.Title)
		if seenTitles[titleKey] {
			continue
		}
		seenTitles[titleKey] = true

		suggestions = append(suggestions, &contracts.Suggestion{
			ID:       product.ProductID,
			Title:    product.Title,
			Brand:    product.Brand,
			Genre:    product.Genre,
			Category: product.Category,
		})
	}

	return suggestions, nil
}

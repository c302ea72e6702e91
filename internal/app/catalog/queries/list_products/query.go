package list_products

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/models/m_taxonomy"
)

// Sort keys accepted on the wire. Anything else falls back to
// SortPriceLowToHigh; an unknown key is a defaulting case, not an error.
const (
	SortPriceLowToHigh = "price-lowtohigh"
	SortPriceHighToLow = "price-hightolow"
	SortTitleAToZ      = "title-atoz"
	SortTitleZToA      = "title-ztoa"
)

// Request contains the facet selection and sort key.
type Request struct {
	Categories []string
	Brands     []string
	Genres     []string
	SortBy     string
}

// Query handles the filtered product listing use case. Facet values are
// ANDed across kinds and ORed within a kind.
type Query struct {
	readModel contracts.CatalogReadModel
	taxonomy  contracts.TaxonomyReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.CatalogReadModel, taxonomy contracts.TaxonomyReadModel) *Query {
	return &Query{
		readModel: readModel,
		taxonomy:  taxonomy,
	}
}

// Execute retrieves the full ordered set of products matching the facets.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductDTO, error) {
	filter := &contracts.ProductFilter{
		OrderBy: parseSortKey(req.SortBy),
	}

	var err error
	if filter.Categories, err = q.expandFacet(ctx, m_taxonomy.KindCategory, req.Categories); err != nil {
		return nil, err
	}
	if filter.Brands, err = q.expandFacet(ctx, m_taxonomy.KindBrand, req.Brands); err != nil {
		return nil, err
	}
	if filter.Genres, err = q.expandFacet(ctx, m_taxonomy.KindGenre, req.Genres); err != nil {
		return nil, err
	}

	return q.readModel.ListProducts(ctx, filter)
}

// expandFacet widens each selected value to both of its stored forms.
// Product rows reference taxonomy entries as bare strings, and depending
// on when the row was written that string is either the entry's display
// name or its id. The selection therefore matches if the column equals
// the value itself, the id behind that name, or the name behind that id.
func (q *Query) expandFacet(ctx context.Context, kind string, selected []string) ([]string, error) {
	if len(selected) == 0 {
		return nil, nil
	}

	entries, err := q.taxonomy.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s facet: %w", kind, err)
	}

	idByName := make(map[string]string, len(entries))
	nameByID := make(map[string]string, len(entries))
	for _, entry := range entries {
		idByName[entry.Name] = entry.ID
		nameByID[entry.ID] = entry.Name
	}

	expanded := make([]string, 0, len(selected)*2)
	seen := make(map[string]bool, len(selected)*2)
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			expanded = append(expanded, v)
		}
	}

	for _, value := range selected {
		add(value)
		if id, ok := idByName[value]; ok {
			add(id)
		}
		if name, ok := nameByID[value]; ok {
			add(name)
		}
	}

	return expanded, nil
}

// parseSortKey maps a wire sort key to a ProductOrder.
func parseSortKey(sortBy string) contracts.ProductOrder {
	switch sortBy {
	case SortPriceHighToLow:
		return contracts.OrderPriceDesc
	case SortTitleAToZ:
		return contracts.OrderTitleAsc
	case SortTitleZToA:
		return contracts.OrderTitleDesc
	default:
		return contracts.OrderPriceAsc
	}
}

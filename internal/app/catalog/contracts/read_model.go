package contracts

import (
	"context"
	"time"
)

// ProductDTO is a data transfer object for catalog queries. The JSON
// field names match the storefront client's expectations.
type ProductDTO struct {
	ProductID     string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	Category      string    `json:"category"`
	Brand         string    `json:"brand"`
	Genre         string    `json:"genre"`
	Price         float64   `json:"price"`
	SalePrice     float64   `json:"salePrice"`
	TotalStock    int64     `json:"totalStock"`
	AverageReview float64   `json:"averageReview"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Suggestion is one autocomplete entry: just enough fields for the
// search-as-you-type dropdown.
type Suggestion struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Brand    string `json:"brand"`
	Genre    string `json:"genre"`
	Category string `json:"category"`
}

// ProductOrder selects the ORDER BY applied to a product listing.
type ProductOrder int

const (
	OrderPriceAsc ProductOrder = iota
	OrderPriceDesc
	OrderTitleAsc
	OrderTitleDesc
)

// ProductFilter defines facet filtering and ordering for listing products.
// Facet slices combine with AND across kinds and OR within a kind; an
// empty slice means "no constraint on this facet". Values are matched
// verbatim against the stored column, so callers that need name-or-id
// compatibility must expand values before building the filter.
type ProductFilter struct {
	Categories []string
	Brands     []string
	Genres     []string
	OrderBy    ProductOrder
}

// CatalogReadModel defines the read interface over the product catalog.
// Read models bypass the domain layer; they return DTOs, not aggregates.
type CatalogReadModel interface {
	// GetProductByID retrieves a single product DTO.
	GetProductByID(ctx context.Context, productID string) (*ProductDTO, error)

	// ListProducts retrieves the full set of products matching the filter,
	// ordered per the filter. No pagination: the storefront renders the
	// whole matching set.
	ListProducts(ctx context.Context, filter *ProductFilter) ([]*ProductDTO, error)

	// SearchProducts retrieves products whose title, brand, genre or
	// category contains the keyword (case-insensitive). limit <= 0 means
	// unlimited. Results come back in storage order.
	SearchProducts(ctx context.Context, keyword string, limit int64) ([]*ProductDTO, error)

	// GetProductsByIDs retrieves the given products keyed by id. Missing
	// ids are absent from the map, not an error.
	GetProductsByIDs(ctx context.Context, ids []string) (map[string]*ProductDTO, error)

	// ListLowStock retrieves products with 0 < total_stock <= threshold,
	// ascending by stock. Out-of-stock products are excluded.
	ListLowStock(ctx context.Context, threshold int64) ([]*ProductDTO, error)

	// CountProducts returns the current catalog size.
	CountProducts(ctx context.Context) (int64, error)
}

package list_taxonomy

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_taxonomy"
)

// Request names the facet vocabulary to list.
type Request struct {
	Kind string
}

// Query lists one facet vocabulary in insertion order.
type Query struct {
	readModel contracts.TaxonomyReadModel
}

// NewQuery creates a new list taxonomy query.
func NewQuery(readModel contracts.TaxonomyReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves all entries of the requested kind.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.TaxonomyEntry, error) {
	if !m_taxonomy.ValidKind(req.Kind) {
		return nil, domain.ErrUnknownKind
	}
	return q.readModel.List(ctx, req.Kind)
}

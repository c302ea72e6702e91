package contracts

import (
	"context"

	"cloud.google.com/go/spanner"
)

// TaxonomyEntry is one facet vocabulary entry (a category, brand or genre).
type TaxonomyEntry struct {
	Kind string `json:"-"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TaxonomyReadModel lists facet vocabularies.
type TaxonomyReadModel interface {
	// List returns all entries of a kind in insertion order.
	List(ctx context.Context, kind string) ([]*TaxonomyEntry, error)
}

// TaxonomyRepository defines the write interface for taxonomy entries.
// Repositories return mutations, they don't apply them.
type TaxonomyRepository interface {
	// InsertMut creates a mutation for inserting an entry.
	InsertMut(entry *TaxonomyEntry) *spanner.Mutation

	// DeleteMut creates a mutation for deleting an entry.
	DeleteMut(kind, taxonomyID string) *spanner.Mutation

	// Exists checks whether an entry exists.
	Exists(ctx context.Context, kind, taxonomyID string) (bool, error)

	// NameExists checks whether a name is already taken within a kind.
	NameExists(ctx context.Context, kind, name string) (bool, error)
}

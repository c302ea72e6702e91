package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// ProductRepository defines the write interface for products.
// Repositories return mutations, they don't apply them; usecases collect
// mutations into a CommitPlan and apply it atomically.
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product.
	InsertMut(product *domain.Product) (*spanner.Mutation, error)

	// UpdateMut creates a mutation for updating a product (only dirty
	// fields). Returns nil when nothing changed.
	UpdateMut(product *domain.Product) (*spanner.Mutation, error)

	// DeleteMut creates a mutation for deleting a product.
	DeleteMut(productID string) *spanner.Mutation

	// GetByID retrieves a product by ID, reconstructing the domain aggregate.
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// GetByIDInTxn retrieves a product within a read-write transaction.
	// Checkout uses this so the stock check and decrement see the same row.
	GetByIDInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, productID string) (*domain.Product, error)
}

package delete_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request identifies the product to delete.
type Request struct {
	ProductID string
}

// Interactor handles the delete product use case. Deletion is hard:
// order history keeps its cart-item snapshots, but live lookups against
// a deleted product resolve to "Unknown" from then on.
type Interactor struct {
	repo      contracts.ProductRepository
	committer *committer.Committer
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(repo contracts.ProductRepository, committer *committer.Committer) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute deletes the product. Deleting verifies existence first so the
// handler can 404 instead of silently succeeding.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if _, err := i.repo.GetByID(ctx, req.ProductID); err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(req.ProductID))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

package delete_taxonomy

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_taxonomy"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request identifies the entry to remove.
type Request struct {
	Kind       string
	TaxonomyID string
}

// Interactor handles removing a facet vocabulary entry. Products keep
// referencing the removed value as a plain string; only the vocabulary
// shrinks, existing rows are untouched.
type Interactor struct {
	repo      contracts.TaxonomyRepository
	committer *committer.Committer
}

// NewInteractor creates a new delete taxonomy interactor.
func NewInteractor(repo contracts.TaxonomyRepository, committer *committer.Committer) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute removes the entry.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if !m_taxonomy.ValidKind(req.Kind) {
		return domain.ErrUnknownKind
	}

	exists, err := i.repo.Exists(ctx, req.Kind, req.TaxonomyID)
	if err != nil {
		return fmt.Errorf("failed to check entry: %w", err)
	}
	if !exists {
		return domain.ErrTaxonomyNotFound
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(req.Kind, req.TaxonomyID))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

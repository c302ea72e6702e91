package save_taxonomy

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_taxonomy"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request contains the entry to add to a facet vocabulary.
type Request struct {
	Kind string
	Name string
}

// Interactor handles adding a category, brand or genre entry.
type Interactor struct {
	repo      contracts.TaxonomyRepository
	committer *committer.Committer
}

// NewInteractor creates a new save taxonomy interactor.
func NewInteractor(repo contracts.TaxonomyRepository, committer *committer.Committer) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute inserts the entry and returns its generated id. Names are
// unique within a kind; the check-then-insert race is tolerable for an
// admin-only vocabulary.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	if !m_taxonomy.ValidKind(req.Kind) {
		return "", domain.ErrUnknownKind
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", domain.ErrEmptyTaxonomyName
	}

	taken, err := i.repo.NameExists(ctx, req.Kind, name)
	if err != nil {
		return "", fmt.Errorf("failed to check name: %w", err)
	}
	if taken {
		return "", domain.ErrDuplicateTaxonomy
	}

	entry := &contracts.TaxonomyEntry{
		Kind: req.Kind,
		ID:   uuid.New().String(),
		Name: name,
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(entry))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return entry.ID, nil
}

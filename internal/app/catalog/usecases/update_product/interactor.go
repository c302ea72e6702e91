package update_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request contains the fields to update. Nil pointers mean "no change";
// the admin form always resubmits every field, but partial updates keep
// the mutation small and the API honest.
type Request struct {
	ProductID     string
	Title         *string
	Description   *string
	Image         *string
	Category      *string
	Brand         *string
	Genre         *string
	Price         *domain.Money
	SalePrice     *domain.Money
	TotalStock    *int64
	AverageReview *float64
}

// Interactor handles the update product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer *committer.Committer
}

// NewInteractor creates a new update product interactor.
func NewInteractor(repo contracts.ProductRepository, committer *committer.Committer) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute loads the aggregate, applies the changed fields and commits
// a mutation covering only the dirty columns.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}

	if req.Title != nil {
		if err := product.SetTitle(*req.Title); err != nil {
			return err
		}
	}
	if req.Description != nil {
		product.SetDescription(*req.Description)
	}
	if req.Image != nil {
		product.SetImage(*req.Image)
	}
	if req.Category != nil {
		product.SetCategory(*req.Category)
	}
	if req.Brand != nil {
		product.SetBrand(*req.Brand)
	}
	if req.Genre != nil {
		product.SetGenre(*req.Genre)
	}

	// Price before sale price: the sale invariant checks against the
	// price in effect at call time.
	if req.Price != nil {
		if err := product.SetPrice(req.Price); err != nil {
			return err
		}
	}
	if req.SalePrice != nil {
		if err := product.SetSalePrice(req.SalePrice); err != nil {
			return err
		}
	}
	if req.TotalStock != nil {
		if err := product.SetTotalStock(*req.TotalStock); err != nil {
			return err
		}
	}
	if req.AverageReview != nil {
		if err := product.SetAverageReview(*req.AverageReview); err != nil {
			return err
		}
	}

	plan := committer.NewPlan()

	mut, err := i.repo.UpdateMut(product)
	if err != nil {
		return fmt.Errorf("failed to build product mutation: %w", err)
	}
	plan.Add(mut)

	if plan.IsEmpty() {
		return nil
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

package create_product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request contains the data needed to create a product.
type Request struct {
	Title         string
	Description   string
	Image         string
	Category      string
	Brand         string
	Genre         string
	Price         *domain.Money
	SalePrice     *domain.Money
	TotalStock    int64
	AverageReview float64
}

// Interactor handles the create product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new create product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
		clock:     clock,
	}
}

// Execute creates a new product and returns its id.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	productID := uuid.New().String()

	product, err := domain.NewProduct(
		productID,
		req.Title,
		req.Description,
		req.Image,
		req.Category,
		req.Brand,
		req.Genre,
		req.Price,
		req.SalePrice,
		req.TotalStock,
		req.AverageReview,
		i.clock.Now(),
	)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()

	mut, err := i.repo.InsertMut(product)
	if err != nil {
		return "", fmt.Errorf("failed to build product mutation: %w", err)
	}
	plan.Add(mut)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return product.ID(), nil
}

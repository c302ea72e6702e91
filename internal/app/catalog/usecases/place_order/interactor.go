package place_order

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// ItemRequest is one cart line at checkout: which product and how many.
// Everything else (title, price, genre, brand) is snapshotted from the
// catalog, never trusted from the client.
type ItemRequest struct {
	ProductID string
	Quantity  int64
}

// Request contains the data needed to place an order.
type Request struct {
	UserID        string
	Items         []ItemRequest
	Address       domain.AddressInfo
	PaymentMethod string
}

// Interactor handles checkout. The stock check, the stock decrement and
// the order insert run in one read-write transaction: two concurrent
// checkouts for the last unit cannot both succeed.
type Interactor struct {
	products  contracts.ProductRepository
	orders    contracts.OrderRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new place order interactor.
func NewInteractor(
	products contracts.ProductRepository,
	orders contracts.OrderRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		products:  products,
		orders:    orders,
		committer: committer,
		clock:     clock,
	}
}

// Execute places the order and returns its id.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	if len(req.Items) == 0 {
		return "", domain.ErrEmptyCart
	}
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return "", domain.ErrInvalidQuantity
		}
	}

	orderID := uuid.New().String()
	now := i.clock.Now()

	err := i.committer.ApplyWithReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		plan := committer.NewPlan()
		items := make([]domain.OrderItem, 0, len(req.Items))

		for _, line := range req.Items {
			product, err := i.products.GetByIDInTxn(ctx, txn, line.ProductID)
			if err != nil {
				return err
			}
			if product.TotalStock() < line.Quantity {
				return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, product.Title())
			}

			// Charge the sale price when one is active.
			price := product.Price()
			if product.OnSale() {
				price = product.SalePrice()
			}

			items = append(items, domain.OrderItem{
				ProductID: product.ID(),
				Title:     product.Title(),
				Image:     product.Image(),
				Price:     price,
				Quantity:  line.Quantity,
				Genre:     product.Genre(),
				Brand:     product.Brand(),
			})

			if err := product.SetTotalStock(product.TotalStock() - line.Quantity); err != nil {
				return err
			}
			mut, err := i.products.UpdateMut(product)
			if err != nil {
				return fmt.Errorf("failed to build stock mutation: %w", err)
			}
			plan.Add(mut)
		}

		order, err := domain.NewOrder(orderID, req.UserID, items, req.Address, req.PaymentMethod, now)
		if err != nil {
			return err
		}

		orderMut, err := i.orders.InsertMut(order)
		if err != nil {
			return fmt.Errorf("failed to build order mutation: %w", err)
		}
		plan.Add(orderMut)

		return txn.BufferWrite(plan.Mutations())
	})
	if err != nil {
		return "", err
	}

	return orderID, nil
}

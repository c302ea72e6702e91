package update_order_status

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request contains the transition to apply.
type Request struct {
	OrderID string
	Status  string
}

// Interactor handles the admin-driven order status transition. The
// current status is read and the new one written in a single read-write
// transaction, so two admins racing on the same order cannot both win.
type Interactor struct {
	orders    contracts.OrderRepository
	committer *committer.Committer
	publisher contracts.OrderEventPublisher
	clock     clock.Clock
}

// NewInteractor creates a new update order status interactor. The
// publisher may be nil when eventing is disabled.
func NewInteractor(
	orders contracts.OrderRepository,
	committer *committer.Committer,
	publisher contracts.OrderEventPublisher,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		orders:    orders,
		committer: committer,
		publisher: publisher,
		clock:     clock,
	}
}

// Execute validates and applies the transition, then publishes a status
// event. The event is best-effort: the transition is already committed,
// a publish failure is logged and swallowed.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	target, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		return err
	}

	var from domain.OrderStatus
	err = i.committer.ApplyWithReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		current, err := i.orders.GetStatusInTxn(ctx, txn, req.OrderID)
		if err != nil {
			return err
		}
		if !current.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current, target)
		}
		from = current

		return txn.BufferWrite([]*spanner.Mutation{
			i.orders.UpdateStatusMut(req.OrderID, target),
		})
	})
	if err != nil {
		return err
	}

	if i.publisher != nil {
		event := &contracts.OrderStatusEvent{
			OrderID:    req.OrderID,
			FromStatus: string(from),
			ToStatus:   string(target),
			OccurredAt: i.clock.Now(),
		}
		if err := i.publisher.PublishStatusChanged(ctx, event); err != nil {
			log.Printf("failed to publish status event for order %s: %v", req.OrderID, err)
		}
	}

	return nil
}

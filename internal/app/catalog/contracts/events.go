package contracts

import (
	"context"
	"time"
)

// OrderStatusEvent is published whenever an order moves to a new status.
type OrderStatusEvent struct {
	OrderID    string    `json:"orderId"`
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OrderEventPublisher pushes order lifecycle events to downstream
// consumers (notifications, analytics). Publishing happens after the
// database commit; a publish failure never rolls the transition back.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event *OrderStatusEvent) error
}

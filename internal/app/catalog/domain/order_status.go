package domain

// OrderStatus represents the lifecycle status of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusInProcess  OrderStatus = "inProcess"
	StatusInShipping OrderStatus = "inShipping"
	StatusDelivered  OrderStatus = "delivered"
	StatusRejected   OrderStatus = "rejected"
)

// ParseOrderStatus validates a raw status string.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch OrderStatus(raw) {
	case StatusPending, StatusConfirmed, StatusInProcess, StatusInShipping, StatusDelivered, StatusRejected:
		return OrderStatus(raw), nil
	}
	return "", ErrUnknownStatus
}

// IsTerminal reports whether no further transitions are allowed.
// Delivered is the only status counted by sales aggregation; rejected
// is the side-branch terminal.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusRejected
}

// next holds the single forward step of the fulfilment chain.
var next = map[OrderStatus]OrderStatus{
	StatusPending:    StatusConfirmed,
	StatusConfirmed:  StatusInProcess,
	StatusInProcess:  StatusInShipping,
	StatusInShipping: StatusDelivered,
}

// CanTransitionTo reports whether the admin-driven transition s -> target
// is legal: one step forward along the fulfilment chain, or rejection
// from any non-terminal status.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if target == StatusRejected {
		return true
	}
	return next[s] == target
}

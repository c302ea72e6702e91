package domain

import (
	"time"
)

// OrderItem is the checkout-time snapshot of a cart line. Genre and
// brand are copied here so sales aggregation can read them without a
// live product lookup; category deliberately is not (see the category
// stats query).
type OrderItem struct {
	ProductID string
	Title     string
	Image     string
	Price     *Money
	Quantity  int64
	Genre     string
	Brand     string
}

// AddressInfo is the delivery address captured at checkout.
type AddressInfo struct {
	AddressID string
	Address   string
	City      string
	Pincode   string
	Phone     string
	Notes     string
}

// Order is the aggregate root for a placed order. Orders are created at
// checkout and only their status changes afterwards.
type Order struct {
	id            string
	userID        string
	items         []OrderItem
	address       AddressInfo
	status        OrderStatus
	paymentMethod string
	paymentStatus string
	totalAmount   *Money
	orderDate     time.Time
}

// NewOrder captures a cash-on-delivery order. The total amount is
// computed server-side from the snapshots, never taken from the client.
func NewOrder(id, userID string, items []OrderItem, address AddressInfo, paymentMethod string, now time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	total := ZeroMoney()
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if item.Price == nil || item.Price.IsNegative() {
			return nil, ErrInvalidPrice
		}
		total = total.Add(item.Price.MulInt(item.Quantity))
	}

	return &Order{
		id:            id,
		userID:        userID,
		items:         items,
		address:       address,
		status:        StatusPending,
		paymentMethod: paymentMethod,
		paymentStatus: "pending",
		totalAmount:   total,
		orderDate:     now,
	}, nil
}

// Getters
func (o *Order) ID() string            { return o.id }
func (o *Order) UserID() string        { return o.userID }
func (o *Order) Items() []OrderItem    { return o.items }
func (o *Order) Address() AddressInfo  { return o.address }
func (o *Order) Status() OrderStatus   { return o.status }
func (o *Order) PaymentMethod() string { return o.paymentMethod }
func (o *Order) PaymentStatus() string { return o.paymentStatus }
func (o *Order) TotalAmount() *Money   { return o.totalAmount.Copy() }
func (o *Order) OrderDate() time.Time  { return o.orderDate }

package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// CartItem is the JSON shape of one order line, both on the wire and in
// the orders table's cart_items column. Genre and brand are snapshots
// taken at checkout; category deliberately is not.
type CartItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
	Genre     string  `json:"genre,omitempty"`
	Brand     string  `json:"brand,omitempty"`
}

// AddressDTO is the delivery address captured at checkout.
type AddressDTO struct {
	AddressID string `json:"addressId,omitempty"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Pincode   string `json:"pincode"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes,omitempty"`
}

// OrderDTO is a data transfer object for order queries.
type OrderDTO struct {
	OrderID       string     `json:"id"`
	UserID        string     `json:"userId"`
	CartItems     []CartItem `json:"cartItems"`
	AddressInfo   AddressDTO `json:"addressInfo"`
	OrderStatus   string     `json:"orderStatus"`
	PaymentMethod string     `json:"paymentMethod"`
	PaymentStatus string     `json:"paymentStatus"`
	TotalAmount   float64    `json:"totalAmount"`
	OrderDate     time.Time  `json:"orderDate"`
}

// OrderReadModel defines the read interface over order history.
type OrderReadModel interface {
	// GetOrderByID retrieves a single order.
	GetOrderByID(ctx context.Context, orderID string) (*OrderDTO, error)

	// ListOrdersByUser retrieves a user's order history, newest first.
	ListOrdersByUser(ctx context.Context, userID string) ([]*OrderDTO, error)

	// ListOrders retrieves all orders, newest first (admin view).
	ListOrders(ctx context.Context) ([]*OrderDTO, error)

	// ListOrdersByStatus retrieves all orders in the given status.
	// Sales aggregation calls this with "delivered" and nothing else.
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*OrderDTO, error)
}

// OrderRepository defines the write interface for orders.
type OrderRepository interface {
	// InsertMut creates a mutation for inserting a new order.
	InsertMut(order *domain.Order) (*spanner.Mutation, error)

	// UpdateStatusMut creates a mutation moving an order to a new status.
	UpdateStatusMut(orderID string, status domain.OrderStatus) *spanner.Mutation

	// GetStatusInTxn reads an order's current status within a read-write
	// transaction, so a transition check and the status write see the
	// same row.
	GetStatusInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, orderID string) (domain.OrderStatus, error)
}

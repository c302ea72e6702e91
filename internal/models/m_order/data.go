package m_order

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the orders table.
// CartItems and AddressInfo are JSON columns. Each cart item is a
// checkout-time snapshot: {productId, title, image, price, quantity,
// genre, brand}. Category is deliberately not snapshotted; category
// aggregation resolves it against the live product record.
type Data struct {
	OrderID       string           `spanner:"order_id"`
	UserID        string           `spanner:"user_id"`
	CartItems     spanner.NullJSON `spanner:"cart_items"`
	AddressInfo   spanner.NullJSON `spanner:"address_info"`
	OrderStatus   string           `spanner:"order_status"`
	PaymentMethod string           `spanner:"payment_method"`
	PaymentStatus string           `spanner:"payment_status"`
	TotalAmount   big.Rat          `spanner:"total_amount"`
	OrderDate     time.Time        `spanner:"order_date"`
	UpdatedAt     time.Time        `spanner:"updated_at"`
}

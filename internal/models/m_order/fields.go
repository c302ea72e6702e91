package m_order

// Field name constants for the orders table.
const (
	TableName = "orders"

	OrderID       = "order_id"
	UserID        = "user_id"
	CartItems     = "cart_items"
	AddressInfo   = "address_info"
	OrderStatus   = "order_status"
	PaymentMethod = "payment_method"
	PaymentStatus = "payment_status"
	TotalAmount   = "total_amount"
	OrderDate     = "order_date"
	UpdatedAt     = "updated_at"
)

// AllColumns lists every column of the orders table in declaration order.
var AllColumns = []string{
	OrderID,
	UserID,
	CartItems,
	AddressInfo,
	OrderStatus,
	PaymentMethod,
	PaymentStatus,
	TotalAmount,
	OrderDate,
	UpdatedAt,
}

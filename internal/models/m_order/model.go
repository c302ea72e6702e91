package m_order

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the orders table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an order.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		AllColumns,
		[]interface{}{
			data.OrderID,
			data.UserID,
			data.CartItems,
			data.AddressInfo,
			data.OrderStatus,
			data.PaymentMethod,
			data.PaymentStatus,
			data.TotalAmount,
			data.OrderDate,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateStatusMut creates a Spanner mutation that moves an order to a
// new status. Transition validation happens in the domain layer, not here.
func (m *Model) UpdateStatusMut(orderID, status string) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{OrderID, OrderStatus, UpdatedAt},
		[]interface{}{orderID, status, spanner.CommitTimestamp},
	)
}

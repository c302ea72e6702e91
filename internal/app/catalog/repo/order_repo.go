package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_order"
)

// OrderRepo implements OrderRepository for Spanner.
type OrderRepo struct {
	client *spanner.Client
	model  *m_order.Model
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(client *spanner.Client) contracts.OrderRepository {
	return &OrderRepo{
		client: client,
		model:  m_order.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new order.
func (r *OrderRepo) InsertMut(order *domain.Order) (*spanner.Mutation, error) {
	items := make([]contracts.CartItem, 0, len(order.Items()))
	for _, item := range order.Items() {
		items = append(items, contracts.CartItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Image:     item.Image,
			Price:     item.Price.Float64(),
			Quantity:  item.Quantity,
			Genre:     item.Genre,
			Brand:     item.Brand,
		})
	}

	address := order.Address()
	data := &m_order.Data{
		OrderID: order.ID(),
		UserID:  order.UserID(),
		CartItems: spanner.NullJSON{
			Value: items,
			Valid: true,
		},
		AddressInfo: spanner.NullJSON{
			Value: contracts.AddressDTO{
				AddressID: address.AddressID,
				Address:   address.Address,
				City:      address.City,
				Pincode:   address.Pincode,
				Phone:     address.Phone,
				Notes:     address.Notes,
			},
			Valid: true,
		},
		OrderStatus:   string(order.Status()),
		PaymentMethod: order.PaymentMethod(),
		PaymentStatus: order.PaymentStatus(),
		TotalAmount:   *order.TotalAmount().Rat(),
		OrderDate:     order.OrderDate(),
	}

	return r.model.InsertMut(data), nil
}

// UpdateStatusMut creates a mutation moving an order to a new status.
func (r *OrderRepo) UpdateStatusMut(orderID string, status domain.OrderStatus) *spanner.Mutation {
	return r.model.UpdateStatusMut(orderID, string(status))
}

// GetStatusInTxn reads an order's current status within a read-write
// transaction.
func (r *OrderRepo) GetStatusInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, orderID string) (domain.OrderStatus, error) {
	row, err := txn.ReadRow(ctx, m_order.TableName, spanner.Key{orderID}, []string{m_order.OrderStatus})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return "", domain.ErrOrderNotFound
		}
		return "", fmt.Errorf("failed to read order status: %w", err)
	}

	var raw string
	if err := row.Column(0, &raw); err != nil {
		return "", fmt.Errorf("failed to parse order status: %w", err)
	}

	return domain.ParseOrderStatus(raw)
}

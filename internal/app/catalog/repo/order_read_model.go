package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_order"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// OrderReadModelImpl implements OrderReadModel for Spanner.
type OrderReadModelImpl struct {
	client *spanner.Client
}

// NewOrderReadModel creates a new OrderReadModel implementation.
func NewOrderReadModel(client *spanner.Client) contracts.OrderReadModel {
	return &OrderReadModelImpl{
		client: client,
	}
}

// GetOrderByID retrieves a single order.
func (rm *OrderReadModelImpl) GetOrderByID(ctx context.Context, orderID string) (*contracts.OrderDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_order.TableName, spanner.Key{orderID}, m_order.AllColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to read order: %w", err)
	}

	var data m_order.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse order: %w", err)
	}

	return orderDataToDTO(&data)
}

// ListOrdersByUser retrieves a user's order history, newest first.
func (rm *OrderReadModelImpl) ListOrdersByUser(ctx context.Context, userID string) ([]*contracts.OrderDTO, error) {
	stmt := query.From(m_order.TableName).
		Select(m_order.AllColumns...).
		Where(query.Eq(m_order.UserID, userID)).
		OrderBy(m_order.OrderDate, query.Desc).
		Build()

	return rm.queryOrders(ctx, stmt)
}

// ListOrders retrieves all orders, newest first (admin view).
func (rm *OrderReadModelImpl) ListOrders(ctx context.Context) ([]*contracts.OrderDTO, error) {
	stmt := query.From(m_order.TableName).
		Select(m_order.AllColumns...).
		OrderBy(m_order.OrderDate, query.Desc).
		Build()

	return rm.queryOrders(ctx, stmt)
}

// ListOrdersByStatus retrieves all orders in the given status, oldest
// first. The stable ordering makes the aggregation queries' first-seen
// tie-break deterministic.
func (rm *OrderReadModelImpl) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*contracts.OrderDTO, error) {
	stmt := query.From(m_order.TableName).
		Select(m_order.AllColumns...).
		Where(query.Eq(m_order.OrderStatus, string(status))).
		OrderBy(m_order.OrderDate, query.Asc).
		Build()

	return rm.queryOrders(ctx, stmt)
}

// queryOrders executes an orders statement and converts rows to DTOs.
func (rm *OrderReadModelImpl) queryOrders(ctx context.Context, stmt spanner.Statement) ([]*contracts.OrderDTO, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	orders := make([]*contracts.OrderDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate orders: %w", err)
		}

		var data m_order.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse order: %w", err)
		}

		dto, err := orderDataToDTO(&data)
		if err != nil {
			return nil, err
		}
		orders = append(orders, dto)
	}

	return orders, nil
}

// orderDataToDTO converts database Data to an OrderDTO, decoding the
// JSON columns into their typed shapes.
func orderDataToDTO(data *m_order.Data) (*contracts.OrderDTO, error) {
	total, _ := data.TotalAmount.Float64()

	dto := &contracts.OrderDTO{
		OrderID:       data.OrderID,
		UserID:        data.UserID,
		CartItems:     []contracts.CartItem{},
		OrderStatus:   data.OrderStatus,
		PaymentMethod: data.PaymentMethod,
		PaymentStatus: data.PaymentStatus,
		TotalAmount:   total,
		OrderDate:     data.OrderDate,
	}

	if data.CartItems.Valid {
		if err := decodeJSONColumn(data.CartItems, &dto.CartItems); err != nil {
			return nil, fmt.Errorf("failed to decode cart items for order %s: %w", data.OrderID, err)
		}
	}
	if data.AddressInfo.Valid {
		if err := decodeJSONColumn(data.AddressInfo, &dto.AddressInfo); err != nil {
			return nil, fmt.Errorf("failed to decode address for order %s: %w", data.OrderID, err)
		}
	}

	return dto, nil
}

// decodeJSONColumn converts a Spanner JSON column value into dst.
// The client decodes JSON columns to interface{}, so typed access goes
// through one marshal/unmarshal round trip.
func decodeJSONColumn(col spanner.NullJSON, dst interface{}) error {
	raw, err := json.Marshal(col.Value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

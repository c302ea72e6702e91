package testutil

import (
	"context"
	"math/big"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/models/m_order"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/models/m_taxonomy"
)

// ProductFixture describes a test product. Zero values are filled with
// usable defaults by CreateTestProduct.
type ProductFixture struct {
	Title      string
	Category   string
	Brand      string
	Genre      string
	Price      float64
	SalePrice  float64
	TotalStock int64
}

// CreateTestProduct inserts a product directly and returns its id.
func CreateTestProduct(t *testing.T, client *spanner.Client, fixture ProductFixture) string {
	t.Helper()

	if fixture.Title == "" {
		fixture.Title = "Test Product"
	}
	if fixture.Category == "" {
		fixture.Category = "Books"
	}
	if fixture.Price == 0 {
		fixture.Price = 10
	}

	ctx := context.Background()
	productID := uuid.New().String()

	model := m_product.NewModel()
	data := &m_product.Data{
		ProductID:   productID,
		Title:       fixture.Title,
		Description: "test product",
		Category:    fixture.Category,
		Brand:       fixture.Brand,
		Genre:       fixture.Genre,
		Price:       *new(big.Rat).SetFloat64(fixture.Price),
		SalePrice:   *new(big.Rat).SetFloat64(fixture.SalePrice),
		TotalStock:  fixture.TotalStock,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// CreateTestTaxonomy inserts a taxonomy entry directly and returns its id.
func CreateTestTaxonomy(t *testing.T, client *spanner.Client, kind, name string) string {
	t.Helper()

	ctx := context.Background()
	taxonomyID := uuid.New().String()

	model := m_taxonomy.NewModel()
	data := &m_taxonomy.Data{
		Kind:       kind,
		TaxonomyID: taxonomyID,
		Name:       name,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test taxonomy entry")

	return taxonomyID
}

// CreateTestOrder inserts an order with the given status and cart items
// directly, bypassing checkout, and returns its id.
func CreateTestOrder(t *testing.T, client *spanner.Client, status string, items []contracts.CartItem) string {
	t.Helper()

	ctx := context.Background()
	orderID := uuid.New().String()

	total := new(big.Rat)
	for _, item := range items {
		price := new(big.Rat).SetFloat64(item.Price)
		total.Add(total, price.Mul(price, new(big.Rat).SetInt64(item.Quantity)))
	}

	model := m_order.NewModel()
	data := &m_order.Data{
		OrderID:       orderID,
		UserID:        "test-user",
		CartItems:     spanner.NullJSON{Value: items, Valid: true},
		AddressInfo:   spanner.NullJSON{Value: contracts.AddressDTO{Address: "1 Test St", City: "Testville"}, Valid: true},
		OrderStatus:   status,
		PaymentMethod: "cod",
		PaymentStatus: "pending",
		TotalAmount:   *total,
		OrderDate:     time.Now(),
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test order")

	return orderID
}

// GetProductRow reads a product row back for verification.
func GetProductRow(t *testing.T, client *spanner.Client, productID string) *m_product.Data {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.AllColumns)
	require.NoError(t, err, "failed to get product by id")

	var data m_product.Data
	require.NoError(t, row.ToStruct(&data), "failed to parse product data")

	return &data
}

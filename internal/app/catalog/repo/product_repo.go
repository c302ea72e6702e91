package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client *spanner.Client
	model  *m_product.Model
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client) contracts.ProductRepository {
	return &ProductRepo{
		client: client,
		model:  m_product.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) (*spanner.Mutation, error) {
	data := &m_product.Data{
		ProductID:     product.ID(),
		Title:         product.Title(),
		Description:   product.Description(),
		Image:         product.Image(),
		Category:      product.Category(),
		Brand:         product.Brand(),
		Genre:         product.Genre(),
		Price:         *product.Price().Rat(),
		SalePrice:     *product.SalePrice().Rat(),
		TotalStock:    product.TotalStock(),
		AverageReview: product.AverageReview(),
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut creates a mutation for updating a product (only dirty fields).
func (r *ProductRepo) UpdateMut(product *domain.Product) (*spanner.Mutation, error) {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil, nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldTitle) {
		updates[m_product.Title] = product.Title()
	}
	if changes.Dirty(domain.FieldDescription) {
		updates[m_product.Description] = product.Description()
	}
	if changes.Dirty(domain.FieldImage) {
		updates[m_product.Image] = product.Image()
	}
	if changes.Dirty(domain.FieldCategory) {
		updates[m_product.Category] = product.Category()
	}
	if changes.Dirty(domain.FieldBrand) {
		updates[m_product.Brand] = product.Brand()
	}
	if changes.Dirty(domain.FieldGenre) {
		updates[m_product.Genre] = product.Genre()
	}
	if changes.Dirty(domain.FieldPrice) {
		updates[m_product.Price] = *product.Price().Rat()
	}
	if changes.Dirty(domain.FieldSalePrice) {
		updates[m_product.SalePrice] = *product.SalePrice().Rat()
	}
	if changes.Dirty(domain.FieldTotalStock) {
		updates[m_product.TotalStock] = product.TotalStock()
	}
	if changes.Dirty(domain.FieldAverageReview) {
		updates[m_product.AverageReview] = product.AverageReview()
	}

	return r.model.UpdateMut(product.ID(), updates), nil
}

// DeleteMut creates a mutation for deleting a product.
func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return r.model.DeleteMut(productID)
}

// rowReader is the read surface shared by single-use read-only
// transactions and read-write transactions.
type rowReader interface {
	ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error)
}

// GetByID retrieves a product by ID, reconstructing the domain aggregate.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	return r.getByID(ctx, r.client.Single(), productID)
}

// GetByIDInTxn retrieves a product within a read-write transaction.
func (r *ProductRepo) GetByIDInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, productID string) (*domain.Product, error) {
	return r.getByID(ctx, txn, productID)
}

func (r *ProductRepo) getByID(ctx context.Context, reader rowReader, productID string) (*domain.Product, error) {
	row, err := reader.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.AllColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	price := data.Price
	salePrice := data.SalePrice
	return domain.ReconstructProduct(
		data.ProductID,
		data.Title,
		data.Description,
		data.Image,
		data.Category,
		data.Brand,
		data.Genre,
		domain.NewMoneyFromRat(&price),
		domain.NewMoneyFromRat(&salePrice),
		data.TotalStock,
		data.AverageReview,
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}

package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// CatalogReadModelImpl implements CatalogReadModel for Spanner.
type CatalogReadModelImpl struct {
	client *spanner.Client
}

// NewCatalogReadModel creates a new CatalogReadModel implementation.
func NewCatalogReadModel(client *spanner.Client) contracts.CatalogReadModel {
	return &CatalogReadModelImpl{
		client: client,
	}
}

// GetProductByID retrieves a product DTO by ID.
func (rm *CatalogReadModelImpl) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.AllColumns)
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

	return productDataToDTO(&data), nil
}

// ListProducts retrieves the full set of products matching the filter.
// Facet value slices are matched verbatim with IN; name-or-id expansion
// happens in the query layer, not here.
func (rm *CatalogReadModelImpl) ListProducts(ctx context.Context, filter *contracts.ProductFilter) ([]*contracts.ProductDTO, error) {
	builder := query.From(m_product.TableName).Select(m_product.AllColumns...)

	if len(filter.Categories) > 0 {
		builder = builder.Where(query.In(m_product.Category, filter.Categories))
	}
	if len(filter.Brands) > 0 {
		builder = builder.Where(query.In(m_product.Brand, filter.Brands))
	}
	if len(filter.Genres) > 0 {
		builder = builder.Where(query.In(m_product.Genre, filter.Genres))
	}

	switch filter.OrderBy {
	case contracts.OrderPriceDesc:
		builder = builder.OrderBy(m_product.Price, query.Desc)
	case contracts.OrderTitleAsc:
		builder = builder.OrderBy(m_product.Title, query.Asc)
	case contracts.OrderTitleDesc:
		builder = builder.OrderBy(m_product.Title, query.Desc)
	default:
		builder = builder.OrderBy(m_product.Price, query.Asc)
	}

	return rm.queryProducts(ctx, builder.Build())
}

// SearchProducts retrieves products whose title, brand, genre or category
// contains the keyword, case-insensitively. limit <= 0 means unlimited.
func (rm *CatalogReadModelImpl) SearchProducts(ctx context.Context, keyword string, limit int64) ([]*contracts.ProductDTO, error) {
	builder := query.From(m_product.TableName).
		Select(m_product.AllColumns...).
		Where(query.Or(
			query.ContainsFold(m_product.Title, keyword),
			query.ContainsFold(m_product.Brand, keyword),
			query.ContainsFold(m_product.Genre, keyword),
			query.ContainsFold(m_product.Category, keyword),
		))

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	return rm.queryProducts(ctx, builder.Build())
}

// GetProductsByIDs retrieves the given products keyed by id.
// Missing ids are simply absent from the result.
func (rm *CatalogReadModelImpl) GetProductsByIDs(ctx context.Context, ids []string) (map[string]*contracts.ProductDTO, error) {
	result := make(map[string]*contracts.ProductDTO, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	stmt := query.From(m_product.TableName).
		Select(m_product.AllColumns...).
		Where(query.In(m_product.ProductID, ids)).
		Build()

	products, err := rm.queryProducts(ctx, stmt)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		result[p.ProductID] = p
	}
	return result, nil
}

// ListLowStock retrieves products with 0 < total_stock <= threshold,
// ascending by stock. Zero stock is out-of-stock, a separate view.
func (rm *CatalogReadModelImpl) ListLowStock(ctx context.Context, threshold int64) ([]*contracts.ProductDTO, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.AllColumns...).
		Where(query.Gt(m_product.TotalStock, int64(0))).
		Where(query.Lte(m_product.TotalStock, threshold)).
		OrderBy(m_product.TotalStock, query.Asc).
		Build()

	return rm.queryProducts(ctx, stmt)
}

// CountProducts returns the current catalog size.
func (rm *CatalogReadModelImpl) CountProducts(ctx context.Context) (int64, error) {
	stmt := query.From(m_product.TableName).Count().Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	var count int64
	if err := row.Column(0, &count); err != nil {
		return 0, fmt.Errorf("failed to parse product count: %w", err)
	}
	return count, nil
}

// queryProducts executes a products statement and converts rows to DTOs.
func (rm *CatalogReadModelImpl) queryProducts(ctx context.Context, stmt spanner.Statement) ([]*contracts.ProductDTO, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]*contracts.ProductDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}
		products = append(products, productDataToDTO(&data))
	}

	return products, nil
}

// productDataToDTO converts database Data to a ProductDTO.
func productDataToDTO(data *m_product.Data) *contracts.ProductDTO {
	price, _ := data.Price.Float64()
	salePrice, _ := data.SalePrice.Float64()

	return &contracts.ProductDTO{
		ProductID:     data.ProductID,
		Title:         data.Title,
		Description:   data.Description,
		Image:         data.Image,
		Category:      data.Category,
		Brand:         data.Brand,
		Genre:         data.Genre,
		Price:         price,
		SalePrice:     salePrice,
		TotalStock:    data.TotalStock,
		AverageReview: data.AverageReview,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

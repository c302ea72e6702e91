package e2e

import (
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/create_product"
)

// ProductBuilder helps create products for tests with a fluent interface
type ProductBuilder struct {
	title      string
	category   string
	brand      string
	genre      string
	price      float64
	salePrice  float64
	totalStock int64
}

// NewProductBuilder creates a new builder with default values
func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		title:      "Test Product",
		category:   "Books",
		brand:      "Test Brand",
		genre:      "Test Genre",
		price:      10.00,
		totalStock: 20,
	}
}

// WithTitle sets the product title
func (b *ProductBuilder) WithTitle(title string) *ProductBuilder {
	b.title = title
	return b
}

// WithCategory sets the product category
func (b *ProductBuilder) WithCategory(category string) *ProductBuilder {
	b.category = category
	return b
}

// WithBrand sets the product brand
func (b *ProductBuilder) WithBrand(brand string) *ProductBuilder {
	b.brand = brand
	return b
}

// WithGenre sets the product genre
func (b *ProductBuilder) WithGenre(genre string) *ProductBuilder {
	b.genre = genre
	return b
}

// WithPrice sets the regular price
func (b *ProductBuilder) WithPrice(price float64) *ProductBuilder {
	b.price = price
	return b
}

// WithSalePrice sets the sale price; zero means not on sale
func (b *ProductBuilder) WithSalePrice(salePrice float64) *ProductBuilder {
	b.salePrice = salePrice
	return b
}

// WithStock sets the stock level
func (b *ProductBuilder) WithStock(totalStock int64) *ProductBuilder {
	b.totalStock = totalStock
	return b
}

// Build creates the create_product.Request
func (b *ProductBuilder) Build() *create_product.Request {
	return &create_product.Request{
		Title:      b.title,
		Category:   b.category,
		Brand:      b.brand,
		Genre:      b.genre,
		Price:      domain.NewMoneyFromFloat(b.price),
		SalePrice:  domain.NewMoneyFromFloat(b.salePrice),
		TotalStock: b.totalStock,
	}
}

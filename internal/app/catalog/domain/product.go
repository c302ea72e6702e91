package domain

import (
	"time"
)

// Field names for change tracking
const (
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldImage         = "image"
	FieldCategory      = "category"
	FieldBrand         = "brand"
	FieldGenre         = "genre"
	FieldPrice         = "price"
	FieldSalePrice     = "sale_price"
	FieldTotalStock    = "total_stock"
	FieldAverageReview = "average_review"
)

// Product is the aggregate root for catalog items.
// The category, brand and genre fields are taxonomy references stored as
// strings; historically rows carry either the taxonomy display name or
// its id, so nothing in the aggregate assumes one form.
type Product struct {
	id            string
	title         string
	description   string
	image         string
	category      string
	brand         string
	genre         string
	price         *Money
	salePrice     *Money
	totalStock    int64
	averageReview float64
	createdAt     time.Time
	updatedAt     time.Time

	// Change tracking for optimized repository updates
	changes *ChangeTracker
}

// NewProduct creates a new Product aggregate (for creation).
func NewProduct(id, title, description, image, category, brand, genre string, price, salePrice *Money, totalStock int64, averageReview float64, now time.Time) (*Product, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if price == nil || price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if salePrice == nil {
		salePrice = ZeroMoney()
	}
	if salePrice.IsNegative() {
		return nil, ErrInvalidPrice
	}
	// A positive sale price is only meaningful below the regular price;
	// zero means "no sale".
	if salePrice.IsPositive() && salePrice.Cmp(price) >= 0 {
		return nil, ErrInvalidSale
	}
	if totalStock < 0 {
		return nil, ErrInvalidStock
	}
	if averageReview < 0 || averageReview > 5 {
		return nil, ErrInvalidReview
	}

	p := &Product{
		id:            id,
		title:         title,
		description:   description,
		image:         image,
		category:      category,
		brand:         brand,
		genre:         genre,
		price:         price.Copy(),
		salePrice:     salePrice.Copy(),
		totalStock:    totalStock,
		averageReview: averageReview,
		createdAt:     now,
		updatedAt:     now,
		changes:       NewChangeTracker(),
	}

	// Mark all fields as dirty for new product
	p.changes.MarkDirty(FieldTitle)
	p.changes.MarkDirty(FieldDescription)
	p.changes.MarkDirty(FieldImage)
	p.changes.MarkDirty(FieldCategory)
	p.changes.MarkDirty(FieldBrand)
	p.changes.MarkDirty(FieldGenre)
	p.changes.MarkDirty(FieldPrice)
	p.changes.MarkDirty(FieldSalePrice)
	p.changes.MarkDirty(FieldTotalStock)
	p.changes.MarkDirty(FieldAverageReview)

	return p, nil
}

// ReconstructProduct reconstitutes a Product from the database.
func ReconstructProduct(id, title, description, image, category, brand, genre string, price, salePrice *Money, totalStock int64, averageReview float64, createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:            id,
		title:         title,
		description:   description,
		image:         image,
		category:      category,
		brand:         brand,
		genre:         genre,
		price:         price,
		salePrice:     salePrice,
		totalStock:    totalStock,
		averageReview: averageReview,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		changes:       NewChangeTracker(), // Start with clean slate
	}
}

// Getters
func (p *Product) ID() string             { return p.id }
func (p *Product) Title() string          { return p.title }
func (p *Product) Description() string    { return p.description }
func (p *Product) Image() string          { return p.image }
func (p *Product) Category() string       { return p.category }
func (p *Product) Brand() string          { return p.brand }
func (p *Product) Genre() string          { return p.genre }
func (p *Product) Price() *Money          { return p.price.Copy() }
func (p *Product) SalePrice() *Money      { return p.salePrice.Copy() }
func (p *Product) TotalStock() int64      { return p.totalStock }
func (p *Product) AverageReview() float64 { return p.averageReview }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() time.Time   { return p.updatedAt }
func (p *Product) Changes() *ChangeTracker { return p.changes }

// OnSale reports whether the product currently carries a sale price.
func (p *Product) OnSale() bool {
	return p.salePrice.IsPositive()
}

// SetTitle updates the product title.
func (p *Product) SetTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if title != p.title {
		p.title = title
		p.changes.MarkDirty(FieldTitle)
	}
	return nil
}

// SetDescription updates the product description.
func (p *Product) SetDescription(description string) {
	if description != p.description {
		p.description = description
		p.changes.MarkDirty(FieldDescription)
	}
}

// SetImage updates the product image reference.
func (p *Product) SetImage(image string) {
	if image != p.image {
		p.image = image
		p.changes.MarkDirty(FieldImage)
	}
}

// SetCategory updates the category taxonomy reference.
func (p *Product) SetCategory(category string) {
	if category != p.category {
		p.category = category
		p.changes.MarkDirty(FieldCategory)
	}
}

// SetBrand updates the brand taxonomy reference.
func (p *Product) SetBrand(brand string) {
	if brand != p.brand {
		p.brand = brand
		p.changes.MarkDirty(FieldBrand)
	}
}

// SetGenre updates the genre taxonomy reference.
func (p *Product) SetGenre(genre string) {
	if genre != p.genre {
		p.genre = genre
		p.changes.MarkDirty(FieldGenre)
	}
}

// SetPrice updates the regular price. The sale price invariant is
// re-checked against the new price.
func (p *Product) SetPrice(price *Money) error {
	if price == nil || price.IsNegative() {
		return ErrInvalidPrice
	}
	if p.salePrice.IsPositive() && p.salePrice.Cmp(price) >= 0 {
		return ErrInvalidSale
	}
	p.price = price.Copy()
	p.changes.MarkDirty(FieldPrice)
	return nil
}

// SetSalePrice updates the sale price. Zero clears the sale.
func (p *Product) SetSalePrice(salePrice *Money) error {
	if salePrice == nil || salePrice.IsNegative() {
		return ErrInvalidPrice
	}
	if salePrice.IsPositive() && salePrice.Cmp(p.price) >= 0 {
		return ErrInvalidSale
	}
	p.salePrice = salePrice.Copy()
	p.changes.MarkDirty(FieldSalePrice)
	return nil
}

// SetTotalStock updates the stock level.
func (p *Product) SetTotalStock(totalStock int64) error {
	if totalStock < 0 {
		return ErrInvalidStock
	}
	if totalStock != p.totalStock {
		p.totalStock = totalStock
		p.changes.MarkDirty(FieldTotalStock)
	}
	return nil
}

// SetAverageReview updates the review average.
func (p *Product) SetAverageReview(averageReview float64) error {
	if averageReview < 0 || averageReview > 5 {
		return ErrInvalidReview
	}
	if averageReview != p.averageReview {
		p.averageReview = averageReview
		p.changes.MarkDirty(FieldAverageReview)
	}
	return nil
}

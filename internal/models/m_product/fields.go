package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID     = "product_id"
	Title         = "title"
	Description   = "description"
	Image         = "image"
	Category      = "category"
	Brand         = "brand"
	Genre         = "genre"
	Price         = "price"
	SalePrice     = "sale_price"
	TotalStock    = "total_stock"
	AverageReview = "average_review"
	CreatedAt     = "created_at"
	UpdatedAt     = "updated_at"
)

// AllColumns lists every column of the products table in declaration order.
var AllColumns = []string{
	ProductID,
	Title,
	Description,
	Image,
	Category,
	Brand,
	Genre,
	Price,
	SalePrice,
	TotalStock,
	AverageReview,
	CreatedAt,
	UpdatedAt,
}

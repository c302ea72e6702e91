package m_product

import (
	"math/big"
	"time"
)

// Data represents the database model for the products table.
// Price and SalePrice are NUMERIC columns; the Spanner client maps
// those to big.Rat. The category, brand and genre columns hold either
// a taxonomy display name or a taxonomy id (legacy rows predate the
// taxonomy tables), so readers must not assume one form.
type Data struct {
	ProductID     string    `spanner:"product_id"`
	Title         string    `spanner:"title"`
	Description   string    `spanner:"description"`
	Image         string    `spanner:"image"`
	Category      string    `spanner:"category"`
	Brand         string    `spanner:"brand"`
	Genre         string    `spanner:"genre"`
	Price         big.Rat   `spanner:"price"`
	SalePrice     big.Rat   `spanner:"sale_price"`
	TotalStock    int64     `spanner:"total_stock"`
	AverageReview float64   `spanner:"average_review"`
	CreatedAt     time.Time `spanner:"created_at"`
	UpdatedAt     time.Time `spanner:"updated_at"`
}

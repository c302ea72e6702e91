package contracts

// FacetStat is one row of a genre or category sales ranking, derived on
// demand from delivered orders. Never persisted.
type FacetStat struct {
	Name      string `json:"name"`
	UnitsSold int64  `json:"unitsSold"`
}

// ProductStat is one row of the top-selling-products ranking: the current
// product record with the computed unit count merged on.
type ProductStat struct {
	ProductDTO
	UnitsSold int64 `json:"unitsSold"`
}

// SalesSummary holds the admin dashboard headline numbers.
type SalesSummary struct {
	TotalSales      float64 `json:"totalSales"`
	TotalUnitsSold  int64   `json:"totalUnitsSold"`
	ActiveItemCount int64   `json:"activeItemCount"`
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/low_stock"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/sales_summary"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/top_categories"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/top_genres"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/top_products"
)

// StatsHandler serves the admin dashboard aggregation endpoints.
type StatsHandler struct {
	genres     *top_genres.Query
	categories *top_categories.Query
	products   *top_products.Query
	lowStock   *low_stock.Query
	summary    *sales_summary.Query
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(
	genres *top_genres.Query,
	categories *top_categories.Query,
	products *top_products.Query,
	lowStock *low_stock.Query,
	summary *sales_summary.Query,
) *StatsHandler {
	return &StatsHandler{
		genres:     genres,
		categories: categories,
		products:   products,
		lowStock:   lowStock,
		summary:    summary,
	}
}

// TopGenres handles GET /stats/genres?limit=.
func (h *StatsHandler) TopGenres(w http.ResponseWriter, r *http.Request) {
	stats, err := h.genres.Execute(r.Context(), &top_genres.Request{
		Limit: parseIntParam(r, "limit"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// TopCategories handles GET /stats/categories?limit=.
func (h *StatsHandler) TopCategories(w http.ResponseWriter, r *http.Request) {
	stats, err := h.categories.Execute(r.Context(), &top_categories.Request{
		Limit: parseIntParam(r, "limit"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// TopProducts handles GET /stats/top-products?limit=.
func (h *StatsHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	stats, err := h.products.Execute(r.Context(), &top_products.Request{
		Limit: parseIntParam(r, "limit"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// LowStock handles GET /stats/low-stock?threshold=.
func (h *StatsHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.lowStock.Execute(r.Context(), &low_stock.Request{
		Threshold: int64(parseIntParam(r, "threshold")),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Summary handles GET /stats/summary.
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.summary.Execute(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// parseIntParam reads a positive integer query param. Missing or
// malformed values come back as 0 so the query applies its default.
func parseIntParam(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

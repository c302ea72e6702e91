package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/update_product"
)

// ProductHandler serves the catalog listing and admin CRUD endpoints.
type ProductHandler struct {
	list   *list_products.Query
	get    *get_product.Query
	create *create_product.Interactor
	update *update_product.Interactor
	remove *delete_product.Interactor
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(
	list *list_products.Query,
	get *get_product.Query,
	create *create_product.Interactor,
	update *update_product.Interactor,
	remove *delete_product.Interactor,
) *ProductHandler {
	return &ProductHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		remove: remove,
	}
}

// List handles GET /products. Facet params are comma-separated lists;
// an unknown sortBy silently falls back to price ascending.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	req := &list_products.Request{
		Categories: splitFacet(r.URL.Query().Get("category")),
		Brands:     splitFacet(r.URL.Query().Get("brand")),
		Genres:     splitFacet(r.URL.Query().Get("genre")),
		SortBy:     r.URL.Query().Get("sortBy"),
	}

	products, err := h.list.Execute(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.get.Execute(r.Context(), &get_product.Request{
		ProductID: chi.URLParam(r, "id"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

type productCreateRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	Brand         string  `json:"brand"`
	Genre         string  `json:"genre"`
	Price         float64 `json:"price"`
	SalePrice     float64 `json:"salePrice"`
	TotalStock    int64   `json:"totalStock"`
	AverageReview float64 `json:"averageReview"`
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productCreateRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	productID, err := h.create.Execute(r.Context(), &create_product.Request{
		Title:         req.Title,
		Description:   req.Description,
		Image:         req.Image,
		Category:      req.Category,
		Brand:         req.Brand,
		Genre:         req.Genre,
		Price:         domain.NewMoneyFromFloat(req.Price),
		SalePrice:     domain.NewMoneyFromFloat(req.SalePrice),
		TotalStock:    req.TotalStock,
		AverageReview: req.AverageReview,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": productID})
}

type productUpdateRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Image         *string  `json:"image"`
	Category      *string  `json:"category"`
	Brand         *string  `json:"brand"`
	Genre         *string  `json:"genre"`
	Price         *float64 `json:"price"`
	SalePrice     *float64 `json:"salePrice"`
	TotalStock    *int64   `json:"totalStock"`
	AverageReview *float64 `json:"averageReview"`
}

// Update handles PUT /products/{id}. Absent fields are left unchanged.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req productUpdateRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	update := &update_product.Request{
		ProductID:     chi.URLParam(r, "id"),
		Title:         req.Title,
		Description:   req.Description,
		Image:         req.Image,
		Category:      req.Category,
		Brand:         req.Brand,
		Genre:         req.Genre,
		TotalStock:    req.TotalStock,
		AverageReview: req.AverageReview,
	}
	if req.Price != nil {
		update.Price = domain.NewMoneyFromFloat(*req.Price)
	}
	if req.SalePrice != nil {
		update.SalePrice = domain.NewMoneyFromFloat(*req.SalePrice)
	}

	if err := h.update.Execute(r.Context(), update); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nil)
}

// Delete handles DELETE /products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.remove.Execute(r.Context(), &delete_product.Request{
		ProductID: chi.URLParam(r, "id"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nil)
}

// splitFacet parses a comma-separated facet param. Blank segments are
// dropped so "?brand=" and "?brand=,," both mean "no constraint".
func splitFacet(raw string) []string {
	if raw == "" {
		return nil
	}

	values := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

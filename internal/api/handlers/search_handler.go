package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/search_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/suggest_products"
)

// SearchHandler serves full search and autocomplete.
type SearchHandler struct {
	search  *search_products.Query
	suggest *suggest_products.Query
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(search *search_products.Query, suggest *suggest_products.Query) *SearchHandler {
	return &SearchHandler{
		search:  search,
		suggest: suggest,
	}
}

// Search handles GET /search/{keyword}.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	products, err := h.search.Execute(r.Context(), &search_products.Request{
		Keyword: chi.URLParam(r, "keyword"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Suggest handles GET /autocomplete/{keyword}.
func (h *SearchHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.suggest.Execute(r.Context(), &suggest_products.Request{
		Keyword: chi.URLParam(r, "keyword"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestions)
}

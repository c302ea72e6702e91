package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_taxonomy"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/delete_taxonomy"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/save_taxonomy"
)

// TaxonomyHandler manages the facet vocabularies (categories, brands,
// genres).
type TaxonomyHandler struct {
	list   *list_taxonomy.Query
	save   *save_taxonomy.Interactor
	remove *delete_taxonomy.Interactor
}

// NewTaxonomyHandler creates a new TaxonomyHandler.
func NewTaxonomyHandler(
	list *list_taxonomy.Query,
	save *save_taxonomy.Interactor,
	remove *delete_taxonomy.Interactor,
) *TaxonomyHandler {
	return &TaxonomyHandler{
		list:   list,
		save:   save,
		remove: remove,
	}
}

// List handles GET /taxonomy/{kind}.
func (h *TaxonomyHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.list.Execute(r.Context(), &list_taxonomy.Request{
		Kind: chi.URLParam(r, "kind"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

type taxonomyCreateRequest struct {
	Name string `json:"name"`
}

// Create handles POST /taxonomy/{kind}.
func (h *TaxonomyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req taxonomyCreateRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	taxonomyID, err := h.save.Execute(r.Context(), &save_taxonomy.Request{
		Kind: chi.URLParam(r, "kind"),
		Name: req.Name,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": taxonomyID})
}

// Delete handles DELETE /taxonomy/{kind}/{id}.
func (h *TaxonomyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.remove.Execute(r.Context(), &delete_taxonomy.Request{
		Kind:       chi.URLParam(r, "kind"),
		TaxonomyID: chi.URLParam(r, "id"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nil)
}

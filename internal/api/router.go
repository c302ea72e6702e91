// Package api assembles the HTTP surface of the storefront service.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/light-bringer/storefront-service/internal/api/handlers"
)

// Handlers groups everything the router mounts. Metrics may be nil when
// Redis is not configured; its routes are simply absent then.
type Handlers struct {
	Products *handlers.ProductHandler
	Search   *handlers.SearchHandler
	Stats    *handlers.StatsHandler
	Taxonomy *handlers.TaxonomyHandler
	Orders   *handlers.OrderHandler
	Metrics  *handlers.MetricsHandler
}

// NewRouter builds the chi router with all /api/v1 routes.
func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Products.List)
			r.Post("/", h.Products.Create)
			r.Get("/{id}", h.Products.Get)
			r.Put("/{id}", h.Products.Update)
			r.Delete("/{id}", h.Products.Delete)
		})

		r.Get("/search/{keyword}", h.Search.Search)
		r.Get("/autocomplete/{keyword}", h.Search.Suggest)

		r.Route("/stats", func(r chi.Router) {
			r.Get("/genres", h.Stats.TopGenres)
			r.Get("/categories", h.Stats.TopCategories)
			r.Get("/top-products", h.Stats.TopProducts)
			r.Get("/low-stock", h.Stats.LowStock)
			r.Get("/summary", h.Stats.Summary)
		})

		r.Route("/taxonomy/{kind}", func(r chi.Router) {
			r.Get("/", h.Taxonomy.List)
			r.Post("/", h.Taxonomy.Create)
			r.Delete("/{id}", h.Taxonomy.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.Orders.Create)
			r.Get("/", h.Orders.List)
			r.Get("/user/{userId}", h.Orders.ListByUser)
			r.Get("/{id}", h.Orders.Get)
			r.Put("/{id}/status", h.Orders.UpdateStatus)
		})

		if h.Metrics != nil {
			r.Post("/metrics/visits/{page}", h.Metrics.Increment)
			r.Get("/metrics/visits/{page}", h.Metrics.Get)
		}
	})

	return r
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/storefront-service/internal/counter"
)

// MetricsHandler serves the Redis-backed visit counters.
type MetricsHandler struct {
	counter *counter.Counter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(counter *counter.Counter) *MetricsHandler {
	return &MetricsHandler{counter: counter}
}

// Increment handles POST /metrics/visits/{page}.
func (h *MetricsHandler) Increment(w http.ResponseWriter, r *http.Request) {
	count, err := h.counter.Increment(r.Context(), chi.URLParam(r, "page"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

// Get handles GET /metrics/visits/{page}.
func (h *MetricsHandler) Get(w http.ResponseWriter, r *http.Request) {
	count, err := h.counter.Get(r.Context(), chi.URLParam(r, "page"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

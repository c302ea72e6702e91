package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// writeDomainError maps domain sentinels onto HTTP statuses. Anything
// unrecognized is a storage or infrastructure failure and becomes a 500
// with a generic message; the real error goes to the log only.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrTaxonomyNotFound):
		writeError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidSale),
		errors.Is(err, domain.ErrInvalidStock),
		errors.Is(err, domain.ErrInvalidReview),
		errors.Is(err, domain.ErrUnknownKind),
		errors.Is(err, domain.ErrEmptyTaxonomyName),
		errors.Is(err, domain.ErrDuplicateTaxonomy),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrUnknownStatus),
		errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusUnprocessableEntity, err.Error())

	default:
		log.Printf("request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

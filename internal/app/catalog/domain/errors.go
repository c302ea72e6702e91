package domain

import "errors"

// Domain errors as sentinel values
var (
	// Product errors
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyTitle      = errors.New("product title cannot be empty")
	ErrInvalidPrice    = errors.New("product price cannot be negative")
	ErrInvalidSale     = errors.New("sale price must be below the regular price")
	ErrInvalidStock    = errors.New("total stock cannot be negative")
	ErrInvalidReview   = errors.New("average review must be between 0 and 5")

	// Taxonomy errors
	ErrTaxonomyNotFound  = errors.New("taxonomy entry not found")
	ErrUnknownKind       = errors.New("unknown taxonomy kind")
	ErrEmptyTaxonomyName = errors.New("taxonomy name cannot be empty")
	ErrDuplicateTaxonomy = errors.New("taxonomy name already exists for this kind")

	// Order errors
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyCart         = errors.New("order must contain at least one cart item")
	ErrInvalidQuantity   = errors.New("cart item quantity must be positive")
	ErrInsufficientStock = errors.New("not enough stock for cart item")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("illegal order status transition")
)

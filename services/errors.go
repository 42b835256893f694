package services

import "errors"

var (
	// ErrEmptyCart rejects a checkout with no items before Stripe is called.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidCart rejects a cart that fails schema validation.
	ErrInvalidCart = errors.New("invalid cart")
	// ErrInvalidProduct rejects a product body that fails schema validation.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrOrderNotFound is returned for unknown order/session ids.
	ErrOrderNotFound = errors.New("order not found")
	// ErrProductNotFound is returned for unknown catalog product ids.
	ErrProductNotFound = errors.New("product not found")
)

package services

import "errors"

// Business-rule failures. Controllers map these to HTTP responses; anything
// not in this list is an internal storage fault and must not leak details.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCartNotFound      = errors.New("cart not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrCartEmpty         = errors.New("cart is empty")
)

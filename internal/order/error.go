package order

import "errors"

var (
	ErrNotAuthenticated = errors.New("login required to place an order")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrOrderNotFound    = errors.New("order not found")
)

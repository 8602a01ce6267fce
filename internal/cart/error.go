package cart

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found in catalog")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Package pricing computes order totals from line items.
package pricing

// DeliveryFee is charged on every quote, including an empty cart.
const DeliveryFee = 20.0

// TaxRate is 0.5% of the subtotal.
const TaxRate = 0.005

// Line is the priced portion of a cart or order line.
type Line struct {
	Price    float64
	Quantity int
}

// Quote is the computed price breakdown. Total is truncated toward
// zero, matching the storefront's displayed rupee total.
type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Taxes       float64 `json:"taxes"`
	Total       int64   `json:"total"`
}

// Calculate derives the quote for the given lines. It has no error
// conditions and is defined for empty input.
func Calculate(lines []Line) Quote {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.Price * float64(l.Quantity)
	}

	taxes := subtotal * TaxRate

	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: DeliveryFee,
		Taxes:       taxes,
		Total:       int64(subtotal + DeliveryFee + taxes),
	}
}

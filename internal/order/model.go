package order

import "fooddash-be/internal/cart"

type Status string

// Orders are created in Processing and stay there until cancelled;
// there is no fulfilment pipeline behind this storefront.
const StatusProcessing Status = "Processing"

type Address struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

// Order is an immutable snapshot of the cart at checkout, plus the
// computed totals. UserID is the owner's email; the ledger itself is
// shared across users and filtered on read.
type Order struct {
	ID              int64       `json:"id"`
	InvoiceNo       string      `json:"invoiceNo"`
	UserID          string      `json:"userId"`
	Items           []cart.Line `json:"items"`
	DeliveryAddress Address     `json:"deliveryAddress"`
	Subtotal        float64     `json:"subtotal"`
	DeliveryFee     float64     `json:"deliveryFee"`
	Taxes           float64     `json:"taxes"`
	Total           int64       `json:"total"`
	OrderDate       string      `json:"orderDate"`
	Status          Status      `json:"status"`
}

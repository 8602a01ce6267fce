package cart

import "fooddash-be/internal/catalog"

// Line is one item in the cart with its quantity. The item fields are
// snapshotted from the catalog at add time; JSON tags match the
// persisted cartState shape.
type Line struct {
	ID          int                 `json:"id"`
	Name        string              `json:"name"`
	Image       string              `json:"image"`
	Price       float64             `json:"price"`
	DietaryType catalog.DietaryType `json:"type"`
	Quantity    int                 `json:"qty"`
}

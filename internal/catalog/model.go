package catalog

// DietaryType marks an item as vegetarian or not.
type DietaryType string

const (
	Veg    DietaryType = "veg"
	NonVeg DietaryType = "non-veg"
)

// Item is one purchasable dish. The catalog is loaded once at startup
// and is read-only afterwards.
type Item struct {
	ID          int         `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Image       string      `json:"image" yaml:"image"`
	Price       float64     `json:"price" yaml:"price"`
	DietaryType DietaryType `json:"type" yaml:"type"`
	Category    string      `json:"category" yaml:"category"`
}

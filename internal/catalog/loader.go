package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Items []Item `yaml:"items"`
}

// Load reads the catalog from path, or falls back to the embedded
// default menu when path is empty.
func Load(path string) ([]Item, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[int]bool, len(f.Items))
	for _, item := range f.Items {
		if item.ID <= 0 {
			return nil, fmt.Errorf("catalog item %q has invalid id %d", item.Name, item.ID)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("catalog item id %d is duplicated", item.ID)
		}
		seen[item.ID] = true

		if item.Name == "" {
			return nil, fmt.Errorf("catalog item %d has no name", item.ID)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("catalog item %d has negative price", item.ID)
		}
		if item.DietaryType != Veg && item.DietaryType != NonVeg {
			return nil, fmt.Errorf("catalog item %d has unknown dietary type %q", item.ID, item.DietaryType)
		}
	}

	return f.Items, nil
}

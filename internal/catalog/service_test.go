package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []Item {
	return []Item{
		{ID: 1, Name: "Pancakes", Price: 150, DietaryType: Veg, Category: "breakfast"},
		{ID: 2, Name: "Chicken Biryani", Price: 280, DietaryType: NonVeg, Category: "main_course"},
		{ID: 3, Name: "Veg Biryani", Price: 220, DietaryType: Veg, Category: "main_course"},
		{ID: 4, Name: "Samosa", Price: 40, DietaryType: Veg, Category: "snacks"},
	}
}

func TestLoad_EmbeddedDefault(t *testing.T) {
	items, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, items)

	for _, item := range items {
		assert.Greater(t, item.ID, 0)
		assert.NotEmpty(t, item.Name)
		assert.GreaterOrEqual(t, item.Price, 0.0)
		assert.Contains(t, []DietaryType{Veg, NonVeg}, item.DietaryType)
		assert.NotEmpty(t, item.Category)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `items:
  - id: 1
    name: Idli
    image: /images/idli.jpg
    price: 70
    type: veg
    category: breakfast
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	items, err := Load(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Idli", items[0].Name)
	assert.Equal(t, 70.0, items[0].Price)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		content string
	}{
		{"DuplicateID", "items:\n  - {id: 1, name: A, price: 10, type: veg, category: x}\n  - {id: 1, name: B, price: 10, type: veg, category: x}\n"},
		{"NegativePrice", "items:\n  - {id: 1, name: A, price: -5, type: veg, category: x}\n"},
		{"BadDietaryType", "items:\n  - {id: 1, name: A, price: 5, type: vegan, category: x}\n"},
		{"MissingName", "items:\n  - {id: 1, price: 5, type: veg, category: x}\n"},
		{"Malformed", "items: [\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestService_ByID(t *testing.T) {
	svc := NewService(testItems())
	ctx := context.Background()

	item, err := svc.ByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Chicken Biryani", item.Name)

	_, err = svc.ByID(ctx, 999)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestService_Categories(t *testing.T) {
	svc := NewService(testItems())

	got := svc.Categories(context.Background())

	assert.Equal(t, []string{"breakfast", "main_course", "snacks"}, got)
}

func TestService_Search(t *testing.T) {
	svc := NewService(testItems())
	ctx := context.Background()

	t.Run("All", func(t *testing.T) {
		assert.Len(t, svc.Search(ctx, "All", ""), 4)
		assert.Len(t, svc.Search(ctx, "", ""), 4)
	})

	t.Run("ByCategory", func(t *testing.T) {
		got := svc.Search(ctx, "main_course", "")
		require.Len(t, got, 2)
		assert.Equal(t, "Chicken Biryani", got[0].Name)
	})

	t.Run("ByName", func(t *testing.T) {
		got := svc.Search(ctx, "", "biryani")
		assert.Len(t, got, 2)
	})

	t.Run("CategoryAndName", func(t *testing.T) {
		got := svc.Search(ctx, "main_course", "veg biryani")
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].ID)
	})

	t.Run("NoMatch", func(t *testing.T) {
		assert.Empty(t, svc.Search(ctx, "", "pizza"))
	})
}

package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"shopdemo/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Product{
		{ID: 1, Name: "Wireless Headphones", Price: 2999, Category: "Electronics", Description: "Noise cancelling"},
		{ID: 2, Name: "Smart Watch", Price: 8999, Category: "Electronics", Description: "Health tracking"},
		{ID: 3, Name: "Laptop Stand", Price: 1499, Category: "Accessories", Description: "Aluminum stand"},
		{ID: 4, Name: "Desk Lamp", Price: 799, Category: "Home", Description: "Warm light"},
		{ID: 5, Name: "USB Hub", Price: 1299, Category: "Accessories", Description: "Seven ports"},
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cat := catalog.Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.NotEmpty(t, cat.All())
	})

	t.Run("invalid json falls back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "products.json")
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

		cat := catalog.Load(path)
		assert.NotEmpty(t, cat.All())
	})

	t.Run("valid file replaces defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "products.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id": 42, "name": "Test Product", "price": 10}]`), 0o644))

		cat := catalog.Load(path)
		products := cat.All()
		require.Len(t, products, 1)
		assert.Equal(t, 42, products[0].ID)
	})
}

func TestCatalogQueries(t *testing.T) {
	cat := fixtureCatalog()

	t.Run("get by id", func(t *testing.T) {
		p, ok := cat.Get(3)
		require.True(t, ok)
		assert.Equal(t, "Laptop Stand", p.Name)

		_, ok = cat.Get(999)
		assert.False(t, ok)
	})

	t.Run("featured is the first three", func(t *testing.T) {
		featured := cat.Featured()
		require.Len(t, featured, 3)
		assert.Equal(t, 1, featured[0].ID)
		assert.Equal(t, 3, featured[2].ID)
	})

	t.Run("related prefers the same category", func(t *testing.T) {
		related := cat.Related(3, 2)
		require.Len(t, related, 2)
		assert.Equal(t, "USB Hub", related[0].Name)
	})

	t.Run("related tops up from other categories", func(t *testing.T) {
		related := cat.Related(4, 3)
		require.Len(t, related, 3)
		for _, p := range related {
			assert.NotEqual(t, 4, p.ID)
		}
	})

	t.Run("related for unknown product is nil", func(t *testing.T) {
		assert.Nil(t, cat.Related(999, 4))
	})

	t.Run("categories lists all first", func(t *testing.T) {
		categories := cat.Categories()
		assert.Equal(t, []string{"All", "Electronics", "Accessories", "Home"}, categories)
	})
}

func TestCatalogSearch(t *testing.T) {
	cat := fixtureCatalog()

	t.Run("matches name case-insensitively", func(t *testing.T) {
		results := cat.Search("WATCH")
		require.Len(t, results, 1)
		assert.Equal(t, "Smart Watch", results[0].Name)
	})

	t.Run("matches description", func(t *testing.T) {
		results := cat.Search("aluminum")
		require.Len(t, results, 1)
		assert.Equal(t, "Laptop Stand", results[0].Name)
	})

	t.Run("matches category", func(t *testing.T) {
		assert.Len(t, cat.Search("electronics"), 2)
	})

	t.Run("blank query returns everything", func(t *testing.T) {
		assert.Len(t, cat.Search("   "), 5)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		assert.Empty(t, cat.Search("zzzzz"))
	})
}

func TestCatalogFilter(t *testing.T) {
	cat := fixtureCatalog()

	t.Run("by category", func(t *testing.T) {
		assert.Len(t, cat.FilterByCategory("Accessories"), 2)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		assert.Len(t, cat.FilterByCategory("accessories"), 2)
	})

	t.Run("all passes through", func(t *testing.T) {
		assert.Len(t, cat.FilterByCategory("all"), 5)
		assert.Len(t, cat.FilterByCategory(""), 5)
	})
}

func TestRecommended(t *testing.T) {
	cat := fixtureCatalog()

	t.Run("empty cart gets the catalog head", func(t *testing.T) {
		recommended := cat.Recommended(nil, 2)
		require.Len(t, recommended, 2)
		assert.Equal(t, 1, recommended[0].ID)
	})

	t.Run("carted products are excluded", func(t *testing.T) {
		recommended := cat.Recommended([]int{1, 2}, 4)
		for _, p := range recommended {
			assert.NotContains(t, []int{1, 2}, p.ID)
		}
	})

	t.Run("same-category products come first", func(t *testing.T) {
		recommended := cat.Recommended([]int{3}, 2)
		require.NotEmpty(t, recommended)
		assert.Equal(t, "USB Hub", recommended[0].Name)
	})
}

func TestSortProducts(t *testing.T) {
	products := fixtureCatalog().All()

	t.Run("price-low", func(t *testing.T) {
		sorted := catalog.SortProducts(products, "price-low")
		assert.Equal(t, "Desk Lamp", sorted[0].Name)
		assert.Equal(t, "Smart Watch", sorted[len(sorted)-1].Name)
	})

	t.Run("price-high", func(t *testing.T) {
		sorted := catalog.SortProducts(products, "price-high")
		assert.Equal(t, "Smart Watch", sorted[0].Name)
	})

	t.Run("name", func(t *testing.T) {
		sorted := catalog.SortProducts(products, "name")
		assert.Equal(t, "Desk Lamp", sorted[0].Name)
	})

	t.Run("unknown criterion keeps order", func(t *testing.T) {
		sorted := catalog.SortProducts(products, "rating")
		assert.Equal(t, products, sorted)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		original := fixtureCatalog().All()
		_ = catalog.SortProducts(original, "price-low")
		assert.Equal(t, fixtureCatalog().All(), original)
	})
}

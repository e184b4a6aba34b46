package analytics_test

import (
	"testing"

	"shopdemo/internal/analytics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatItems(t *testing.T) {
	t.Run("well-formed record", func(t *testing.T) {
		items := analytics.FormatItems(analytics.Source{
			ID:       1,
			Name:     "Wireless Headphones",
			Price:    2999.0,
			Quantity: 2,
			Category: "Electronics",
		})

		require.Len(t, items, 1)
		assert.Equal(t, "1", items[0].ItemID)
		assert.Equal(t, "Wireless Headphones", items[0].ItemName)
		assert.Equal(t, "INR", items[0].Currency)
		assert.Equal(t, 2999.0, items[0].Price)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, "Electronics", items[0].ItemCategory)
	})

	t.Run("numeric strings round-trip", func(t *testing.T) {
		items := analytics.FormatItems(analytics.Source{
			ID:       7,
			Name:     "X",
			Price:    "150.5",
			Quantity: "3",
		})

		require.Len(t, items, 1)
		assert.Equal(t, "7", items[0].ItemID)
		assert.Equal(t, 150.5, items[0].Price)
		assert.Equal(t, 3, items[0].Quantity)
		assert.Equal(t, "General", items[0].ItemCategory)
	})

	t.Run("missing fields default", func(t *testing.T) {
		items := analytics.FormatItems(analytics.Source{})

		require.Len(t, items, 1)
		assert.Equal(t, "", items[0].ItemID)
		assert.Equal(t, "", items[0].ItemName)
		assert.Equal(t, 0.0, items[0].Price)
		assert.Equal(t, 1, items[0].Quantity)
		assert.Equal(t, "General", items[0].ItemCategory)
		assert.Equal(t, "INR", items[0].Currency)
	})

	t.Run("malformed fields degrade without aborting", func(t *testing.T) {
		items := analytics.FormatItems(
			analytics.Source{ID: 1, Name: "Good", Price: 100.0, Quantity: 1},
			analytics.Source{ID: nil, Name: nil, Price: "not-a-price", Quantity: "not-a-qty"},
			analytics.Source{ID: 3, Name: "Also Good", Price: 50.0, Quantity: 1},
		)

		require.Len(t, items, 3)
		assert.Equal(t, "", items[1].ItemID)
		assert.Equal(t, 0.0, items[1].Price)
		assert.Equal(t, 1, items[1].Quantity)
		assert.Equal(t, "Also Good", items[2].ItemName)
	})

	t.Run("zero or negative quantity defaults to one", func(t *testing.T) {
		items := analytics.FormatItems(
			analytics.Source{ID: 1, Quantity: 0},
			analytics.Source{ID: 2, Quantity: -4},
		)

		assert.Equal(t, 1, items[0].Quantity)
		assert.Equal(t, 1, items[1].Quantity)
	})

	t.Run("float id from decoded json", func(t *testing.T) {
		// JSON numbers decode to float64; the id must still come out as a
		// clean integer string.
		items := analytics.FormatItems(analytics.Source{ID: float64(42)})
		assert.Equal(t, "42", items[0].ItemID)
	})

	t.Run("no index or list context on plain items", func(t *testing.T) {
		items := analytics.FormatItems(analytics.Source{ID: 1})
		assert.Nil(t, items[0].Index)
		assert.Empty(t, items[0].ItemListID)
		assert.Empty(t, items[0].ItemListName)
	})
}

func TestFormatList(t *testing.T) {
	t.Run("items carry position and list context", func(t *testing.T) {
		items := analytics.FormatList([]analytics.Source{
			{ID: 1, Name: "A", Price: 10.0},
			{ID: 2, Name: "B", Price: 20.0},
			{ID: 3, Name: "C", Price: 30.0},
		}, "Featured Products", "featured_products")

		require.Len(t, items, 3)
		for i, item := range items {
			require.NotNil(t, item.Index)
			assert.Equal(t, i, *item.Index)
			assert.Equal(t, "featured_products", item.ItemListID)
			assert.Equal(t, "Featured Products", item.ItemListName)
		}
	})

	t.Run("empty list identity falls back to defaults", func(t *testing.T) {
		items := analytics.FormatList([]analytics.Source{{ID: 1}}, "", "")

		require.Len(t, items, 1)
		assert.Equal(t, "All Products", items[0].ItemListName)
		assert.Equal(t, "product_list", items[0].ItemListID)
	})

	t.Run("empty input formats to empty list", func(t *testing.T) {
		items := analytics.FormatList(nil, "", "")
		assert.Empty(t, items)
	})
}

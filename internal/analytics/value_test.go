package analytics_test

import (
	"testing"

	"shopdemo/internal/analytics"

	"github.com/stretchr/testify/assert"
)

func TestTotalValue(t *testing.T) {
	t.Run("empty input is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, analytics.TotalValue())
	})

	t.Run("sums price times quantity", func(t *testing.T) {
		total := analytics.TotalValue(
			analytics.Source{ID: 1, Price: 1299.0, Quantity: 2},
			analytics.Source{ID: 2, Price: 150.5, Quantity: 1},
		)
		assert.Equal(t, 2748.5, total)
	})

	t.Run("missing quantity counts as one", func(t *testing.T) {
		total := analytics.TotalValue(analytics.Source{ID: 1, Price: 500.0})
		assert.Equal(t, 500.0, total)
	})

	t.Run("unparseable price contributes zero", func(t *testing.T) {
		total := analytics.TotalValue(
			analytics.Source{ID: 1, Price: "garbage", Quantity: 3},
			analytics.Source{ID: 2, Price: 100.0, Quantity: 1},
		)
		assert.Equal(t, 100.0, total)
	})

	t.Run("numeric strings are coerced", func(t *testing.T) {
		total := analytics.TotalValue(analytics.Source{ID: 1, Price: "150.5", Quantity: "3"})
		assert.Equal(t, 451.5, total)
	})

	t.Run("order does not matter", func(t *testing.T) {
		sources := []analytics.Source{
			{ID: 1, Price: 10.0, Quantity: 1},
			{ID: 2, Price: 20.0, Quantity: 2},
			{ID: 3, Price: 30.0, Quantity: 3},
		}
		reversed := []analytics.Source{sources[2], sources[1], sources[0]}

		assert.Equal(t,
			analytics.TotalValue(sources...),
			analytics.TotalValue(reversed...),
		)
	})
}

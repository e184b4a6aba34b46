package cart_test

import (
	"context"
	"testing"

	"shopdemo/internal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.Open(context.Background(), cart.NewMemoryRepository())
	require.NoError(t, err)
	return c
}

func mouseLine() cart.Line {
	return cart.Line{ProductID: 1, Name: "Mouse", Price: 1299, Quantity: 2, Category: "Electronics"}
}

func TestCartAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a new line", func(t *testing.T) {
		c := openCart(t)

		require.NoError(t, c.Add(ctx, mouseLine()))

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, 2, c.Count())
	})

	t.Run("merges quantities for the same product", func(t *testing.T) {
		c := openCart(t)

		require.NoError(t, c.Add(ctx, mouseLine()))
		require.NoError(t, c.Add(ctx, cart.Line{ProductID: 1, Name: "Mouse", Price: 1299, Quantity: 3}))

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("quantity below one defaults to one", func(t *testing.T) {
		c := openCart(t)

		require.NoError(t, c.Add(ctx, cart.Line{ProductID: 2, Name: "Pad", Price: 499}))

		assert.Equal(t, 1, c.Items()[0].Quantity)
	})
}

func TestCartRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the removed line", func(t *testing.T) {
		c := openCart(t)
		require.NoError(t, c.Add(ctx, mouseLine()))

		removed, ok, err := c.Remove(ctx, 1)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 2, removed.Quantity)
		assert.True(t, c.IsEmpty())
	})

	t.Run("unknown product reports not found", func(t *testing.T) {
		c := openCart(t)

		_, ok, err := c.Remove(ctx, 999)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestCartUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("sets the quantity", func(t *testing.T) {
		c := openCart(t)
		require.NoError(t, c.Add(ctx, mouseLine()))

		line, removed, err := c.UpdateQuantity(ctx, 1, 5)
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, 5, line.Quantity)
		assert.Equal(t, 5, c.Count())
	})

	t.Run("zero removes the line", func(t *testing.T) {
		c := openCart(t)
		require.NoError(t, c.Add(ctx, mouseLine()))

		line, removed, err := c.UpdateQuantity(ctx, 1, 0)
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, "Mouse", line.Name)
		assert.True(t, c.IsEmpty())
	})
}

func TestCartTotals(t *testing.T) {
	ctx := context.Background()
	c := openCart(t)
	require.NoError(t, c.Add(ctx, mouseLine()))
	require.NoError(t, c.Add(ctx, cart.Line{ProductID: 2, Name: "Pad", Price: 499, Quantity: 1}))

	assert.Equal(t, 3097.0, c.Subtotal())
	assert.Equal(t, 3196.0, c.Total(99))

	t.Run("empty cart owes nothing", func(t *testing.T) {
		empty := openCart(t)
		assert.Equal(t, 0.0, empty.Total(99))
	})
}

func TestCartAnalyticsProjection(t *testing.T) {
	ctx := context.Background()
	c := openCart(t)
	require.NoError(t, c.Add(ctx, mouseLine()))

	sources := c.Lines()
	require.Len(t, sources, 1)
	assert.Equal(t, 1, sources[0].ID)
	assert.Equal(t, "Mouse", sources[0].Name)
	assert.Equal(t, 1299.0, sources[0].Price)
	assert.Equal(t, 2, sources[0].Quantity)
	assert.Equal(t, "Electronics", sources[0].Category)
}

func TestCartPersistence(t *testing.T) {
	ctx := context.Background()
	repo := cart.NewMemoryRepository()

	first, err := cart.Open(ctx, repo)
	require.NoError(t, err)
	require.NoError(t, first.Add(ctx, mouseLine()))

	t.Run("reopening restores the lines", func(t *testing.T) {
		second, err := cart.Open(ctx, repo)
		require.NoError(t, err)
		assert.Equal(t, first.Items(), second.Items())
	})

	t.Run("clear wipes the store", func(t *testing.T) {
		require.NoError(t, first.Clear(ctx))

		reopened, err := cart.Open(ctx, repo)
		require.NoError(t, err)
		assert.True(t, reopened.IsEmpty())
	})
}

package cart

import (
	"context"
	"sync"

	"shopdemo/internal/analytics"
)

// Line is one cart entry. The cart is the single source of truth for
// cart-derived analytics items; analytics projections are always rebuilt
// from these lines and never written back.
type Line struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
	Category  string  `json:"category,omitempty"`
}

// Source projects the line into the loose record the analytics formatter
// consumes.
func (l Line) Source() analytics.Source {
	return analytics.Source{
		ID:       l.ProductID,
		Name:     l.Name,
		Price:    l.Price,
		Quantity: l.Quantity,
		Category: l.Category,
	}
}

// Cart holds the shopper's lines, persisting every mutation through the
// configured repository. It implements analytics.CartProvider.
type Cart struct {
	mu    sync.Mutex
	lines []Line
	repo  Repository
}

// Open restores the cart from the repository. A load failure starts the
// shopper with an empty cart rather than refusing service.
func Open(ctx context.Context, repo Repository) (*Cart, error) {
	lines, err := repo.Load(ctx)
	if err != nil {
		return &Cart{lines: []Line{}, repo: repo}, err
	}
	return &Cart{lines: lines, repo: repo}, nil
}

// Add merges the line into the cart, summing quantities for a product
// already present.
func (c *Cart) Add(ctx context.Context, line Line) error {
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	merged := false
	for i := range c.lines {
		if c.lines[i].ProductID == line.ProductID {
			c.lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.lines = append(c.lines, line)
	}

	return c.repo.Save(ctx, c.lines)
}

// Remove deletes the product's line, reporting the removed line so the
// caller can emit the removal with the quantity that was in the cart.
func (c *Cart) Remove(ctx context.Context, productID int) (Line, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, line := range c.lines {
		if line.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return line, true, c.repo.Save(ctx, c.lines)
		}
	}
	return Line{}, false, nil
}

// UpdateQuantity sets the product's quantity. A quantity of zero or less
// removes the line, mirroring the storefront's quantity stepper.
func (c *Cart) UpdateQuantity(ctx context.Context, productID, quantity int) (Line, bool, error) {
	if quantity <= 0 {
		return c.Remove(ctx, productID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return c.lines[i], false, c.repo.Save(ctx, c.lines)
		}
	}
	return Line{}, false, nil
}

// Clear empties the cart, e.g. after a completed checkout.
func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = []Line{}
	return c.repo.Clear(ctx)
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Line, len(c.lines))
	copy(items, c.lines)
	return items
}

// Lines satisfies analytics.CartProvider.
func (c *Cart) Lines() []analytics.Source {
	c.mu.Lock()
	defer c.mu.Unlock()

	sources := make([]analytics.Source, 0, len(c.lines))
	for _, line := range c.lines {
		sources = append(sources, line.Source())
	}
	return sources
}

// Count is the total quantity across all lines, shown on the cart badge.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// ProductIDs lists the carted product ids, for recommendations.
func (c *Cart) ProductIDs() []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]int, 0, len(c.lines))
	for _, line := range c.lines {
		ids = append(ids, line.ProductID)
	}
	return ids
}

// Subtotal sums price times quantity over the lines.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var subtotal float64
	for _, line := range c.lines {
		subtotal += line.Price * float64(line.Quantity)
	}
	return subtotal
}

// Total is the subtotal plus the flat shipping cost. Shipping applies
// only when there is something to ship.
func (c *Cart) Total(shippingCost float64) float64 {
	subtotal := c.Subtotal()
	if subtotal > 0 {
		return subtotal + shippingCost
	}
	return 0
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

package catalog

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
)

// Catalog is the in-memory product list. Read-only after construction.
type Catalog struct {
	products []Product
}

func New(products []Product) *Catalog {
	return &Catalog{products: products}
}

// Load reads products from the JSON file at path, falling back to the
// embedded defaults when the file is missing, unreadable or empty. The
// storefront must come up with a catalog either way.
func Load(path string) *Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		return New(defaultProducts)
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil || len(products) == 0 {
		return New(defaultProducts)
	}

	return New(products)
}

// All returns a copy of the full product list.
func (c *Catalog) All() []Product {
	products := make([]Product, len(c.products))
	copy(products, c.products)
	return products
}

// Featured returns the homepage selection: the first three products.
func (c *Catalog) Featured() []Product {
	n := min(3, len(c.products))
	featured := make([]Product, n)
	copy(featured, c.products[:n])
	return featured
}

func (c *Catalog) Get(id int) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Related returns up to limit products sharing the given product's
// category, topped up with other products when the category runs short.
func (c *Catalog) Related(id int, limit int) []Product {
	current, ok := c.Get(id)
	if !ok {
		return nil
	}

	related := make([]Product, 0, limit)
	for _, p := range c.products {
		if p.ID != current.ID && p.Category == current.Category {
			related = append(related, p)
		}
	}
	for _, p := range c.products {
		if len(related) >= limit {
			break
		}
		if p.ID != current.ID && p.Category != current.Category {
			related = append(related, p)
		}
	}

	if len(related) > limit {
		related = related[:limit]
	}
	return related
}

// Search matches the query against product name, description and
// category, case-insensitively. A blank query returns everything.
func (c *Catalog) Search(query string) []Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return c.All()
	}

	matches := []Product{}
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			matches = append(matches, p)
		}
	}
	return matches
}

// FilterByCategory returns products in the given category. Empty or "all"
// returns everything.
func (c *Catalog) FilterByCategory(category string) []Product {
	if category == "" || strings.EqualFold(category, "all") {
		return c.All()
	}

	filtered := []Product{}
	for _, p := range c.products {
		if strings.EqualFold(p.Category, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Categories lists the distinct categories, "All" first.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	categories := []string{"All"}
	for _, p := range c.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

// Recommended suggests up to limit products based on the categories of
// the cart's contents, topped up with other products. With an empty cart
// it returns the head of the catalog.
func (c *Catalog) Recommended(inCart []int, limit int) []Product {
	if len(inCart) == 0 {
		n := min(limit, len(c.products))
		head := make([]Product, n)
		copy(head, c.products[:n])
		return head
	}

	carted := map[int]bool{}
	categories := map[string]bool{}
	for _, id := range inCart {
		carted[id] = true
		if p, ok := c.Get(id); ok && p.Category != "" {
			categories[p.Category] = true
		}
	}

	recommended := make([]Product, 0, limit)
	for _, p := range c.products {
		if !carted[p.ID] && categories[p.Category] {
			recommended = append(recommended, p)
		}
	}
	for _, p := range c.products {
		if len(recommended) >= limit {
			break
		}
		if !carted[p.ID] && !categories[p.Category] {
			recommended = append(recommended, p)
		}
	}

	if len(recommended) > limit {
		recommended = recommended[:limit]
	}
	return recommended
}

// SortProducts orders a product slice by the named criterion: price-low,
// price-high or name. Unknown criteria leave the order unchanged.
func SortProducts(products []Product, by string) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	switch by {
	case "price-low":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case "price-high":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case "name":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	}
	return sorted
}

package catalog

import "shopdemo/internal/analytics"

// Product is one catalog entry, matching the shape of the products JSON
// file.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
	SKU         string  `json:"sku"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
}

// Source projects the product into the loose record the analytics
// formatter consumes. Quantity is left unset; the emitting operation
// decides it.
func (p Product) Source() analytics.Source {
	return analytics.Source{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
	}
}

// Sources converts a product list for list-contextual emissions.
func Sources(products []Product) []analytics.Source {
	sources := make([]analytics.Source, 0, len(products))
	for _, p := range products {
		sources = append(sources, p.Source())
	}
	return sources
}

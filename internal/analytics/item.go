package analytics

import (
	"fmt"
	"strconv"
)

const (
	// Currency is restated on every item as well as on the envelope. The
	// duplication is required by the downstream consumer's schema.
	Currency = "INR"

	DefaultCategory = "General"
	DefaultListName = "All Products"
	DefaultListID   = "product_list"
)

// Source is the loosely typed record handed to the formatter. Catalog
// products, cart lines and externally supplied order payloads all reduce
// to this shape. Field types are deliberately open: order data arrives as
// untrusted JSON and malformed fields degrade to defaults instead of
// failing the emission.
type Source struct {
	ID       any `json:"id"`
	Name     any `json:"name"`
	Price    any `json:"price"`
	Quantity any `json:"quantity"`
	Category any `json:"category"`
}

// Item is one entry of an ecommerce payload's item list. The json field
// names are the wire contract with the tag-management consumer and must
// not change.
type Item struct {
	ItemID       string  `json:"item_id"`
	ItemName     string  `json:"item_name"`
	Currency     string  `json:"currency"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	ItemCategory string  `json:"item_category"`
	Index        *int    `json:"index,omitempty"`
	ItemListID   string  `json:"item_list_id,omitempty"`
	ItemListName string  `json:"item_list_name,omitempty"`
}

// FormatItems normalizes source records into analytics items. Items are
// rebuilt fresh on every call and never cached.
func FormatItems(sources ...Source) []Item {
	items := make([]Item, 0, len(sources))
	for _, src := range sources {
		items = append(items, formatItem(src))
	}
	return items
}

// FormatList normalizes source records for a list-contextual event. Each
// item carries its zero-based position and the list identity; empty list
// name or id fall back to the storefront-wide defaults.
func FormatList(sources []Source, listName, listID string) []Item {
	if listName == "" {
		listName = DefaultListName
	}
	if listID == "" {
		listID = DefaultListID
	}

	items := make([]Item, 0, len(sources))
	for i, src := range sources {
		item := formatItem(src)
		index := i
		item.Index = &index
		item.ItemListID = listID
		item.ItemListName = listName
		items = append(items, item)
	}
	return items
}

func formatItem(src Source) Item {
	return Item{
		ItemID:       coerceID(src.ID),
		ItemName:     coerceString(src.Name),
		Currency:     Currency,
		Price:        coercePrice(src.Price),
		Quantity:     coerceQuantity(src.Quantity),
		ItemCategory: coerceCategory(src.Category),
	}
}

func coerceID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", id)
	}
}

func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", s)
	}
}

func coercePrice(v any) float64 {
	switch p := v.(type) {
	case float64:
		return p
	case float32:
		return float64(p)
	case int:
		return float64(p)
	case int64:
		return float64(p)
	case string:
		parsed, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func coerceQuantity(v any) int {
	qty := 1
	switch q := v.(type) {
	case int:
		qty = q
	case int64:
		qty = int(q)
	case float64:
		qty = int(q)
	case string:
		parsed, err := strconv.Atoi(q)
		if err != nil {
			f, ferr := strconv.ParseFloat(q, 64)
			if ferr != nil {
				return 1
			}
			parsed = int(f)
		}
		qty = parsed
	}

	if qty < 1 {
		return 1
	}
	return qty
}

func coerceCategory(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return DefaultCategory
	}
	return s
}

package analytics

// TotalValue sums price times quantity over the given records, using the
// same permissive coercion as the item formatter. An empty input totals 0.
func TotalValue(sources ...Source) float64 {
	var total float64
	for _, src := range sources {
		total += coercePrice(src.Price) * float64(coerceQuantity(src.Quantity))
	}
	return total
}

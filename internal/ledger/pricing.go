package ledger

import "github.com/fjod/go_storefront/internal/domain"

// EffectivePrice is the sale price when it is set and lower than the list price,
// otherwise the list price.
func EffectivePrice(item domain.LineItem) int64 {
	if Discounted(item) {
		return *item.SalePrice
	}
	return item.Price
}

// Discounted reports whether the sale price is in effect for item
func Discounted(item domain.LineItem) bool {
	return item.SalePrice != nil && *item.SalePrice < item.Price
}

// LineTotal is the effective price times the quantity
func LineTotal(item domain.LineItem) int64 {
	return EffectivePrice(item) * int64(item.Quantity)
}

// ListTotal is the list price times the quantity, shown struck through when
// the entry is discounted.
func ListTotal(item domain.LineItem) int64 {
	return item.Price * int64(item.Quantity)
}

// ComputeTotal sums LineTotal over entries. Amounts are whole won.
func ComputeTotal(entries []domain.LineItem) int64 {
	var total int64
	for _, e := range entries {
		total += LineTotal(e)
	}
	return total
}

// Count sums the quantities of entries
func Count(entries []domain.LineItem) int {
	n := 0
	for _, e := range entries {
		n += e.Quantity
	}
	return n
}

package ledger

import "github.com/fjod/go_storefront/internal/domain"

// BrandGroup is a display section of the cart
type BrandGroup struct {
	Brand string
	Items []domain.LineItem
}

// ProductGroup collects the color/size variants of one product
type ProductGroup struct {
	ProductID string
	Name      string
	Items     []domain.LineItem
}

// GroupByBrand sections entries by brand. Brands appear in the order they are
// first seen and entries keep their relative order within a brand.
func GroupByBrand(entries []domain.LineItem) []BrandGroup {
	index := make(map[string]int)
	var groups []BrandGroup
	for _, e := range entries {
		i, ok := index[e.Brand]
		if !ok {
			i = len(groups)
			index[e.Brand] = i
			groups = append(groups, BrandGroup{Brand: e.Brand})
		}
		groups[i].Items = append(groups[i].Items, e)
	}
	return groups
}

// GroupByProduct partitions entries by product id with the same ordering rules
// as GroupByBrand. The group name is taken from the first variant.
func GroupByProduct(entries []domain.LineItem) []ProductGroup {
	index := make(map[string]int)
	var groups []ProductGroup
	for _, e := range entries {
		i, ok := index[e.ProductID]
		if !ok {
			i = len(groups)
			index[e.ProductID] = i
			groups = append(groups, ProductGroup{ProductID: e.ProductID, Name: e.Name})
		}
		groups[i].Items = append(groups[i].Items, e)
	}
	return groups
}

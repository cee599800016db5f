package http

import (
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/ledger"
	"github.com/fjod/go_storefront/internal/money"
)

// CartLine is a ledger entry with its prices worked out for display
type CartLine struct {
	domain.LineItem
	UnitPrice     int64  `json:"unit_price"`
	LineTotal     int64  `json:"line_total"`
	ListTotal     int64  `json:"list_total"`
	Discounted    bool   `json:"discounted"`
	LineTotalText string `json:"line_total_text"`
	ListTotalText string `json:"list_total_text,omitempty"`
}

type ProductSection struct {
	ProductID string     `json:"product_id"`
	Name      string     `json:"name"`
	Items     []CartLine `json:"items"`
}

type BrandSection struct {
	Brand    string           `json:"brand"`
	Products []ProductSection `json:"products"`
}

// CartView is the cart screen: flat entries, entries sectioned by brand then
// product, and the totals.
type CartView struct {
	Items     []CartLine     `json:"items"`
	Brands    []BrandSection `json:"brands"`
	Count     int            `json:"count"`
	Total     int64          `json:"total"`
	TotalText string         `json:"total_text"`
}

func newCartLine(item domain.LineItem) CartLine {
	line := CartLine{
		LineItem:   item,
		UnitPrice:  ledger.EffectivePrice(item),
		LineTotal:  ledger.LineTotal(item),
		ListTotal:  ledger.ListTotal(item),
		Discounted: ledger.Discounted(item),
	}
	line.LineTotalText = money.FormatKRW(line.LineTotal)
	// the list total is only shown, struck through, next to a sale total
	if line.Discounted {
		line.ListTotalText = money.FormatKRW(line.ListTotal)
	}
	return line
}

func newCartLines(entries []domain.LineItem) []CartLine {
	lines := make([]CartLine, len(entries))
	for i, e := range entries {
		lines[i] = newCartLine(e)
	}
	return lines
}

func newCartView(entries []domain.LineItem) CartView {
	total := ledger.ComputeTotal(entries)
	view := CartView{
		Items:     newCartLines(entries),
		Brands:    []BrandSection{},
		Count:     ledger.Count(entries),
		Total:     total,
		TotalText: money.FormatKRW(total),
	}

	for _, bg := range ledger.GroupByBrand(entries) {
		section := BrandSection{Brand: bg.Brand}
		for _, pg := range ledger.GroupByProduct(bg.Items) {
			section.Products = append(section.Products, ProductSection{
				ProductID: pg.ProductID,
				Name:      pg.Name,
				Items:     newCartLines(pg.Items),
			})
		}
		view.Brands = append(view.Brands, section)
	}
	return view
}

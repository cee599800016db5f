package domain

// Key addresses a single cart entry: the same product in another color or size
// is a different entry.
type Key struct {
	ProductID string
	Color     string
	Size      string
}

// LineItem is one entry of the cart ledger.
type LineItem struct {
	ProductID     string `json:"id"`
	Brand         string `json:"brand"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	SalePrice     *int64 `json:"sale_price,omitempty"`
	Image         string `json:"image,omitempty"`
	SelectedColor string `json:"selected_color"`
	SelectedSize  string `json:"selected_size"`
	Quantity      int    `json:"quantity"`
}

// Key returns the identity key of the entry
func (i LineItem) Key() Key {
	return Key{
		ProductID: i.ProductID,
		Color:     i.SelectedColor,
		Size:      i.SelectedSize,
	}
}

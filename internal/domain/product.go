package domain

// Product is a purchasable catalog item. Optional fields are left empty when the
// catalog has nothing configured for them.
type Product struct {
	ID        string   `json:"id"`
	Brand     string   `json:"brand"`
	Name      string   `json:"name"`
	Price     int64    `json:"price"`
	SalePrice *int64   `json:"sale_price,omitempty"`
	Image     string   `json:"image,omitempty"`
	Images    []string `json:"images,omitempty"`
	Colors    []string `json:"colors,omitempty"`
	Sizes     []string `json:"sizes,omitempty"`
}

package catalog

import (
	"errors"
	"slices"

	"github.com/fjod/go_storefront/internal/domain"
)

var (
	ErrOptionNotSelected = errors.New("color and size must be selected")
	ErrUnknownOption     = errors.New("option is not offered for this product")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
)

// Offered when a product has no option lists configured
var (
	DefaultColors = []string{"Black", "White", "Gray"}
	DefaultSizes  = []string{"S", "M", "L", "XL"}
)

// Options returns the color and size choices for p, falling back to the defaults
func Options(p *domain.Product) (colors, sizes []string) {
	colors, sizes = p.Colors, p.Sizes
	if len(colors) == 0 {
		colors = DefaultColors
	}
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	return colors, sizes
}

// Gallery returns the images to show for p: its gallery, or the main image alone
func Gallery(p *domain.Product) []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return nil
}

// Validate checks a color/size choice against the options of p
func Validate(p *domain.Product, color, size string) error {
	if color == "" || size == "" {
		return ErrOptionNotSelected
	}
	colors, sizes := Options(p)
	if !slices.Contains(colors, color) || !slices.Contains(sizes, size) {
		return ErrUnknownOption
	}
	return nil
}

// ToLineItem snapshots p with the chosen variant and quantity as a cart entry
func ToLineItem(p *domain.Product, color, size string, quantity int) (domain.LineItem, error) {
	if err := Validate(p, color, size); err != nil {
		return domain.LineItem{}, err
	}
	if quantity < 1 {
		return domain.LineItem{}, ErrInvalidQuantity
	}

	item := domain.LineItem{
		ProductID:     p.ID,
		Brand:         p.Brand,
		Name:          p.Name,
		Price:         p.Price,
		Image:         p.Image,
		SelectedColor: color,
		SelectedSize:  size,
		Quantity:      quantity,
	}
	if p.SalePrice != nil {
		sale := *p.SalePrice
		item.SalePrice = &sale
	}
	return item, nil
}

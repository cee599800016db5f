package ledger

import (
	"testing"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name string
		item domain.LineItem
		want int64
	}{
		{
			name: "no sale price",
			item: domain.LineItem{Price: 179000},
			want: 179000,
		},
		{
			name: "lower sale price",
			item: domain.LineItem{Price: 338000, SalePrice: price(270400)},
			want: 270400,
		},
		{
			name: "sale price equal to list price",
			item: domain.LineItem{Price: 210000, SalePrice: price(210000)},
			want: 210000,
		},
		{
			name: "sale price above list price",
			item: domain.LineItem{Price: 69000, SalePrice: price(179000)},
			want: 69000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectivePrice(tt.item))
		})
	}
}

func TestLineAndListTotal(t *testing.T) {
	item := domain.LineItem{Price: 179000, SalePrice: price(69000), Quantity: 3}

	assert.True(t, Discounted(item))
	assert.Equal(t, int64(207000), LineTotal(item))
	assert.Equal(t, int64(537000), ListTotal(item))
}

func TestComputeTotal_Empty(t *testing.T) {
	assert.Equal(t, int64(0), ComputeTotal(nil))
}

func TestComputeTotal_IsLinear(t *testing.T) {
	a := []domain.LineItem{
		{ProductID: "1", Price: 338000, SalePrice: price(270400), SelectedColor: "Black", SelectedSize: "M", Quantity: 2},
		{ProductID: "2", Price: 179000, SelectedColor: "White", SelectedSize: "S", Quantity: 1},
	}
	b := []domain.LineItem{
		{ProductID: "3", Price: 210000, SelectedColor: "Gray", SelectedSize: "L", Quantity: 4},
		{ProductID: "4", Price: 179000, SalePrice: price(69000), SelectedColor: "Black", SelectedSize: "XL", Quantity: 1},
	}
	union := append(append([]domain.LineItem{}, a...), b...)

	assert.Equal(t, ComputeTotal(a)+ComputeTotal(b), ComputeTotal(union))
	assert.Equal(t, int64(2*270400+179000+4*210000+69000), ComputeTotal(union))
}

func TestCount(t *testing.T) {
	entries := []domain.LineItem{{Quantity: 2}, {Quantity: 5}}
	assert.Equal(t, 7, Count(entries))
}

package ledger

import (
	"sync"
	"testing"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v int64) *int64 {
	return &v
}

func jacket(color, size string, qty int) domain.LineItem {
	return domain.LineItem{
		ProductID:     "1",
		Brand:         "X",
		Name:          "PERTEX DOWN JACKET",
		Price:         10000,
		SalePrice:     price(8000),
		SelectedColor: color,
		SelectedSize:  size,
		Quantity:      qty,
	}
}

func key(id, color, size string) domain.Key {
	return domain.Key{ProductID: id, Color: color, Size: size}
}

func TestLedger_Add_NewEntry(t *testing.T) {
	l := New()

	l.Add(jacket("Black", "M", 2))

	entries := l.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
	assert.Equal(t, "Black", entries[0].SelectedColor)
}

func TestLedger_Add_SameKeyMergesQuantities(t *testing.T) {
	l := New()

	quantities := []int{2, 1, 5, 3}
	for _, q := range quantities {
		l.Add(jacket("Black", "M", q))
	}

	entries := l.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, 11, entries[0].Quantity)
}

func TestLedger_Add_MergeKeepsExistingFields(t *testing.T) {
	l := New()
	l.Add(jacket("Black", "M", 1))

	changed := jacket("Black", "M", 2)
	changed.Name = "renamed"
	changed.Price = 1
	changed.SalePrice = nil
	l.Add(changed)

	entries := l.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, "PERTEX DOWN JACKET", entries[0].Name)
	assert.Equal(t, int64(10000), entries[0].Price)
	require.NotNil(t, entries[0].SalePrice)
	assert.Equal(t, int64(8000), *entries[0].SalePrice)
	assert.Equal(t, 3, entries[0].Quantity)
}

func TestLedger_Add_DifferentColorIsDistinct(t *testing.T) {
	l := New()

	l.Add(jacket("Black", "M", 1))
	l.Add(jacket("White", "M", 1))

	assert.Equal(t, 2, l.Len())
}

func TestLedger_Add_DifferentSizeIsDistinct(t *testing.T) {
	l := New()

	l.Add(jacket("Black", "M", 1))
	l.Add(jacket("Black", "L", 1))

	assert.Equal(t, 2, l.Len())
}

func TestLedger_IncreaseThenDecrease_NetZero(t *testing.T) {
	l := New()
	l.Add(jacket("Black", "M", 2))

	l.Increase(key("1", "Black", "M"))
	l.Decrease(key("1", "Black", "M"))

	entries := l.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
}

func TestLedger_Increase_NotFoundIsNoop(t *testing.T) {
	l := New()
	l.Add(jacket("Black", "M", 2))

	l.Increase(key("2", "Black", "M"))

	entries := l.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
}

func TestLedger_Decrease_LastUnitRemovesEntry(t *testing.T) {
	l := New()
	l.Add(jacket("Black", "M", 1))
	l.Add(jacket("White", "M", 1))

	l.Decrease(key("1", "Black", "M"))

	entries := l.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, "White", entries[0].SelectedColor)

	// entry is gone, further calls do nothing
	l.Decrease(key("1", "Black", "M"))
	l.Remove(key("1", "Black", "M"))
	assert.Equal(t, 1, l.Len())
}

func TestLedger_Remove(t *testing.T) {
	l := New()
	l.Add(jacket("Black", "M", 4))
	l.Add(jacket("White", "M", 1))
	l.Add(jacket("Gray", "M", 1))

	l.Remove(key("1", "White", "M"))

	entries := l.Snapshot()
	require.Len(t, entries, 2)
	assert.Equal(t, "Black", entries[0].SelectedColor)
	assert.Equal(t, "Gray", entries[1].SelectedColor)
}

func TestLedger_Remove_NotFoundIsNoop(t *testing.T) {
	l := New()
	l.Add(jacket("Black", "M", 1))

	l.Remove(key("1", "Black", "XL"))

	assert.Equal(t, 1, l.Len())
}

func TestLedger_Clear(t *testing.T) {
	l := New()
	l.Add(jacket("Black", "M", 1))
	l.Add(jacket("White", "M", 1))

	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Snapshot())
}

func TestLedger_SnapshotDoesNotAlias(t *testing.T) {
	l := New()
	l.Add(jacket("Black", "M", 1))

	snap := l.Snapshot()
	snap[0].Quantity = 99
	*snap[0].SalePrice = 1

	entries := l.Snapshot()
	assert.Equal(t, 1, entries[0].Quantity)
	assert.Equal(t, int64(8000), *entries[0].SalePrice)
}

func TestLedger_AddDoesNotAliasCaller(t *testing.T) {
	l := New()
	item := jacket("Black", "M", 1)
	l.Add(item)

	*item.SalePrice = 1

	assert.Equal(t, int64(8000), *l.Snapshot()[0].SalePrice)
}

func TestLedger_ConcurrentAdds(t *testing.T) {
	l := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Add(jacket("Black", "M", 1))
		}()
	}
	wg.Wait()

	entries := l.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, 50, entries[0].Quantity)
}

func TestScenario_MergeContributesSaleTotal(t *testing.T) {
	l := New()

	l.Add(jacket("Black", "M", 2))
	l.Add(jacket("Black", "M", 1))

	entries := l.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].Quantity)
	assert.Equal(t, int64(24000), ComputeTotal(entries))
}

func TestScenario_VariantsGroupUnderOneProduct(t *testing.T) {
	l := New()

	l.Add(jacket("Black", "M", 1))
	l.Add(jacket("White", "M", 1))

	entries := l.Snapshot()
	require.Len(t, entries, 2)

	groups := GroupByProduct(entries)
	require.Len(t, groups, 1)
	assert.Equal(t, "1", groups[0].ProductID)
	assert.Len(t, groups[0].Items, 2)
}

func TestScenario_DecreaseAtOneShrinksLedger(t *testing.T) {
	l := New()
	l.Add(jacket("Black", "M", 1))
	l.Add(jacket("Black", "L", 3))
	before := l.Len()

	l.Decrease(key("1", "Black", "M"))

	assert.Equal(t, before-1, l.Len())
}

package ledger_test

import (
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/ledger"
)

type ledgerFeature struct {
	cart *ledger.Ledger
}

func (f *ledgerFeature) anEmptyCart() error {
	f.cart = ledger.New()
	return nil
}

func (f *ledgerFeature) iAddOnSale(qty int, id, brand string, price, sale int, color, size string) error {
	salePrice := int64(sale)
	f.cart.Add(domain.LineItem{
		ProductID:     id,
		Brand:         brand,
		Price:         int64(price),
		SalePrice:     &salePrice,
		SelectedColor: color,
		SelectedSize:  size,
		Quantity:      qty,
	})
	return nil
}

func (f *ledgerFeature) iAdd(qty int, id, brand string, price int, color, size string) error {
	f.cart.Add(domain.LineItem{
		ProductID:     id,
		Brand:         brand,
		Price:         int64(price),
		SelectedColor: color,
		SelectedSize:  size,
		Quantity:      qty,
	})
	return nil
}

func (f *ledgerFeature) iChange(op, id, color, size string) error {
	key := domain.Key{ProductID: id, Color: color, Size: size}
	switch op {
	case "increase":
		f.cart.Increase(key)
	case "decrease":
		f.cart.Decrease(key)
	case "remove":
		f.cart.Remove(key)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	return nil
}

func (f *ledgerFeature) theCartHasEntries(n int) error {
	if got := f.cart.Len(); got != n {
		return fmt.Errorf("expected %d entries, got %d", n, got)
	}
	return nil
}

func (f *ledgerFeature) theEntryHasQuantity(id, color, size string, qty int) error {
	want := domain.Key{ProductID: id, Color: color, Size: size}
	for _, e := range f.cart.Snapshot() {
		if e.Key() == want {
			if e.Quantity != qty {
				return fmt.Errorf("expected quantity %d, got %d", qty, e.Quantity)
			}
			return nil
		}
	}
	return fmt.Errorf("no entry for %+v", want)
}

func (f *ledgerFeature) theCartTotalIs(total int) error {
	if got := ledger.ComputeTotal(f.cart.Snapshot()); got != int64(total) {
		return fmt.Errorf("expected total %d, got %d", total, got)
	}
	return nil
}

func (f *ledgerFeature) productGroupsVariants(id string, n int) error {
	for _, g := range ledger.GroupByProduct(f.cart.Snapshot()) {
		if g.ProductID == id {
			if len(g.Items) != n {
				return fmt.Errorf("expected %d variants, got %d", n, len(g.Items))
			}
			return nil
		}
	}
	return fmt.Errorf("no group for product %q", id)
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	f := &ledgerFeature{cart: ledger.New()}

	// Given / When
	ctx.Step(`^an empty cart$`, f.anEmptyCart)
	ctx.Step(`^I add (\d+) of product "([^"]*)" from brand "([^"]*)" priced (\d+) on sale for (\d+) in "([^"]*)" size "([^"]*)"$`, f.iAddOnSale)
	ctx.Step(`^I add (\d+) of product "([^"]*)" from brand "([^"]*)" priced (\d+) in "([^"]*)" size "([^"]*)"$`, f.iAdd)
	ctx.Step(`^I (increase|decrease|remove) product "([^"]*)" in "([^"]*)" size "([^"]*)"$`, f.iChange)

	// Then
	ctx.Step(`^the cart has (\d+) entries$`, f.theCartHasEntries)
	ctx.Step(`^the entry for product "([^"]*)" in "([^"]*)" size "([^"]*)" has quantity (\d+)$`, f.theEntryHasQuantity)
	ctx.Step(`^the cart total is (\d+)$`, f.theCartTotalIs)
	ctx.Step(`^product "([^"]*)" groups (\d+) variants$`, f.productGroupsVariants)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

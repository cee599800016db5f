// Package money formats won amounts for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Korean)

// FormatKRW renders an amount the way the storefront shows prices, e.g. "270,400원"
func FormatKRW(amount int64) string {
	return printer.Sprintf("%d원", amount)
}

// Package pricing - Currency rendering
package pricing

import (
	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount as a locale-free two-decimal currency
// string, e.g. "$123.45". Rounding is half-up at two decimal places,
// performed in decimal arithmetic so it is deterministic across
// platforms.
func FormatCurrency(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

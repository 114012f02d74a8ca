package utils

import (
	"github.com/shopspring/decimal"
)

// FormatCedis renders an amount as a Ghana Cedis display string with two
// decimal places, e.g. "GH₵ 1234.50". Presentation only; nothing in the
// computation layer depends on this.
func FormatCedis(amount decimal.Decimal) string {
	return "GH₵ " + amount.StringFixed(2)
}

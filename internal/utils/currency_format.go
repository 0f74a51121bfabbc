package utils

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with the symbol and grouping of the given ISO currency.
// Unknown currency codes fall back to a plain two-decimal string followed by the code.
// Example: 12345.6 with USD returns "$12,345.60".
func FormatMoney(amount decimal.Decimal, currencyCode string) string {
	cur := money.GetCurrency(strings.ToUpper(currencyCode))
	if cur == nil {
		return amount.StringFixed(2) + " " + currencyCode
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

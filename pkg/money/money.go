// Package money formats integer minor-currency amounts for display.
// Derived display strings are computed once when a snapshot is taken,
// never re-derived from live storage records.
package money

import "github.com/shopspring/decimal"

var centsPerDollar = decimal.NewFromInt(100)

// DisplayPrice renders cents as a dollar string, e.g. 1999 -> "$19.99".
func DisplayPrice(cents int) string {
	amount := decimal.NewFromInt(int64(cents)).Div(centsPerDollar)
	return "$" + amount.StringFixed(2)
}

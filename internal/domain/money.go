package domain

import "github.com/shopspring/decimal"

// Round2 rounds a currency amount to 2 decimal places, half away from
// zero. All interest and payment math goes through this.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatCurrency renders an amount as "$12.34" for record titles and
// notification copy.
func FormatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

package domain

import "github.com/shopspring/decimal"

// PlainString renders d in plain notation keeping the stored scale.
// decimal.Decimal keeps the exponent it was parsed with, but String()
// trims trailing zeros, so a price parsed as "8.50" would come back as
// "8.5". The persisted formats require the stored scale verbatim.
func PlainString(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

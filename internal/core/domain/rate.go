package domain

import "github.com/shopspring/decimal"

// RateTable maps a currency code to its conversion rate relative to one
// implicit base currency: each entry answers "how much of code X per 1 unit
// of the base". A table is meaningless without its base, so both travel
// together wherever rates are cached or returned.
type RateTable map[string]decimal.Decimal

// Rate returns the rate for code and whether it is usable. Missing or
// non-positive entries are unusable: every valid rate is strictly positive.
func (t RateTable) Rate(code string) (decimal.Decimal, bool) {
	rate, ok := t[code]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, false
	}
	return rate, true
}

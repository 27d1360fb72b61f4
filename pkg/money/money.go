package money

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to 2 decimal places, half away from zero.
//
// Every amount accepted from a caller and every derived amount is passed
// through Round2 before it is stored or compared, so no persisted field ever
// carries more than 2 decimal digits.
func Round2(v float64) float64 {
	out, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return out
}

// SumRound2 accumulates all values first and rounds once at the end.
//
// Rounding each addend before summing compounds the error across large
// payment sets; aggregate totals must round exactly once.
func SumRound2(values ...float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return Round2(total)
}

// internal/pkg/money/money.go
package money

import "fmt"

// All monetary amounts in this codebase are int64 cents.

// Percent applies a percentage (in basis points) to an amount in cents,
// rounding half away from zero. 8% = 800 basis points.
func Percent(amount int64, basisPoints int64) int64 {
	return RoundDiv(amount*basisPoints, 10000)
}

// Scale multiplies an amount by factorPct/100 (e.g. 90 for ×0.90, 115 for
// ×1.15), rounding half away from zero.
func Scale(amount int64, factorPct int64) int64 {
	return RoundDiv(amount*factorPct, 100)
}

// RoundDiv divides numerator by denominator rounding half away from zero.
// Denominator must be positive.
func RoundDiv(numerator, denominator int64) int64 {
	if numerator >= 0 {
		return (numerator + denominator/2) / denominator
	}
	return -((-numerator + denominator/2) / denominator)
}

// Min returns the smaller of two amounts.
func Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// Format renders cents as a dollar string, e.g. 20938 -> "$209.38".
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

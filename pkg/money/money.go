// Package money holds the decimal conventions shared by every balance operation.
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits carried by stored and compared amounts.
const Scale int32 = 8

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// Zero is the zero amount.
var Zero = decimal.Zero

// One is the identity rate.
var One = decimal.NewFromInt(1)

// Round rounds d to Scale fractional digits, half away from zero.
// Ledger amounts are non-negative, so this is round-half-up.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Apply multiplies amount by rate and rounds once.
func Apply(amount, rate decimal.Decimal) decimal.Decimal {
	return Round(amount.Mul(rate))
}

// Quotient divides num by den at Scale.
func Quotient(num, den decimal.Decimal) decimal.Decimal {
	return num.DivRound(den, Scale)
}

// NormalizeCurrency upper-cases and trims a currency code.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidCurrencyCode reports whether code is a well-formed ISO 4217 style code.
func ValidCurrencyCode(code string) bool {
	return currencyCodeRe.MatchString(code)
}

// Positive reports whether d > 0.
func Positive(d decimal.Decimal) bool {
	return d.GreaterThan(decimal.Zero)
}

// WithinUnit reports whether a and b differ by at most one unit at Scale.
func WithinUnit(a, b decimal.Decimal) bool {
	unit := decimal.New(1, -Scale)
	return a.Sub(b).Abs().LessThanOrEqual(unit)
}

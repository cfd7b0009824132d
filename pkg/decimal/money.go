package decimal

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ISO code used when rendering amounts.
const DefaultCurrency = money.USD

var one = decimal.NewFromInt(1)

// NonNegative clamps negative amounts to zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// GrowthFactor returns (1+rate)^years. Non-positive year counts yield 1.
func GrowthFactor(rate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return one
	}
	return one.Add(rate).Pow(decimal.NewFromInt(int64(years)))
}

// SafeDiv divides a by b, returning zero when b is zero instead of panicking.
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

// Min returns the smaller of two amounts
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Round rounds to cents.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Cents returns the amount as an integer count of minor units.
func Cents(d decimal.Decimal) int64 {
	return d.Round(2).Shift(2).IntPart()
}

// Format renders an amount with currency symbol and thousands separators,
// e.g. "$1,234.57".
func Format(d decimal.Decimal) string {
	return money.New(Cents(d), DefaultCurrency).Display()
}

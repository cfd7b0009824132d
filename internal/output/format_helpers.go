package output

import (
	"strconv"

	money "github.com/rpgo/portfolio-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD with thousands separators.
func FormatCurrency(amount decimal.Decimal) string { return money.Format(amount) }

// FormatPercentage formats a fractional rate as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixed(2) + "%"
}

// FormatDepletion renders a depletion year, or "Never".
func FormatDepletion(year *int) string {
	if year == nil {
		return "Never"
	}
	return intToString(*year)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

var decimalHundred = decimal.NewFromInt(100)

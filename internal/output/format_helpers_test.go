package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[string]string{
		"1234.567":  "$1,234.57",
		"0":         "$0.00",
		"-60000":    "-$60,000.00",
		"1000000.1": "$1,000,000.10",
	}
	for in, want := range cases {
		if got := FormatCurrency(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatCurrency(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(0.123456)
	if got, want := FormatPercentage(v), "12.35%"; got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatDepletion(t *testing.T) {
	if got := FormatDepletion(nil); got != "Never" {
		t.Errorf("FormatDepletion(nil) = %q", got)
	}
	y := 2049
	if got := FormatDepletion(&y); got != "2049" {
		t.Errorf("FormatDepletion(2049) = %q", got)
	}
}

func TestIntToString(t *testing.T) {
	if got, want := intToString(42), "42"; got != want {
		t.Errorf("intToString(42) = %q, want %q", got, want)
	}
}

func TestBoolToString(t *testing.T) {
	if got, want := boolToString(true), "true"; got != want {
		t.Errorf("boolToString(true) = %q, want %q", got, want)
	}
	if got, want := boolToString(false), "false"; got != want {
		t.Errorf("boolToString(false) = %q, want %q", got, want)
	}
}

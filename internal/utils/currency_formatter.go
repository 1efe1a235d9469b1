package utils

import (
	"fmt"
	"strings"

	"github.com/hance08/kea-import/internal/constants"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with two decimals and a period separator.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(constants.AmountPlaces)
}

// FormatComma renders an amount with two decimals and a comma separator,
// e.g. 1234.5 -> "1234,50", 0 -> "0,00".
func FormatComma(d decimal.Decimal) string {
	if d.IsZero() {
		return "0,00"
	}
	return strings.Replace(d.StringFixed(constants.AmountPlaces), ".", ",", 1)
}

// ParseComma is the inverse of FormatComma. It also accepts a period separator.
func ParseComma(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format: %s", s)
	}
	return d.Round(constants.AmountPlaces), nil
}

// ToCents converts an amount to integer cents, rounding half away from zero.
// e.g., 150.5 -> 15050
func ToCents(d decimal.Decimal) int64 {
	return d.Round(constants.AmountPlaces).Shift(constants.AmountPlaces).IntPart()
}

// CentsInRange reports whether d fits in int64 cents.
func CentsInRange(d decimal.Decimal) bool {
	cents := d.Round(constants.AmountPlaces).Shift(constants.AmountPlaces).BigInt()
	return cents.IsInt64()
}

// FromCents converts integer cents back to an amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -constants.AmountPlaces)
}

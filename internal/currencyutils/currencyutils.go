// Package currencyutils provides locale-aware number parsing and money formatting for
// Brazilian-formatted count extracts.
package currencyutils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrNotFinite is returned when a normalized value parses to NaN or ±Inf.
var ErrNotFinite = errors.New("value is not a finite number")

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// StandardizeLocaleNumber rewrites a pt-BR formatted number ("1.234,56") into the
// form strconv understands ("1234.56"): every "." is dropped, then "," becomes ".".
func StandardizeLocaleNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, ",", ".")
}

// NormalizeLocaleNumber parses a pt-BR formatted number. A blank cell is a missing
// value and yields NaN.
//
//	NormalizeLocaleNumber("1.234,56") // 1234.56
//	NormalizeLocaleNumber("0,50")     // 0.5
//	NormalizeLocaleNumber("")         // NaN
func NormalizeLocaleNumber(s string) (float64, error) {
	standardized := StandardizeLocaleNumber(s)
	if standardized == "" {
		return math.NaN(), nil
	}

	v, err := strconv.ParseFloat(standardized, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse number '%s': %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("failed to parse number '%s': %w", s, ErrNotFinite)
	}
	return v, nil
}

// SumAmounts adds monetary values exactly. Non-finite values are skipped.
func SumAmounts(values []float64) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total
}

// FormatCurrency renders amount with two decimals in pt-BR notation, prefixed by symbol.
// Returns strings like "R$ 12.345,60".
func FormatCurrency(amount decimal.Decimal, symbol string) string {
	formatted := FormatNumber(amount.Round(2).InexactFloat64())
	if symbol == "" {
		return formatted
	}
	return symbol + " " + formatted
}

// FormatNumber renders v with two decimals in pt-BR notation ("1.234,56").
// NaN and ±Inf are rendered as strconv spells them.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return brPrinter.Sprintf("%.2f", v)
}

package currencyutils

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLocaleNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		hasError bool
	}{
		{"thousands and decimals", "1.234,56", 1234.56, false},
		{"fraction below one", "0,50", 0.50, false},
		{"negative", "-2.500,75", -2500.75, false},
		{"integer", "12", 12, false},
		{"several thousand groups", "1.234.567,8", 1234567.8, false},
		{"surrounding spaces", "  3,25 ", 3.25, false},
		{"dot only is a thousands separator", "1.500", 1500, false},
		{"text", "abc", 0, true},
		{"two commas", "1,2,3", 0, true},
		{"nan literal", "nan", 0, true},
		{"inf literal", "inf", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeLocaleNumber(tc.input)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestNormalizeLocaleNumber_BlankIsMissing(t *testing.T) {
	for _, in := range []string{"", "   "} {
		got, err := NormalizeLocaleNumber(in)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got), "%q", in)
	}
}

func TestNormalizeLocaleNumber_ErrorKinds(t *testing.T) {
	_, err := NormalizeLocaleNumber("abc")
	assert.True(t, errors.Is(err, strconv.ErrSyntax))

	_, err = NormalizeLocaleNumber("Inf")
	assert.True(t, errors.Is(err, ErrNotFinite))
}

func TestStandardizeLocaleNumber(t *testing.T) {
	assert.Equal(t, "1234.56", StandardizeLocaleNumber("1.234,56"))
	assert.Equal(t, "0.50", StandardizeLocaleNumber("0,50"))
	assert.Equal(t, "-10", StandardizeLocaleNumber(" -10 "))
}

func TestSumAmounts(t *testing.T) {
	total := SumAmounts([]float64{0.1, 0.2, -0.3, math.NaN(), math.Inf(1), 1234.56})
	assert.Equal(t, "1234.56", total.StringFixed(2))
	assert.True(t, SumAmounts(nil).IsZero())
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		symbol   string
		expected string
	}{
		{"grouped", decimal.NewFromFloat(12345.6), "R$", "R$ 12.345,60"},
		{"rounded", decimal.RequireFromString("99.999"), "R$", "R$ 100,00"},
		{"negative", decimal.NewFromFloat(-15000.5), "R$", "R$ -15.000,50"},
		{"no symbol", decimal.NewFromInt(20000), "", "20.000,00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatCurrency(tc.amount, tc.symbol))
		})
	}
}

func TestFormatNumber_NonFinite(t *testing.T) {
	assert.Equal(t, "+Inf", FormatNumber(math.Inf(1)))
	assert.Equal(t, "NaN", FormatNumber(math.NaN()))
}

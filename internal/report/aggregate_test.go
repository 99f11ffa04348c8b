package report

import (
	"math"
	"testing"

	"fjacquet/count-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestABCCurve_TopNAndTies(t *testing.T) {
	rows := []models.CountRow{
		row(models.Jan, "C", 1, -10),
		row(models.Jan, "A", 1, -10),
		row(models.Jan, "B", 1, -20),
		row(models.Fev, "D", 1, 5),
	}

	got := ABCCurve(rows, 3)
	assert.Equal(t, []ProductTotal{
		{Description: "B", DifferenceValue: -20},
		{Description: "A", DifferenceValue: -10},
		{Description: "C", DifferenceValue: -10},
	}, got)

	assert.Len(t, ABCCurve(rows, 30), 4)
	assert.Empty(t, ABCCurve(nil, 30))
}

func TestMonthTotals_ObservedMonthsOnly(t *testing.T) {
	rows := []models.CountRow{
		row(models.Jun, "A", 1, 1),
		row(models.Jan, "A", 1, 2),
		row(models.Jun, "B", 1, 3),
	}

	assert.Equal(t, []MonthTotal{
		{Month: models.Jan, DifferenceValue: 2},
		{Month: models.Jun, DifferenceValue: 4},
	}, MonthTotals(rows))
}

func TestSums_SkipMissingValues(t *testing.T) {
	rows := []models.CountRow{
		row(models.Jan, "A", 2, 10),
		row(models.Jan, "A", math.NaN(), math.NaN()),
		row(models.Jan, "B", math.NaN(), math.NaN()),
	}

	assert.Equal(t, []MonthTotal{{Month: models.Jan, DifferenceValue: 10}}, MonthTotals(rows))
	assert.Equal(t, []ProductTotal{
		{Description: "B", DifferenceValue: 0},
		{Description: "A", DifferenceValue: 10},
	}, ABCCurve(rows, 30))

	values := ValueByMonthProduct(rows)
	require.Len(t, values, 2)
	assert.Equal(t, 10.0, values[0].Value)
	assert.Equal(t, 0.0, values[1].Value, "a group of blanks sums to zero")

	quantities := QuantityByMonthProduct(rows)
	require.Len(t, quantities, 2)
	assert.Equal(t, 2.0, quantities[0].Value)
}

func TestAveragePriceByMonthProduct_NaNHandling(t *testing.T) {
	rows := []models.CountRow{
		{Month: models.Jan, Description: "A", AveragePrice: math.NaN()},
		{Month: models.Jan, Description: "A", AveragePrice: 4},
		{Month: models.Jan, Description: "A", AveragePrice: 8},
		{Month: models.Jan, Description: "B", AveragePrice: math.NaN()},
		{Month: models.Jan, Description: "C", AveragePrice: math.Inf(1)},
		{Month: models.Jan, Description: "C", AveragePrice: 1},
	}

	got := AveragePriceByMonthProduct(rows)
	require.Len(t, got, 3)
	assert.Equal(t, 6.0, got[0].Value, "NaN is skipped")
	assert.True(t, math.IsNaN(got[1].Value), "all-NaN group stays NaN")
	assert.True(t, math.IsInf(got[2].Value, 1), "infinity propagates")
}

func TestSortByValue_StableWithNaNLast(t *testing.T) {
	values := []MonthProductValue{
		{Month: models.Jan, Description: "A", Value: math.NaN()},
		{Month: models.Jan, Description: "B", Value: 2},
		{Month: models.Fev, Description: "C", Value: 1},
		{Month: models.Fev, Description: "D", Value: 2},
	}

	got := SortByValue(values)
	require.Len(t, got, 4)
	assert.Equal(t, "C", got[0].Description)
	assert.Equal(t, "B", got[1].Description)
	assert.Equal(t, "D", got[2].Description)
	assert.Equal(t, "A", got[3].Description)
	assert.Equal(t, "A", values[0].Description, "input is not modified")
}

func TestQuantityByMonthProduct(t *testing.T) {
	rows := []models.CountRow{
		row(models.Mar, "A", -2, 1),
		row(models.Mar, "A", -3, 1),
		row(models.Jan, "A", 4, 1),
	}

	assert.Equal(t, []MonthProductValue{
		{Month: models.Jan, Description: "A", Value: 4},
		{Month: models.Mar, Description: "A", Value: -5},
	}, QuantityByMonthProduct(rows))
}

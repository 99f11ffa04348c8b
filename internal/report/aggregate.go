package report

import (
	"encoding/json"
	"math"
	"sort"

	"fjacquet/count-dashboard/internal/models"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MonthTotal is the summed Difference Value of one month.
type MonthTotal struct {
	Month           models.Month `json:"month"`
	DifferenceValue float64      `json:"difference_value"`
}

// ProductTotal is the summed Difference Value of one product.
type ProductTotal struct {
	Description     string  `json:"description"`
	DifferenceValue float64 `json:"difference_value"`
}

// MonthProductValue is one aggregate of a (month, product) group.
type MonthProductValue struct {
	Month       models.Month `json:"month"`
	Description string       `json:"description"`
	Value       float64      `json:"value"`
}

// MarshalJSON encodes a non-finite Value as null.
func (v MonthProductValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Month       models.Month `json:"month"`
		Description string       `json:"description"`
		Value       *float64     `json:"value"`
	}{v.Month, v.Description, models.FinitePtr(v.Value)})
}

type monthProductKey struct {
	month       models.Month
	description string
}

// groupByMonthProduct collects pick(row) per (month, description) and returns the
// groups in calendar month order, then description order.
func groupByMonthProduct(rows []models.CountRow, pick func(models.CountRow) float64) ([]monthProductKey, map[monthProductKey][]float64) {
	groups := make(map[monthProductKey][]float64)
	var keys []monthProductKey
	for _, r := range rows {
		k := monthProductKey{month: r.Month, description: r.Description}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], pick(r))
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].month != keys[j].month {
			return models.MonthLess(keys[i].month, keys[j].month)
		}
		return keys[i].description < keys[j].description
	})
	return keys, groups
}

func aggregateMonthProduct(rows []models.CountRow, pick func(models.CountRow) float64, agg func([]float64) float64) []MonthProductValue {
	keys, groups := groupByMonthProduct(rows, pick)
	out := make([]MonthProductValue, len(keys))
	for i, k := range keys {
		out[i] = MonthProductValue{Month: k.month, Description: k.description, Value: agg(groups[k])}
	}
	return out
}

// MonthTotals sums Difference Value per month, for the months present in rows, in
// calendar order. Missing values (NaN) are skipped by every sum in this file.
func MonthTotals(rows []models.CountRow) []MonthTotal {
	groups := make(map[models.Month][]float64)
	for _, r := range rows {
		groups[r.Month] = append(groups[r.Month], r.DifferenceValue)
	}
	months := models.PresentMonths(rows)
	out := make([]MonthTotal, len(months))
	for i, m := range months {
		out[i] = MonthTotal{Month: m, DifferenceValue: sumSkipNaN(groups[m])}
	}
	return out
}

// ABCCurve sums Difference Value per product, sorts ascending and keeps the first topN.
// Equal totals keep description order.
func ABCCurve(rows []models.CountRow, topN int) []ProductTotal {
	groups := make(map[string][]float64)
	for _, r := range rows {
		groups[r.Description] = append(groups[r.Description], r.DifferenceValue)
	}
	descriptions := models.Descriptions(rows)
	out := make([]ProductTotal, len(descriptions))
	for i, d := range descriptions {
		out[i] = ProductTotal{Description: d, DifferenceValue: sumSkipNaN(groups[d])}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DifferenceValue < out[j].DifferenceValue
	})
	if topN >= 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// ValueByMonthProduct sums Difference Value per (month, product).
func ValueByMonthProduct(rows []models.CountRow) []MonthProductValue {
	return aggregateMonthProduct(rows, func(r models.CountRow) float64 { return r.DifferenceValue }, sumSkipNaN)
}

// QuantityByMonthProduct sums Difference per (month, product).
func QuantityByMonthProduct(rows []models.CountRow) []MonthProductValue {
	return aggregateMonthProduct(rows, func(r models.CountRow) float64 { return r.Difference }, sumSkipNaN)
}

// AveragePriceByMonthProduct averages Average Price per (month, product). NaN prices
// are skipped; a group holding only NaN stays NaN. Infinite prices propagate.
func AveragePriceByMonthProduct(rows []models.CountRow) []MonthProductValue {
	return aggregateMonthProduct(rows, func(r models.CountRow) float64 { return r.AveragePrice }, meanSkipNaN)
}

// SortByValue returns a copy of values ordered by ascending Value. Equal values keep
// their relative order.
func SortByValue(values []MonthProductValue) []MonthProductValue {
	out := make([]MonthProductValue, len(values))
	copy(out, values)
	sort.SliceStable(out, func(i, j int) bool {
		return lessNaNLast(out[i].Value, out[j].Value)
	})
	return out
}

func lessNaNLast(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a < b
}

// sumSkipNaN adds the non-NaN values; a group holding only NaN sums to zero.
func sumSkipNaN(values []float64) float64 {
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}
	return floats.Sum(kept)
}

func meanSkipNaN(values []float64) float64 {
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return math.NaN()
	}
	return stat.Mean(kept, nil)
}

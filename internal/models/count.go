// Package models defines the count dashboard domain types: month labels, monthly
// count rows and the product reference table.
package models

import (
	"encoding/json"
	"math"
	"sort"
)

// Canonical column names of a monthly count extract, in file order.
const (
	ColCode            = "Código"
	ColDescription     = "Descrição"
	ColLocation        = "Loc"
	ColStockBalance    = "Saldo em Estoque"
	ColCountedQuantity = "Quantidade Contada"
	ColDifference      = "Diferença"
	ColUnit            = "Unidade"
	ColStockValue      = "Valor Estoque"
	ColCountedValue    = "Valor Contada"
	ColDifferenceValue = "Diferença Valor"

	// Derived columns added by the loader.
	ColMonth        = "Mês"
	ColAveragePrice = "Preço Médio"
)

// CountColumns is the positional schema every monthly extract is renamed to.
var CountColumns = []string{
	ColCode,
	ColDescription,
	ColLocation,
	ColStockBalance,
	ColCountedQuantity,
	ColDifference,
	ColUnit,
	ColStockValue,
	ColCountedValue,
	ColDifferenceValue,
}

// CountRow is one line of a monthly inventory count, after normalization.
type CountRow struct {
	Code            string  `csv:"Código" json:"code"`
	Description     string  `csv:"Descrição" json:"description"`
	Location        string  `csv:"Loc" json:"location"`
	StockBalance    string  `csv:"Saldo em Estoque" json:"stock_balance"`
	CountedQuantity string  `csv:"Quantidade Contada" json:"counted_quantity"`
	Difference      float64 `csv:"Diferença" json:"difference"`
	Unit            string  `csv:"Unidade" json:"unit"`
	StockValue      string  `csv:"Valor Estoque" json:"stock_value"`
	CountedValue    string  `csv:"Valor Contada" json:"counted_value"`
	DifferenceValue float64 `csv:"Diferença Valor" json:"difference_value"`
	Month           Month   `csv:"Mês" json:"month"`
	AveragePrice    float64 `csv:"Preço Médio" json:"-"`
}

// AveragePriceOf divides value by quantity without guarding a zero quantity.
func AveragePriceOf(value, quantity float64) float64 {
	return value / quantity
}

// MarshalJSON encodes non-finite numbers as null: a blank Difference or Difference
// Value cell, and the average price of a zero difference.
func (r CountRow) MarshalJSON() ([]byte, error) {
	type plain CountRow
	return json.Marshal(struct {
		plain
		Difference      *float64 `json:"difference"`
		DifferenceValue *float64 `json:"difference_value"`
		AveragePrice    *float64 `json:"average_price"`
	}{
		plain:           plain(r),
		Difference:      FinitePtr(r.Difference),
		DifferenceValue: FinitePtr(r.DifferenceValue),
		AveragePrice:    FinitePtr(r.AveragePrice),
	})
}

// FinitePtr returns &v, or nil for NaN and ±Inf.
func FinitePtr(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Descriptions returns the distinct product descriptions of rows, sorted.
func Descriptions(rows []CountRow) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rows {
		if _, ok := seen[r.Description]; ok {
			continue
		}
		seen[r.Description] = struct{}{}
		out = append(out, r.Description)
	}
	sort.Strings(out)
	return out
}

// PresentMonths returns the distinct months of rows in calendar order.
func PresentMonths(rows []CountRow) []Month {
	seen := make(map[Month]struct{})
	var out []Month
	for _, r := range rows {
		if _, ok := seen[r.Month]; ok {
			continue
		}
		seen[r.Month] = struct{}{}
		out = append(out, r.Month)
	}
	SortMonths(out)
	return out
}

package chart

import (
	"fmt"

	"fjacquet/count-dashboard/internal/models"
	"fjacquet/count-dashboard/internal/report"
)

// Chart titles, as shown on the dashboard.
const (
	TitleABC          = "Curva ABC %d itens"
	TitleMonthTotals  = "Total Diferenças Valor por mês"
	TitleValueByMonth = "Total Diferenças Valor detalhando Produtos"
	TitleQuantity     = "Total Consumos detalhando Produtos / unidade Medida"
	TitleAveragePrice = "Preço Médio / Unidade"
)

// Named is a figure with a stable identifier, used as the DOM id and JSON key.
type Named struct {
	ID     string `json:"id"`
	Figure Figure `json:"figure"`
}

// ABC charts the ABC curve, one colored bar per product.
func ABC(r *report.Report) Figure {
	points := make([]Point, len(r.ABC))
	categories := make([]string, len(r.ABC))
	for i, p := range r.ABC {
		points[i] = Point{X: p.Description, Y: p.DifferenceValue, Color: p.Description}
		categories[i] = p.Description
	}
	return Bar(BarSpec{
		Title:      fmt.Sprintf(TitleABC, r.TopN),
		XLabel:     models.ColDescription,
		YLabel:     models.ColDifferenceValue,
		ColorLabel: models.ColDescription,
		Categories: categories,
	}, points)
}

// MonthTotals charts the per-month Difference Value totals.
func MonthTotals(r *report.Report) Figure {
	points := make([]Point, len(r.MonthTotals))
	for i, t := range r.MonthTotals {
		points[i] = Point{X: t.Month.String(), Y: t.DifferenceValue}
	}
	return Bar(BarSpec{
		Title:      TitleMonthTotals,
		XLabel:     models.ColMonth,
		YLabel:     models.ColDifferenceValue,
		Categories: monthCategories(r),
	}, points)
}

// ValueByMonth stacks Difference Value per month, colored by product.
func ValueByMonth(r *report.Report) Figure {
	return monthProductBar(r, TitleValueByMonth, models.ColDifferenceValue, r.ValueByMonthProduct)
}

// QuantityByMonth stacks Difference per month, colored by product.
func QuantityByMonth(r *report.Report) Figure {
	return monthProductBar(r, TitleQuantity, models.ColDifference, r.QuantityByMonthProduct)
}

// AveragePriceByMonth charts the mean Average Price per month, colored by product.
func AveragePriceByMonth(r *report.Report) Figure {
	return monthProductBar(r, TitleAveragePrice, models.ColAveragePrice, r.AveragePriceByMonth)
}

// Figures returns every dashboard chart in display order. An empty report has none.
func Figures(r *report.Report) []Named {
	if r == nil || r.Empty() {
		return nil
	}
	return []Named{
		{ID: "abc", Figure: ABC(r)},
		{ID: "month-totals", Figure: MonthTotals(r)},
		{ID: "value-by-month", Figure: ValueByMonth(r)},
		{ID: "quantity-by-month", Figure: QuantityByMonth(r)},
		{ID: "average-price", Figure: AveragePriceByMonth(r)},
	}
}

func monthProductBar(r *report.Report, title, yLabel string, values []report.MonthProductValue) Figure {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{X: v.Month.String(), Y: v.Value, Color: v.Description}
	}
	return Bar(BarSpec{
		Title:      title,
		XLabel:     models.ColMonth,
		YLabel:     yLabel,
		ColorLabel: models.ColDescription,
		Categories: monthCategories(r),
	}, points)
}

func monthCategories(r *report.Report) []string {
	months := models.PresentMonths(r.Rows)
	out := make([]string, len(months))
	for i, m := range months {
		out[i] = m.String()
	}
	return out
}

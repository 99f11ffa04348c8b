// Package report filters the combined monthly table and computes the dashboard
// aggregates.
package report

import (
	"fjacquet/count-dashboard/internal/config"
	"fjacquet/count-dashboard/internal/currencyutils"
	"fjacquet/count-dashboard/internal/logging"
	"fjacquet/count-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultTopN is the number of products kept on the ABC curve.
const DefaultTopN = 30

// Report is everything the dashboard renders for one filter selection.
type Report struct {
	Title  string `json:"title"`
	Filter Filter `json:"filter"`

	// Options offered by the filter controls, computed on the unfiltered table.
	MonthOptions   []models.Month `json:"month_options"`
	ProductOptions []string       `json:"product_options"`

	// Rows is the filtered raw monthly table.
	Rows []models.CountRow `json:"rows"`

	TopN                   int                 `json:"top_n"`
	ABC                    []ProductTotal      `json:"abc"`
	MonthTotals            []MonthTotal        `json:"month_totals"`
	ValueByMonthProduct    []MonthProductValue `json:"value_by_month_product"`
	QuantityByMonthProduct []MonthProductValue `json:"quantity_by_month_product"`
	AveragePriceByMonth    []MonthProductValue `json:"average_price_by_month_product"`

	GrandTotal     decimal.Decimal `json:"grand_total"`
	GrandTotalText string          `json:"grand_total_text"`
}

// Empty reports whether the filter matched no rows. An empty report carries only the
// filter options.
func (r *Report) Empty() bool {
	return len(r.Rows) == 0
}

// ValueTable returns the (month, product) Difference Value table ordered by value.
func (r *Report) ValueTable() []MonthProductValue {
	return SortByValue(r.ValueByMonthProduct)
}

// Generator builds reports with fixed presentation settings.
type Generator struct {
	title          string
	topN           int
	currencySymbol string
	logger         logging.Logger
}

// NewGenerator creates a Generator from the report section of the configuration.
func NewGenerator(cfg config.ReportConfig, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	topN := cfg.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Generator{
		title:          cfg.Title,
		topN:           topN,
		currencySymbol: cfg.CurrencySymbol,
		logger:         logger,
	}
}

// Generate filters rows and computes every aggregate. When nothing matches, only the
// filter options are filled in.
func (g *Generator) Generate(rows []models.CountRow, filter Filter) *Report {
	r := &Report{
		Title:          g.title,
		Filter:         filter,
		MonthOptions:   models.PresentMonths(rows),
		ProductOptions: models.Descriptions(rows),
		TopN:           g.topN,
		Rows:           filter.Apply(rows),
	}

	if r.Empty() {
		g.logger.Debug("Filter matched no rows",
			logging.F(logging.FieldFilter, filter),
			logging.F(logging.FieldCount, 0))
		return r
	}

	r.ABC = ABCCurve(r.Rows, g.topN)
	r.MonthTotals = MonthTotals(r.Rows)
	r.ValueByMonthProduct = ValueByMonthProduct(r.Rows)
	r.QuantityByMonthProduct = QuantityByMonthProduct(r.Rows)
	r.AveragePriceByMonth = AveragePriceByMonthProduct(r.Rows)

	values := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		values[i] = row.DifferenceValue
	}
	r.GrandTotal = currencyutils.SumAmounts(values)
	r.GrandTotalText = currencyutils.FormatCurrency(r.GrandTotal, g.currencySymbol)

	g.logger.Debug("Report generated",
		logging.F(logging.FieldFilter, filter),
		logging.F(logging.FieldCount, len(r.Rows)))
	return r
}

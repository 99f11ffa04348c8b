package report

import (
	"strings"

	"fjacquet/count-dashboard/internal/models"
)

// Filter selects rows by month and product description. An empty selection on a
// dimension leaves that dimension unfiltered.
type Filter struct {
	Months   []models.Month `json:"months"`
	Products []string       `json:"products"`
}

// NewFilter builds a Filter from raw selections. Blank values are dropped and month
// labels are kept as given, so a label absent from the data matches nothing.
func NewFilter(months, products []string) Filter {
	var f Filter
	for _, m := range months {
		if m = strings.TrimSpace(m); m != "" {
			f.Months = append(f.Months, models.Month(m))
		}
	}
	for _, p := range products {
		if strings.TrimSpace(p) != "" {
			f.Products = append(f.Products, p)
		}
	}
	return f
}

// IsZero reports whether the filter selects every row.
func (f Filter) IsZero() bool {
	return len(f.Months) == 0 && len(f.Products) == 0
}

// HasMonth reports whether m is selected.
func (f Filter) HasMonth(m models.Month) bool {
	for _, sel := range f.Months {
		if sel == m {
			return true
		}
	}
	return false
}

// HasProduct reports whether the description is selected.
func (f Filter) HasProduct(description string) bool {
	for _, sel := range f.Products {
		if sel == description {
			return true
		}
	}
	return false
}

// Apply returns the rows matching the filter, in their original order.
func (f Filter) Apply(rows []models.CountRow) []models.CountRow {
	out := make([]models.CountRow, 0, len(rows))
	if f.IsZero() {
		return append(out, rows...)
	}
	for _, r := range rows {
		if len(f.Products) > 0 && !f.HasProduct(r.Description) {
			continue
		}
		if len(f.Months) > 0 && !f.HasMonth(r.Month) {
			continue
		}
		out = append(out, r)
	}
	return out
}

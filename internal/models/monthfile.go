package models

import "sort"

// MonthFile binds a month label to the path of its count extract.
type MonthFile struct {
	Month Month  `mapstructure:"month" yaml:"month" json:"month"`
	Path  string `mapstructure:"file" yaml:"file" json:"file"`
}

// SortMonthFiles orders files by calendar month, keeping the relative order of equal
// or unknown months.
func SortMonthFiles(files []MonthFile) {
	sort.SliceStable(files, func(i, j int) bool {
		return MonthLess(files[i].Month, files[j].Month)
	})
}

package export

import (
	"fmt"
	"io"
	"math"

	"fjacquet/count-dashboard/internal/models"
	"fjacquet/count-dashboard/internal/report"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook.
const (
	SheetRaw          = "Dados Mensais"
	SheetMonthTotals  = "Total por Mês"
	SheetMonthProduct = "Mês x Produto"
	SheetABC          = "Curva ABC"
)

// WriteXLSX writes a workbook holding the filtered rows and the main aggregates.
func WriteXLSX(w io.Writer, r *report.Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetRaw); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	header := append(append([]string{}, models.CountColumns...), models.ColMonth, models.ColAveragePrice)
	raw := make([][]interface{}, len(r.Rows))
	for i, row := range r.Rows {
		raw[i] = []interface{}{
			row.Code, row.Description, row.Location, row.StockBalance, row.CountedQuantity,
			cellFloat(row.Difference), row.Unit, row.StockValue, row.CountedValue,
			cellFloat(row.DifferenceValue), row.Month.String(), cellFloat(row.AveragePrice),
		}
	}
	if err := writeSheet(f, SheetRaw, header, raw); err != nil {
		return err
	}

	totals := make([][]interface{}, len(r.MonthTotals))
	for i, t := range r.MonthTotals {
		totals[i] = []interface{}{t.Month.String(), cellFloat(t.DifferenceValue)}
	}
	if err := addSheet(f, SheetMonthTotals, []string{models.ColMonth, models.ColDifferenceValue}, totals); err != nil {
		return err
	}

	byValue := r.ValueTable()
	monthProduct := make([][]interface{}, len(byValue))
	for i, v := range byValue {
		monthProduct[i] = []interface{}{v.Month.String(), v.Description, cellFloat(v.Value)}
	}
	if err := addSheet(f, SheetMonthProduct, []string{models.ColMonth, models.ColDescription, models.ColDifferenceValue}, monthProduct); err != nil {
		return err
	}

	abc := make([][]interface{}, len(r.ABC))
	for i, p := range r.ABC {
		abc[i] = []interface{}{p.Description, cellFloat(p.DifferenceValue)}
	}
	if err := addSheet(f, SheetABC, []string{models.ColDescription, models.ColDifferenceValue}, abc); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func addSheet(f *excelize.File, name string, header []string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	return writeSheet(f, name, header, rows)
}

func writeSheet(f *excelize.File, name string, header []string, rows [][]interface{}) error {
	head := make([]interface{}, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &head); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", name, err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, name, err)
		}
	}
	return nil
}

// cellFloat leaves non-finite values as empty cells.
func cellFloat(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

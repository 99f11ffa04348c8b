package loader

import (
	"fjacquet/count-dashboard/internal/currencyutils"
	"fjacquet/count-dashboard/internal/models"
	"fjacquet/count-dashboard/internal/parsererror"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var countColumns = models.CountColumns

// loadMonthFrame reads one extract into a frame with the canonical columns plus the
// derived average price and month columns. A header-only file returns zero rows and
// an unusable frame.
func (l *Loader) loadMonthFrame(mf models.MonthFile) (dataframe.DataFrame, int, error) {
	records, err := l.readRecords(mf.Path)
	if err != nil {
		return dataframe.DataFrame{}, 0, err
	}
	if got := len(records[0]); got != len(countColumns) {
		return dataframe.DataFrame{}, 0, &parsererror.ParseError{FilePath: mf.Path, Err: columnCountError(got)}
	}
	if len(records) == 1 {
		return dataframe.DataFrame{}, 0, nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, 0, &parsererror.ParseError{FilePath: mf.Path, Err: df.Err}
	}
	if err := df.SetNames(countColumns...); err != nil {
		return dataframe.DataFrame{}, 0, &parsererror.ParseError{FilePath: mf.Path, Err: err}
	}

	value, err := normalizeColumn(df, mf.Path, models.ColDifferenceValue)
	if err != nil {
		return dataframe.DataFrame{}, 0, err
	}
	quantity, err := normalizeColumn(df, mf.Path, models.ColDifference)
	if err != nil {
		return dataframe.DataFrame{}, 0, err
	}

	avg := make([]float64, len(value))
	month := make([]string, len(value))
	for i := range value {
		avg[i] = models.AveragePriceOf(value[i], quantity[i])
		month[i] = mf.Month.String()
	}

	df = df.Mutate(series.New(value, series.Float, models.ColDifferenceValue)).
		Mutate(series.New(quantity, series.Float, models.ColDifference)).
		Mutate(series.New(avg, series.Float, models.ColAveragePrice)).
		Mutate(series.New(month, series.String, models.ColMonth))
	if df.Err != nil {
		return dataframe.DataFrame{}, 0, &parsererror.ParseError{FilePath: mf.Path, Err: df.Err}
	}
	return df, df.Nrow(), nil
}

func normalizeColumn(df dataframe.DataFrame, path, column string) ([]float64, error) {
	raw := df.Col(column).Records()
	out := make([]float64, len(raw))
	for i, s := range raw {
		v, err := currencyutils.NormalizeLocaleNumber(s)
		if err != nil {
			return nil, &parsererror.NormalizationError{
				FilePath: path,
				Field:    column,
				Value:    s,
				Row:      i + 1,
				Err:      err,
			}
		}
		out[i] = v
	}
	return out, nil
}

// decodeRows converts a combined frame into typed rows.
func decodeRows(df dataframe.DataFrame) []models.CountRow {
	code := df.Col(models.ColCode).Records()
	description := df.Col(models.ColDescription).Records()
	location := df.Col(models.ColLocation).Records()
	stock := df.Col(models.ColStockBalance).Records()
	counted := df.Col(models.ColCountedQuantity).Records()
	difference := df.Col(models.ColDifference).Float()
	unit := df.Col(models.ColUnit).Records()
	stockValue := df.Col(models.ColStockValue).Records()
	countedValue := df.Col(models.ColCountedValue).Records()
	differenceValue := df.Col(models.ColDifferenceValue).Float()
	month := df.Col(models.ColMonth).Records()
	avg := df.Col(models.ColAveragePrice).Float()

	rows := make([]models.CountRow, df.Nrow())
	for i := range rows {
		rows[i] = models.CountRow{
			Code:            code[i],
			Description:     description[i],
			Location:        location[i],
			StockBalance:    stock[i],
			CountedQuantity: counted[i],
			Difference:      difference[i],
			Unit:            unit[i],
			StockValue:      stockValue[i],
			CountedValue:    countedValue[i],
			DifferenceValue: differenceValue[i],
			Month:           models.Month(month[i]),
			AveragePrice:    avg[i],
		}
	}
	return rows
}

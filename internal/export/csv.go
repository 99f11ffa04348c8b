package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"fjacquet/count-dashboard/internal/models"

	"github.com/gocarina/gocsv"
)

// WriteCSV writes rows with a header line, columns named as in the source extracts.
func WriteCSV(w io.Writer, rows []models.CountRow, delimiter rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delimiter

	if rows == nil {
		rows = []models.CountRow{}
	}
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	writer.Flush()
	return writer.Error()
}

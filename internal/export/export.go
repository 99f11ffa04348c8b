// Package export writes the filtered monthly table and its aggregates to CSV, XLSX and JSON.
package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"fjacquet/count-dashboard/internal/fileutils"
	"fjacquet/count-dashboard/internal/logging"
	"fjacquet/count-dashboard/internal/report"
)

// Supported output formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

// ContentType returns the MIME type of format.
func ContentType(format string) string {
	switch format {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatJSON:
		return "application/json"
	default:
		return "text/csv; charset=utf-8"
	}
}

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatCSV, FormatXLSX, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format: %q (must be '%s', '%s' or '%s')", s, FormatCSV, FormatXLSX, FormatJSON)
	}
}

// Exporter writes reports in a given format.
type Exporter struct {
	logger    logging.Logger
	delimiter rune
}

// NewExporter creates an Exporter. delimiter separates CSV fields.
func NewExporter(logger logging.Logger, delimiter rune) *Exporter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Exporter{logger: logger, delimiter: delimiter}
}

// Write encodes r to w in format.
func (e *Exporter) Write(w io.Writer, format string, r *report.Report) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, r.Rows, e.delimiter)
	case FormatXLSX:
		return WriteXLSX(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	default:
		return fmt.Errorf("unsupported export format: %q", format)
	}
}

// ToFile writes r to path in format, creating parent directories as needed. The file
// is only touched once encoding has succeeded.
func (e *Exporter) ToFile(path, format string, r *report.Report) error {
	start := time.Now()
	var buf bytes.Buffer
	if err := e.Write(&buf, format, r); err != nil {
		return fmt.Errorf("failed to export %s: %w", path, err)
	}
	if err := fileutils.WriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to export %s: %w", path, err)
	}

	e.logger.Info("Export written",
		logging.F(logging.FieldOutput, path),
		logging.F(logging.FieldCount, len(r.Rows)),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
	return nil
}

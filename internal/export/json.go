package export

import (
	"encoding/json"
	"fmt"
	"io"

	"fjacquet/count-dashboard/internal/report"
)

// WriteJSON writes r as indented JSON, the same document /api/report serves under "report".
func WriteJSON(w io.Writer, r *report.Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

// Package export writes the filtered monthly table to CSV, XLSX or JSON.
package export

import (
	"fmt"
	"io"

	"fjacquet/count-dashboard/cmd/root"
	"fjacquet/count-dashboard/internal/container"
	"fjacquet/count-dashboard/internal/dashboard"
	"fjacquet/count-dashboard/internal/export"
	"fjacquet/count-dashboard/internal/logging"
	"fjacquet/count-dashboard/internal/parsererror"
	"fjacquet/count-dashboard/internal/report"

	"github.com/spf13/cobra"
)

var (
	format   string
	months   []string
	products []string
	output   string
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the monthly table and its aggregates",
	Long: `Export the concatenated monthly table, filtered by month and product.
CSV holds the rows only; XLSX adds the month totals, the month x product
breakdown and the ABC curve as extra sheets; JSON is the full report document.`,
	RunE: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", export.FormatCSV, "Output format: csv, xlsx or json")
	Cmd.Flags().StringSliceVarP(&months, "month", "m", nil, "Month to include (repeatable, default: all)")
	Cmd.Flags().StringSliceVarP(&products, "product", "p", nil, "Product description to include (repeatable, default: all)")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	return Run(cmd.OutOrStdout(), cmd.ErrOrStderr(), root.AppContainer, f, output, report.NewFilter(months, products))
}

// Run loads the data once and exports the filtered report in format, to path when
// it is set and to w otherwise.
func Run(w, errw io.Writer, c *container.Container, format, path string, filter report.Filter) error {
	source := c.GetSource()
	res := source.Load()

	for _, msg := range dashboard.ErrorMessages(res, source.ReferencePath()) {
		_, _ = fmt.Fprintln(errw, msg)
	}
	if !res.Usable() {
		return fmt.Errorf("%s: %w", dashboard.FatalMessage, parsererror.ErrNoData)
	}

	rep := c.GetGenerator().Generate(res.Monthly, filter)
	c.GetLogger().Debug("Export data loaded",
		logging.F(logging.FieldCount, len(rep.Rows)),
		logging.F(logging.FieldStatus, fmt.Sprintf("%d of %d files failed", len(res.Errors), len(source.Months())+1)))
	if path != "" {
		err := c.GetExporter().ToFile(path, format, rep)
		if err == nil {
			c.GetMetrics().Rendered(format)
		}
		return err
	}
	if err := c.GetExporter().Write(w, format, rep); err != nil {
		return err
	}
	c.GetMetrics().Rendered(format)
	return nil
}

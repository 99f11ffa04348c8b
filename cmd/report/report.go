// Package report renders the dashboard to a standalone HTML file.
package report

import (
	"bytes"
	"fmt"
	"io"

	"fjacquet/count-dashboard/cmd/root"
	"fjacquet/count-dashboard/internal/container"
	"fjacquet/count-dashboard/internal/dashboard"
	"fjacquet/count-dashboard/internal/fileutils"
	"fjacquet/count-dashboard/internal/logging"
	"fjacquet/count-dashboard/internal/parsererror"
	"fjacquet/count-dashboard/internal/report"

	"github.com/spf13/cobra"
)

var (
	months   []string
	products []string
	output   string
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Render the dashboard to an HTML file",
	Long: `Load the configured files once and write the dashboard page, with the
given month and product selection applied, to a file or to stdout.`,
	RunE: reportFunc,
}

func init() {
	Cmd.Flags().StringSliceVarP(&months, "month", "m", nil, "Month to include (repeatable, default: all)")
	Cmd.Flags().StringSliceVarP(&products, "product", "p", nil, "Product description to include (repeatable, default: all)")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output HTML file (default: stdout)")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	filter := report.NewFilter(months, products)
	if output == "" {
		return Render(cmd.OutOrStdout(), cmd.ErrOrStderr(), root.AppContainer, filter)
	}

	return WriteFile(output, cmd.ErrOrStderr(), root.AppContainer, filter)
}

// WriteFile renders the page and writes it to path. An existing file is left alone
// unless rendering succeeds.
func WriteFile(path string, errw io.Writer, c *container.Container, filter report.Filter) error {
	var buf bytes.Buffer
	if err := Render(&buf, errw, c, filter); err != nil {
		return err
	}
	if err := fileutils.WriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	c.GetLogger().Info("Report written",
		logging.F(logging.FieldOutput, path),
		logging.F(logging.FieldCount, len(c.GetSource().Months())))
	return nil
}

// Render loads the data once and writes the static dashboard page to w. Load errors
// are printed to errw; when no report can be built the error wraps
// parsererror.ErrNoData and nothing is written.
func Render(w, errw io.Writer, c *container.Container, filter report.Filter) error {
	source := c.GetSource()
	res := source.Load()

	for _, msg := range dashboard.ErrorMessages(res, source.ReferencePath()) {
		_, _ = fmt.Fprintln(errw, msg)
	}
	if !res.Usable() {
		return fmt.Errorf("%s: %w", dashboard.FatalMessage, parsererror.ErrNoData)
	}

	rep := c.GetGenerator().Generate(res.Monthly, filter)
	view, err := dashboard.NewView(c.GetConfig().Report.Title, res, source.ReferencePath(), rep)
	if err != nil {
		return err
	}
	view.Static = true

	var buf bytes.Buffer
	if err := c.GetPage().Render(&buf, view); err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	c.GetMetrics().Rendered("file")
	return nil
}

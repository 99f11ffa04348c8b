// Package container provides dependency injection for the count dashboard.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/count-dashboard/internal/config"
	"fjacquet/count-dashboard/internal/dashboard"
	"fjacquet/count-dashboard/internal/export"
	"fjacquet/count-dashboard/internal/loader"
	"fjacquet/count-dashboard/internal/logging"
	"fjacquet/count-dashboard/internal/metrics"
	"fjacquet/count-dashboard/internal/report"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	metrics   *metrics.Metrics
	loader    *loader.Loader
	source    *loader.Source
	generator *report.Generator
	exporter  *export.Exporter
	page      *dashboard.Page
	handler   *dashboard.Handler
}

// NewContainer creates and wires all application dependencies.
// This is the main entry point for dependency injection in the application.
//
// Parameters:
//   - cfg: Application configuration
//
// Returns:
//   - *Container: Fully wired container with all dependencies
//   - error: Any error encountered during dependency creation
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger wires the dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	m := metrics.New()
	l := loader.NewFromConfig(cfg, logger, m)
	source := loader.NewSource(l, cfg.ReferencePath(), cfg.MonthFiles())
	generator := report.NewGenerator(cfg.Report, logger)
	exporter := export.NewExporter(logger, cfg.CSV.DelimiterRune())

	page, err := dashboard.NewPage(cfg.Report.PlotlyURL)
	if err != nil {
		return nil, err
	}
	handler := dashboard.NewHandler(source, generator, exporter, page, m, logger, cfg.Report.Title)

	logger.Info("Container initialized successfully",
		logging.F(logging.FieldFile, cfg.ReferencePath()),
		logging.F(logging.FieldCount, len(source.Months())))

	return &Container{
		logger:    logger,
		config:    cfg,
		metrics:   m,
		loader:    l,
		source:    source,
		generator: generator,
		exporter:  exporter,
		page:      page,
		handler:   handler,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetMetrics returns the Prometheus collectors.
func (c *Container) GetMetrics() *metrics.Metrics {
	return c.metrics
}

// GetLoader returns the file loader.
func (c *Container) GetLoader() *loader.Loader {
	return c.loader
}

// GetSource returns the loader bound to the configured files.
func (c *Container) GetSource() *loader.Source {
	return c.source
}

// GetGenerator returns the report generator.
func (c *Container) GetGenerator() *report.Generator {
	return c.generator
}

// GetExporter returns the CSV/XLSX exporter.
func (c *Container) GetExporter() *export.Exporter {
	return c.exporter
}

// GetPage returns the dashboard page renderer.
func (c *Container) GetPage() *dashboard.Page {
	return c.page
}

// GetHandler returns the HTTP handler.
func (c *Container) GetHandler() *dashboard.Handler {
	return c.handler
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Info("Container closed")
	return nil
}

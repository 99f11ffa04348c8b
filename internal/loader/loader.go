// Package loader reads the product reference table and the monthly count extracts from
// disk and combines the extracts into one normalized table.
package loader

import (
	"fmt"
	"time"

	"fjacquet/count-dashboard/internal/config"
	"fjacquet/count-dashboard/internal/logging"
	"fjacquet/count-dashboard/internal/models"
	"fjacquet/count-dashboard/internal/parsererror"

	"github.com/go-gota/gota/dataframe"
)

// Recorder receives load outcomes. The metrics package provides the Prometheus
// implementation.
type Recorder interface {
	LoadCompleted(usable bool)
	FileFailed(kind string)
}

type nopRecorder struct{}

func (nopRecorder) LoadCompleted(bool) {}
func (nopRecorder) FileFailed(string)  {}

// Result is the outcome of one load cycle.
type Result struct {
	// Products is nil when the reference table could not be loaded.
	Products *models.ProductTable
	// Monthly holds every row of every month that loaded, in calendar order of the
	// configured months. It is nil only when Products is nil.
	Monthly []models.CountRow
	// Errors lists every failure in the order it was encountered.
	Errors []error
}

// Usable reports whether a report can be built from the result.
func (r *Result) Usable() bool {
	return r != nil && r.Products != nil && len(r.Monthly) > 0
}

// Loader reads count files with a fixed delimiter and encoding.
type Loader struct {
	logger    logging.Logger
	delimiter rune
	encoding  string
	recorder  Recorder
}

// Option configures a Loader.
type Option func(*Loader)

// WithDelimiter sets the field delimiter. The default is ';'.
func WithDelimiter(d rune) Option {
	return func(l *Loader) { l.delimiter = d }
}

// WithEncoding sets the input encoding, config.EncodingLatin1 or config.EncodingUTF8.
func WithEncoding(enc string) Option {
	return func(l *Loader) { l.encoding = enc }
}

// WithRecorder sets the recorder notified of load outcomes.
func WithRecorder(r Recorder) Option {
	return func(l *Loader) {
		if r != nil {
			l.recorder = r
		}
	}
}

// New creates a Loader. A nil logger falls back to an info-level text logger.
func New(logger logging.Logger, opts ...Option) *Loader {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	l := &Loader{
		logger:    logger,
		delimiter: ';',
		encoding:  config.EncodingLatin1,
		recorder:  nopRecorder{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewFromConfig creates a Loader using the csv section of cfg.
func NewFromConfig(cfg *config.Config, logger logging.Logger, recorder Recorder) *Loader {
	return New(logger,
		WithDelimiter(cfg.CSV.DelimiterRune()),
		WithEncoding(cfg.CSV.Encoding),
		WithRecorder(recorder),
	)
}

// Load reads the reference table and every monthly file.
//
// A reference failure stops the load: the result has no tables and exactly one error.
// Monthly failures are isolated; the failing file is skipped and its error recorded.
// Months are combined in calendar order regardless of the order of months.
func (l *Loader) Load(referencePath string, months []models.MonthFile) *Result {
	start := time.Now()
	result := &Result{}

	products, err := l.LoadReference(referencePath)
	if err != nil {
		l.fail(result, err)
		l.recorder.LoadCompleted(false)
		return result
	}
	result.Products = products

	ordered := make([]models.MonthFile, len(months))
	copy(ordered, months)
	models.SortMonthFiles(ordered)

	var (
		merged dataframe.DataFrame
		first  = true
	)
	for _, mf := range ordered {
		df, rows, err := l.loadMonthFrame(mf)
		if err != nil {
			l.fail(result, err)
			continue
		}
		l.logger.WithField(logging.FieldMonth, mf.Month.String()).Info("Loaded monthly file",
			logging.F(logging.FieldFile, mf.Path),
			logging.F(logging.FieldCount, rows))
		if rows == 0 {
			continue
		}
		if first {
			merged = df
			first = false
		} else {
			merged = merged.RBind(df)
		}
	}

	result.Monthly = []models.CountRow{}
	if !first {
		if merged.Err != nil {
			l.fail(result, fmt.Errorf("failed to combine monthly tables: %w", merged.Err))
		} else {
			result.Monthly = decodeRows(merged)
		}
	}

	l.logger.Info("Load completed",
		logging.F(logging.FieldCount, len(result.Monthly)),
		logging.F(logging.FieldStatus, statusOf(result)),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
	l.recorder.LoadCompleted(result.Usable())
	return result
}

// LoadReference reads the product reference table. Its contents are not interpreted.
func (l *Loader) LoadReference(path string) (*models.ProductTable, error) {
	records, err := l.readRecords(path)
	if err != nil {
		return nil, err
	}

	table := &models.ProductTable{Columns: records[0], Rows: records[1:]}
	l.logger.Info("Loaded reference file",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, table.Len()))
	return table, nil
}

func (l *Loader) fail(result *Result, err error) {
	kind := parsererror.Kind(err)
	l.logger.WithError(err).Warn("Failed to load file",
		logging.F(logging.FieldFile, parsererror.FilePath(err)),
		logging.F(logging.FieldKind, kind))
	l.recorder.FileFailed(kind)
	result.Errors = append(result.Errors, err)
}

func statusOf(r *Result) string {
	switch {
	case r.Usable() && len(r.Errors) == 0:
		return "ok"
	case r.Usable():
		return "partial"
	default:
		return "unusable"
	}
}

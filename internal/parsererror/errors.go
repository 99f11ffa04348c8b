// Package parsererror defines the error taxonomy of the data loader.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrNoData reports that no report can be built: the reference table is unavailable or
// the combined monthly table is empty.
var ErrNoData = errors.New("no usable data loaded")

// Error kinds, used as metric labels and log fields.
const (
	KindMissing       = "missing"
	KindParse         = "parse"
	KindNormalization = "normalization"
	KindOther         = "other"
)

// MissingFileError reports an input file that does not exist.
type MissingFileError struct {
	FilePath string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("file not found: %s", e.FilePath)
}

// ParseError reports an input file that exists but could not be read as a table.
type ParseError struct {
	FilePath string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.FilePath, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NormalizationError reports a locale-formatted numeric cell that did not parse.
// Row is the 1-based data row, header excluded.
type NormalizationError struct {
	FilePath string
	Field    string
	Value    string
	Row      int
	Err      error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("%s: failed to normalize %s='%s' at row %d: %v",
		e.FilePath, e.Field, e.Value, e.Row, e.Err)
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}

// Kind classifies err into one of the Kind constants.
func Kind(err error) string {
	var missing *MissingFileError
	var norm *NormalizationError
	var parse *ParseError
	switch {
	case errors.As(err, &missing):
		return KindMissing
	case errors.As(err, &norm):
		return KindNormalization
	case errors.As(err, &parse):
		return KindParse
	default:
		return KindOther
	}
}

// FilePath returns the file an error refers to, or "" if it carries none.
func FilePath(err error) string {
	var missing *MissingFileError
	var norm *NormalizationError
	var parse *ParseError
	switch {
	case errors.As(err, &missing):
		return missing.FilePath
	case errors.As(err, &norm):
		return norm.FilePath
	case errors.As(err, &parse):
		return parse.FilePath
	default:
		return ""
	}
}

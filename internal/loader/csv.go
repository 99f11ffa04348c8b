package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"fjacquet/count-dashboard/internal/config"
	"fjacquet/count-dashboard/internal/fileutils"
	"fjacquet/count-dashboard/internal/parsererror"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var errEmptyFile = errors.New("file is empty")

// readRecords reads every record of a delimited file, header included. A missing file
// yields a MissingFileError; anything else that prevents a table from being read yields
// a ParseError. The result always holds at least the header record, and every data
// record is padded with empty cells to the header width. A record wider than the header
// is a ParseError.
func (l *Loader) readRecords(path string) ([][]string, error) {
	if !fileutils.FileExists(path) {
		return nil, &parsererror.MissingFileError{FilePath: path}
	}

	f, err := os.Open(path) // #nosec G304 -- paths come from configuration
	if err != nil {
		return nil, &parsererror.ParseError{FilePath: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			l.logger.WithError(cerr).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(l.decode(f))
	reader.Comma = l.delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &parsererror.ParseError{FilePath: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &parsererror.ParseError{FilePath: path, Err: errEmptyFile}
	}

	width := len(records[0])
	for i := 1; i < len(records); i++ {
		switch n := len(records[i]); {
		case n > width:
			return nil, &parsererror.ParseError{FilePath: path, Err: fieldCountError(i+1, width, n)}
		case n < width:
			padded := make([]string, width)
			copy(padded, records[i])
			records[i] = padded
		}
	}
	return records, nil
}

func fieldCountError(record, want, got int) error {
	return fmt.Errorf("record %d: expected %d fields, saw %d", record, want, got)
}

func (l *Loader) decode(r io.Reader) io.Reader {
	if l.encoding == config.EncodingUTF8 {
		return r
	}
	return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
}

func columnCountError(got int) error {
	return fmt.Errorf("expected %d columns, found %d", len(countColumns), got)
}

package parsererror

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingFileError(t *testing.T) {
	err := &MissingFileError{FilePath: "dados/produtos.csv"}
	assert.Equal(t, "file not found: dados/produtos.csv", err.Error())
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name:     "malformed csv",
			err:      &ParseError{FilePath: "dados/jan.csv", Err: errors.New("wrong number of fields")},
			expected: "failed to parse dados/jan.csv: wrong number of fields",
		},
		{
			name:     "empty file",
			err:      &ParseError{FilePath: "dados/fev.CSV", Err: errors.New("no columns to parse")},
			expected: "failed to parse dados/fev.CSV: no columns to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	parseErr := &ParseError{FilePath: "x.csv", Err: originalErr}

	assert.Equal(t, originalErr, parseErr.Unwrap())
	assert.True(t, errors.Is(parseErr, originalErr))
}

func TestNormalizationError(t *testing.T) {
	_, cause := strconv.ParseFloat("abc", 64)
	err := &NormalizationError{
		FilePath: "dados/mar.CSV",
		Field:    "Diferença",
		Value:    "abc",
		Row:      7,
		Err:      cause,
	}

	assert.Contains(t, err.Error(), "dados/mar.CSV: failed to normalize Diferença='abc' at row 7")
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
}

func TestKindAndFilePath(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind string
		path string
	}{
		{"missing", &MissingFileError{FilePath: "a.csv"}, KindMissing, "a.csv"},
		{"parse", &ParseError{FilePath: "b.csv", Err: errors.New("x")}, KindParse, "b.csv"},
		{"normalization", &NormalizationError{FilePath: "c.csv", Err: errors.New("x")}, KindNormalization, "c.csv"},
		{"wrapped parse", fmt.Errorf("loading: %w", &ParseError{FilePath: "d.csv", Err: errors.New("x")}), KindParse, "d.csv"},
		{"other", errors.New("plain"), KindOther, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, Kind(tt.err))
			assert.Equal(t, tt.path, FilePath(tt.err))
		})
	}
}

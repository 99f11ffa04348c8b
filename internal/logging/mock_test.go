package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	mock := NewMockLogger()

	mock.Info("start")
	mock.WithField(FieldMonth, "fev").Warn("skipped")
	mock.WithError(errors.New("boom")).WithFields(F(FieldFile, "dados/fev.CSV")).Error("failed")

	entries := mock.GetEntries()
	require.Len(t, entries, 3)

	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "WARN", entries[1].Level)
	month, ok := entries[1].FieldValue(FieldMonth)
	assert.True(t, ok)
	assert.Equal(t, "fev", month)

	assert.Equal(t, "ERROR", entries[2].Level)
	assert.EqualError(t, entries[2].Error, "boom")
	file, ok := entries[2].FieldValue(FieldFile)
	assert.True(t, ok)
	assert.Equal(t, "dados/fev.CSV", file)
}

func TestMockLogger_LevelsAndClear(t *testing.T) {
	mock := &MockLogger{}

	mock.Debug("a")
	mock.Error("b")
	mock.Error("c")

	assert.Len(t, mock.GetEntriesByLevel("ERROR"), 2)
	assert.True(t, mock.HasEntry("DEBUG", "a"))
	assert.False(t, mock.HasEntry("INFO", "a"))

	mock.Clear()
	assert.Empty(t, mock.GetEntries())
}

func TestMockLogger_ImplementsInterface(t *testing.T) {
	var _ Logger = (*MockLogger)(nil)
}

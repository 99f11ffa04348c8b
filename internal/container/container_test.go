package container

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"fjacquet/count-dashboard/internal/config"
	"fjacquet/count-dashboard/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Log:    config.LogConfig{Level: "info", Format: "text"},
		Data:   config.DataConfig{Directory: dir, ReferenceFile: "produtos.csv", Months: config.DefaultMonthFiles()},
		CSV:    config.CSVConfig{Delimiter: ";", Encoding: config.EncodingLatin1},
		Report: config.ReportConfig{Title: "Análise de Fechamento A&B", TopN: 30, CurrencySymbol: "R$"},
		Server: config.ServerConfig{Address: ":8501"},
	}
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      nil,
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "default layout",
			config: testConfig("dados"),
		},
		{
			name: "json logging",
			config: func() *config.Config {
				c := testConfig("dados")
				c.Log = config.LogConfig{Level: "debug", Format: "json"}
				return c
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(tt.config)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
			assert.NotNil(t, c.GetLogger())
			assert.Same(t, tt.config, c.GetConfig())
			assert.NotNil(t, c.GetMetrics())
			assert.NotNil(t, c.GetLoader())
			assert.NotNil(t, c.GetGenerator())
			assert.NotNil(t, c.GetExporter())
			assert.NotNil(t, c.GetPage())
			assert.NotNil(t, c.GetHandler())
			assert.NoError(t, c.Close())
		})
	}
}

func TestNewContainerWithLogger(t *testing.T) {
	logger := logging.NewMockLogger()
	dir := t.TempDir()

	c, err := NewContainerWithLogger(testConfig(dir), logger)
	require.NoError(t, err)
	assert.True(t, logger.HasEntry("INFO", "Container initialized successfully"))

	src := c.GetSource()
	assert.Equal(t, filepath.Join(dir, "produtos.csv"), src.ReferencePath())
	require.Len(t, src.Months(), 6)

	res := src.Load()
	assert.False(t, res.Usable(), "the temp directory holds no data")
	require.Len(t, res.Errors, 1)

	_, err = NewContainerWithLogger(testConfig(dir), nil)
	assert.Error(t, err)
}

func TestContainer_HandlerServes(t *testing.T) {
	c, err := NewContainerWithLogger(testConfig(t.TempDir()), logging.NewMockLogger())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c.GetHandler().Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	c.GetHandler().Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"fjacquet/count-dashboard/internal/fileutils"
	"fjacquet/count-dashboard/internal/logging"
	"fjacquet/count-dashboard/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Supported input encodings.
const (
	EncodingLatin1 = "latin1"
	EncodingUTF8   = "utf8"
)

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Data   DataConfig   `mapstructure:"data" yaml:"data"`
	CSV    CSVConfig    `mapstructure:"csv" yaml:"csv"`
	Report ReportConfig `mapstructure:"report" yaml:"report"`
	Server ServerConfig `mapstructure:"server" yaml:"server"`
}

// LogConfig selects log verbosity and output format.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DataConfig locates the reference table and the monthly extracts.
type DataConfig struct {
	Directory     string             `mapstructure:"directory" yaml:"directory"`
	ReferenceFile string             `mapstructure:"reference_file" yaml:"reference_file"`
	Months        []models.MonthFile `mapstructure:"months" yaml:"months"`
}

// CSVConfig describes how input files are encoded.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	Encoding  string `mapstructure:"encoding" yaml:"encoding"`
}

// ReportConfig tunes the rendered report.
type ReportConfig struct {
	Title          string `mapstructure:"title" yaml:"title"`
	TopN           int    `mapstructure:"top_n" yaml:"top_n"`
	CurrencySymbol string `mapstructure:"currency_symbol" yaml:"currency_symbol"`
	// PlotlyURL is the plotly.js bundle the page loads. Point it at a local copy on
	// hosts without internet access.
	PlotlyURL string `mapstructure:"plotly_url" yaml:"plotly_url"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Address         string        `mapstructure:"address" yaml:"address"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// DefaultMonthFiles is the month layout of the default data directory. File name
// casing is kept as delivered.
func DefaultMonthFiles() []models.MonthFile {
	return []models.MonthFile{
		{Month: models.Jan, Path: "jan.csv"},
		{Month: models.Fev, Path: "fev.CSV"},
		{Month: models.Mar, Path: "mar.CSV"},
		{Month: models.Abr, Path: "abr.CSV"},
		{Month: models.Mai, Path: "mai.CSV"},
		{Month: models.Jun, Path: "jun.CSV"},
	}
}

// Load initializes Viper configuration with hierarchical loading:
// defaults, then the config file, then DASHBOARD_* environment variables.
// An explicit configFile must exist; otherwise a missing file is not an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(".count-dashboard")
		v.AddConfigPath("$HOME/.count-dashboard")
	}

	v.SetEnvPrefix("DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// LOG_LEVEL and LOG_FORMAT predate the prefixed names and are still honored.
	if err := v.BindEnv("log.level", "DASHBOARD_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind log level: %w", err)
	}
	if err := v.BindEnv("log.format", "DASHBOARD_LOG_FORMAT", "LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind log format: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.normalize()
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "dados")
	v.SetDefault("data.reference_file", "produtos.csv")
	v.SetDefault("data.months", DefaultMonthFiles())

	v.SetDefault("csv.delimiter", ";")
	v.SetDefault("csv.encoding", EncodingLatin1)

	v.SetDefault("report.title", "Análise de Fechamento A&B")
	v.SetDefault("report.top_n", 30)
	v.SetDefault("report.currency_symbol", "R$")
	v.SetDefault("report.plotly_url", "https://cdn.plot.ly/plotly-2.35.2.min.js")

	v.SetDefault("server.address", ":8501")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
}

func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.CSV.Encoding = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(c.CSV.Encoding), "-", ""))
	if c.CSV.Encoding == "iso88591" {
		c.CSV.Encoding = EncodingLatin1
	}
	for i := range c.Data.Months {
		c.Data.Months[i].Month = models.Month(strings.ToLower(strings.TrimSpace(string(c.Data.Months[i].Month))))
	}
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.CSV.Encoding != EncodingLatin1 && config.CSV.Encoding != EncodingUTF8 {
		return fmt.Errorf("csv.encoding must be '%s' or '%s', got: %s", EncodingLatin1, EncodingUTF8, config.CSV.Encoding)
	}

	if config.Data.ReferenceFile == "" {
		return fmt.Errorf("data.reference_file is required")
	}

	seen := make(map[models.Month]bool, len(config.Data.Months))
	for _, mf := range config.Data.Months {
		if !mf.Month.Valid() {
			return fmt.Errorf("data.months: unknown month label %q", mf.Month)
		}
		if seen[mf.Month] {
			return fmt.Errorf("data.months: month %q listed twice", mf.Month)
		}
		seen[mf.Month] = true
		if mf.Path == "" {
			return fmt.Errorf("data.months: month %q has no file", mf.Month)
		}
	}

	if config.Report.TopN < 1 {
		return fmt.Errorf("report.top_n must be at least 1, got: %d", config.Report.TopN)
	}
	if config.Report.PlotlyURL != "" {
		if _, err := url.Parse(config.Report.PlotlyURL); err != nil {
			return fmt.Errorf("report.plotly_url: %w", err)
		}
	}

	return nil
}

// DelimiterRune returns the configured delimiter as a rune.
func (c CSVConfig) DelimiterRune() rune {
	return []rune(c.Delimiter)[0]
}

// ReferencePath returns the reference table path resolved against the data directory.
func (c *Config) ReferencePath() string {
	return fileutils.ResolvePath(c.Data.Directory, c.Data.ReferenceFile)
}

// MonthFiles returns the configured extracts in calendar order, paths resolved against
// the data directory.
func (c *Config) MonthFiles() []models.MonthFile {
	out := make([]models.MonthFile, len(c.Data.Months))
	for i, mf := range c.Data.Months {
		out[i] = models.MonthFile{
			Month: mf.Month,
			Path:  fileutils.ResolvePath(c.Data.Directory, mf.Path),
		}
	}
	models.SortMonthFiles(out)
	return out
}

// ConfigureLoggingFromConfig builds the application logger from the log section.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}

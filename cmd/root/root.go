// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/count-dashboard/internal/config"
	"fjacquet/count-dashboard/internal/container"
	"fjacquet/count-dashboard/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// ConfigFile is the explicit configuration file given with --config.
	ConfigFile string

	// DataDir overrides data.directory when set.
	DataDir string

	// AppConfig is the configuration loaded before any subcommand runs.
	AppConfig *config.Config

	// AppContainer holds the wired dependencies for subcommands.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "count-dashboard",
		Short: "Inventory count dashboard for monthly stock-count extracts.",
		Long: `count-dashboard loads a reference product table and the monthly
inventory-count CSV extracts, and reports the count differences by month and
product: ABC curve, monthly totals and the month x product breakdowns.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to count-dashboard!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				_ = AppContainer.Close()
			}
		},
	}
)

// Init registers the persistent flags. Calling it more than once is harmless.
func Init() {
	flags := Cmd.PersistentFlags()
	if flags.Lookup("config") != nil {
		return
	}
	flags.StringVarP(&ConfigFile, "config", "c", "", "Configuration file (default: ./config.yaml)")
	flags.StringVarP(&DataDir, "data-dir", "d", "", "Directory holding the reference table and the monthly files")
}

// Setup loads the environment and configuration and wires the container.
func Setup() error {
	if _, err := config.LoadEnv(); err != nil {
		Log.WithError(err).Warn("Failed to load .env file")
	}

	cfg, err := config.Load(ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if DataDir != "" {
		cfg.Data.Directory = DataDir
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

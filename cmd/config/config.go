// Package config prints the effective configuration.
package config

import (
	"fmt"
	"io"

	"fjacquet/count-dashboard/cmd/root"
	appconfig "fjacquet/count-dashboard/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after defaults, config file, .env and
DASHBOARD_* environment variables have been applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Print(cmd.OutOrStdout(), root.AppConfig)
	},
}

// Print writes cfg to w as YAML.
func Print(w io.Writer, cfg *appconfig.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return enc.Close()
}

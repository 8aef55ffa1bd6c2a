package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pulsekit/pulse/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View pulse configuration",
	Long: `View pulse configuration.

Without arguments, displays the current configuration. Keys use dot
notation and can be overridden via PULSE_-prefixed environment variables,
e.g. PULSE_HUB_POLICY=from-zero.

Valid keys:
  hub.policy          - Notification policy: ` + strings.Join(config.ValidPolicies(), ", ") + `
  logging.enabled     - Write structured logs (true/false)
  logging.level       - Minimum log level: debug, info, warn, error
  logging.dir         - Log directory (empty logs to stderr)
  logging.max_size_mb - Log size before rotation
  logging.max_backups - Rotated files to keep
  logging.compress    - Gzip rotated files (true/false)
  demo.subscribers    - Display names for the observe demo
  demo.states         - State sequence for the observe demo`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "hub:")
	fmt.Fprintf(out, "  policy: %s\n", cfg.Hub.Policy)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  dir: %s\n", cfg.Logging.Dir)
	fmt.Fprintf(out, "  max_size_mb: %d\n", cfg.Logging.MaxSizeMB)
	fmt.Fprintf(out, "  max_backups: %d\n", cfg.Logging.MaxBackups)
	fmt.Fprintf(out, "  compress: %v\n", cfg.Logging.Compress)

	fmt.Fprintln(out, "demo:")
	fmt.Fprintf(out, "  subscribers: %s\n", strings.Join(cfg.Demo.Subscribers, ", "))
	fmt.Fprintf(out, "  states: %v\n", cfg.Demo.States)

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintln(cmd.OutOrStdout(), used)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), config.ConfigFile())
	return nil
}

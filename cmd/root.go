// =============================================================================
// Report Cleaner - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (reportclean)
//   ├── processCmd (reportclean process <raw_file> <b|s>)
//   ├── schemaCmd  (reportclean schema <bookings|sales>)
//   └── versionCmd (reportclean version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ginjaninja78/report-cleaner/internal/config"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// defaultConfigFile is used when --config is not given. It may be absent.
const defaultConfigFile = "config.yaml"

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "reportclean",
	Short: "Clean booking and sales exports for bulk upload",
	Long: `reportclean validates a vendor-exported bookings or sales report against
its fixed schema, normalizes amounts and identifiers, and writes a cleaned
CSV together with the COPY statement that loads it.

Example Usage:
  reportclean process export.csv b     # clean a bookings export
  reportclean process export.csv s     # clean a sales export
  reportclean schema bookings          # show the expected columns`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		defaultConfigFile,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadConfig loads the configuration named by --config. The default file
// is optional; an explicitly named one must exist.
func loadConfig(cmd *cobra.Command) (*config.MainConfig, error) {
	optional := !cmd.Flags().Changed("config")
	mainConfig, err := config.LoadMainConfig(cfgFile, optional)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return mainConfig, nil
}

// newLogger builds the slog logger described by the configuration. The
// returned closer releases the log file, if one was opened.
func newLogger(mainConfig *config.MainConfig, stderr io.Writer) (*slog.Logger, func() error, error) {
	level := parseLevel(mainConfig.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}

	out := stderr
	closer := func() error { return nil }
	if mainConfig.LogFile != "" {
		f, err := os.OpenFile(mainConfig.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closer, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

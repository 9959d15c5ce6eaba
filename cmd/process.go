// =============================================================================
// Report Cleaner - Process Command
// =============================================================================
//
// This file defines the 'process' command, which cleans one export.
//
// COMMAND USAGE:
//   reportclean process <raw_file> <b|s> [flags]
//
// FLAGS:
//   --dry-run     : Validate and print the load statement, write nothing
//   --output-dir  : Directory for <kind>.csv and <kind>.sql
//   --archive-dir : Move the raw export here after a successful run
//
// The selector is resolved through the configured sources table before
// the file is even opened; an unknown selector never reaches the cleaner.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/report-cleaner/internal/converter"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dryRun renders the artifacts without writing them.
var dryRun bool

// outputDir overrides output_dir from the configuration.
var outputDir string

// archiveDir overrides input_archive_dir from the configuration.
var archiveDir string

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

var processCmd = &cobra.Command{
	Use:   "process <raw_file> <b|s>",
	Short: "Clean a raw export and write the upload artifacts",
	Long: `The process command reads a raw export (CSV, or XLSX by extension), keeps
only the expected columns, validates and normalizes the rows, and writes:

  <kind>.csv   the cleaned table, canonical field names in the header
  <kind>.sql   the COPY statement that loads it

The second argument selects the report: "b" for bookings, "s" for sales.
Any error aborts the run and no artifact is written.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Validate and print the load statement without writing files",
	)

	processCmd.Flags().StringVar(
		&outputDir,
		"output-dir",
		"",
		"Directory for the generated files (default from config)",
	)

	processCmd.Flags().StringVar(
		&archiveDir,
		"archive-dir",
		"",
		"Move the raw export here after a successful run",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

func runProcess(cmd *cobra.Command, rawFile, selector string) error {
	mainConfig, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if outputDir != "" {
		mainConfig.OutputDir = outputDir
	}
	if archiveDir != "" {
		mainConfig.InputArchiveDir = archiveDir
	}

	kind, err := mainConfig.ResolveSource(selector)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(mainConfig, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	conv := converter.New(rawFile, kind, mainConfig,
		converter.WithLogger(logger),
		converter.WithDryRun(dryRun),
	)
	result := conv.Run()
	if !result.Success {
		return result.Error
	}

	out := cmd.OutOrStdout()
	if dryRun {
		fmt.Fprintln(out, result.Artifact.Statement)
		return nil
	}

	fmt.Fprintf(out, "  ✓ %s -> %s, %s (%d rows)\n",
		rawFile, result.Artifact.CSVPath, result.Artifact.SQLPath, result.Artifact.Rows)
	return nil
}

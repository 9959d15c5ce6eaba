package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/report-cleaner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testdata = filepath.Join("..", "internal", "converter", "testdata")

// execute runs the root command with args and returns stdout and stderr.
// Flag variables are package globals, so they are reset first.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfgFile = defaultConfigFile
	verbose = false
	dryRun = false
	outputDir = ""
	archiveDir = ""
	rootCmd.PersistentFlags().Lookup("config").Changed = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "reportclean\n")
	assert.Contains(t, out, "Version:    "+Version)
}

func TestSchemaCommand(t *testing.T) {
	out, _, err := execute(t, "schema", "sales")
	require.NoError(t, err)
	assert.Contains(t, out, "ID de reserva")
	assert.Contains(t, out, "-> booking_id")
	assert.Contains(t, out, "identifier fields: id, booking_id")
	assert.NotContains(t, out, "integer columns")

	_, _, err = execute(t, "schema", "refunds")
	assert.ErrorIs(t, err, types.ErrInvalidDestination)
}

func TestProcessCommand(t *testing.T) {
	dir := t.TempDir()
	out, _, err := execute(t, "process", filepath.Join(testdata, "valid_sales.csv"), "s", "--output-dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "(1 rows)")
	assert.FileExists(t, filepath.Join(dir, "sales.csv"))
	assert.FileExists(t, filepath.Join(dir, "sales.sql"))
}

func TestProcessCommand_DryRun(t *testing.T) {
	dir := t.TempDir()
	out, _, err := execute(t, "process", filepath.Join(testdata, "valid_bookings.csv"), "b", "--output-dir", dir, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "COPY bookings(id,cancelled,")
	assert.Contains(t, out, "CSV HEADER;\n")
	assert.NoFileExists(t, filepath.Join(dir, "bookings.csv"))
}

func TestProcessCommand_Errors(t *testing.T) {
	_, _, err := execute(t, "process", filepath.Join(testdata, "valid_sales.csv"), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid source "x"`)

	_, stderr, err := execute(t, "process", filepath.Join(testdata, "nan_ids_between_sales.csv"), "s", "--output-dir", t.TempDir())
	assert.ErrorIs(t, err, types.ErrMissingIdentifier)
	assert.Contains(t, stderr, "Processing failed")

	_, _, err = execute(t, "process", "--config", filepath.Join(t.TempDir(), "absent.yaml"),
		filepath.Join(testdata, "valid_sales.csv"), "s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")

	_, _, err = execute(t, "process", "only-one-arg")
	assert.Error(t, err)
}

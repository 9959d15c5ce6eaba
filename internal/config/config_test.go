package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/report-cleaner/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, ".", c.OutputDir)
	assert.Equal(t, "/home/redash", c.UploadDir)
	assert.Empty(t, c.InputArchiveDir)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, map[string]schema.Kind{"b": schema.Bookings, "s": schema.Sales}, c.Sources)
	assert.Equal(t, ",", c.CSVSettings.Delimiter)
	assert.Equal(t, 2, c.CSVSettings.HeaderRow)
	assert.Equal(t, "UTF-8", c.CSVSettings.Encoding)
	assert.Equal(t, []string{""}, c.CSVSettings.NullValues)
	assert.True(t, c.CSVSettings.ShouldNormalizeHeaders())
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
output_dir: /tmp/out
upload_dir: /var/lib/uploads
log_level: debug
archive_by_date: true
sources:
  bk: bookings
csv_settings:
  delimiter: ";"
  encoding: windows-1252
  null_values: ["", "-"]
  normalize_headers: false
`))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/out", c.OutputDir)
	assert.Equal(t, "/var/lib/uploads", c.UploadDir)
	assert.Equal(t, "debug", c.LogLevel)
	assert.True(t, c.ArchiveByDate)
	assert.Equal(t, map[string]schema.Kind{"bk": schema.Bookings}, c.Sources)
	assert.Equal(t, ";", c.CSVSettings.Delimiter)
	assert.Equal(t, 2, c.CSVSettings.HeaderRow)
	assert.Equal(t, "windows-1252", c.CSVSettings.Encoding)
	assert.Equal(t, []string{"", "-"}, c.CSVSettings.NullValues)
	assert.False(t, c.CSVSettings.ShouldNormalizeHeaders())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown kind", "sources:\n  x: refunds\n", `unknown report kind "refunds"`},
		{"header row", "csv_settings:\n  header_row: -1\n", "header_row must be at least 1"},
		{"log level", "log_level: loud\n", `unknown log_level "loud"`},
		{"bad yaml", "sources: [\n", "failed to parse config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMainConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: out\n"), 0644))

	c, err := LoadMainConfig(path, false)
	require.NoError(t, err)
	assert.Equal(t, "out", c.OutputDir)
	assert.Equal(t, "/home/redash", c.UploadDir)
}

func TestLoadMainConfig_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	c, err := LoadMainConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = LoadMainConfig(path, false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveSource(t *testing.T) {
	c := Default()

	kind, err := c.ResolveSource("b")
	require.NoError(t, err)
	assert.Equal(t, schema.Bookings, kind)

	kind, err = c.ResolveSource("s")
	require.NoError(t, err)
	assert.Equal(t, schema.Sales, kind)

	_, err = c.ResolveSource("x")
	require.Error(t, err)
	assert.Equal(t, `invalid source "x" (choose from b, s)`, err.Error())
}

// =============================================================================
// Report Cleaner - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file and
// fills in defaults for anything left out.
//
// CONFIGURATION FILE (config.yaml):
//   output_dir: "."
//   upload_dir: "/home/redash"
//   input_archive_dir: ""
//   archive_by_date: false
//   log_level: "info"
//   log_file: ""
//   sources:
//     b: bookings
//     s: sales
//   csv_settings:
//     delimiter: ","
//     header_row: 2
//     encoding: "UTF-8"
//     null_values: [""]
//     normalize_headers: true
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/ginjaninja78/report-cleaner/internal/schema"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// OutputDir is where <kind>.csv and <kind>.sql are written.
	// Default: "."
	OutputDir string `yaml:"output_dir"`

	// UploadDir is the directory the load statement reads the CSV from on
	// the database host.
	// Default: "/home/redash"
	UploadDir string `yaml:"upload_dir"`

	// InputArchiveDir receives the raw input after a successful run.
	// Empty disables archival.
	InputArchiveDir string `yaml:"input_archive_dir"`

	// ArchiveByDate files archived inputs under YYYY/MM/DD subdirectories.
	ArchiveByDate bool `yaml:"archive_by_date"`

	// LogFile is the path to the log file. Empty logs to stderr.
	LogFile string `yaml:"log_file"`

	// LogLevel is one of debug, info, warn, error.
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Sources maps a command-line selector to a report kind.
	// Default: {b: bookings, s: sales}
	Sources map[string]schema.Kind `yaml:"sources"`

	// CSVSettings controls how raw exports are read.
	CSVSettings CSVSettings `yaml:"csv_settings"`
}

// CSVSettings contains settings for reading raw exports.
type CSVSettings struct {
	// Delimiter is the field separator. "tab", "pipe" and "semicolon" are
	// accepted as names.
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// HeaderRow is the 1-based line holding the column names. Lines
	// before it are a preamble and are skipped.
	// Default: 2
	HeaderRow int `yaml:"header_row"`

	// Encoding is a WHATWG encoding label, e.g. "UTF-8", "windows-1252".
	// Default: "UTF-8"
	Encoding string `yaml:"encoding"`

	// NullValues are cell contents (after trimming) read as null.
	// Default: [""]
	NullValues []string `yaml:"null_values"`

	// NormalizeHeaders rewrites header names to Unicode NFC so that
	// decomposed accents still match the schema maps.
	// Default: true
	NormalizeHeaders *bool `yaml:"normalize_headers"`
}

// ShouldNormalizeHeaders reports whether headers are NFC-normalized.
func (s CSVSettings) ShouldNormalizeHeaders() bool {
	return s.NormalizeHeaders == nil || *s.NormalizeHeaders
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *MainConfig {
	var config MainConfig
	applyMainConfigDefaults(&config)
	return &config
}

// LoadMainConfig loads the main configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - optional:   When true, a missing file yields the defaults.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - An error if the file cannot be read, parsed, or is invalid.
func LoadMainConfig(configPath string, optional bool) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration bytes, applies defaults and validates.
func Parse(data []byte) (*MainConfig, error) {
	var config MainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyMainConfigDefaults(&config)

	if err := validateMainConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyMainConfigDefaults sets default values for unset fields.
func applyMainConfigDefaults(config *MainConfig) {
	if config.OutputDir == "" {
		config.OutputDir = "."
	}
	if config.UploadDir == "" {
		config.UploadDir = "/home/redash"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if len(config.Sources) == 0 {
		config.Sources = map[string]schema.Kind{
			"b": schema.Bookings,
			"s": schema.Sales,
		}
	}

	s := &config.CSVSettings
	if s.Delimiter == "" {
		s.Delimiter = ","
	}
	if s.HeaderRow == 0 {
		s.HeaderRow = 2
	}
	if s.Encoding == "" {
		s.Encoding = "UTF-8"
	}
	if s.NullValues == nil {
		s.NullValues = []string{""}
	}
}

// validateMainConfig validates the main configuration.
func validateMainConfig(config *MainConfig) error {
	for selector, kind := range config.Sources {
		if _, err := schema.ParseKind(string(kind)); err != nil {
			return fmt.Errorf("source %q: unknown report kind %q", selector, kind)
		}
	}

	if config.CSVSettings.HeaderRow < 1 {
		return fmt.Errorf("csv_settings.header_row must be at least 1")
	}

	switch strings.ToLower(config.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}

	return nil
}

// =============================================================================
// SOURCE SELECTION
// =============================================================================

// ResolveSource maps a command-line selector to its report kind.
func (c *MainConfig) ResolveSource(selector string) (schema.Kind, error) {
	kind, ok := c.Sources[selector]
	if !ok {
		return "", fmt.Errorf("invalid source %q (choose from %s)", selector, strings.Join(c.Selectors(), ", "))
	}
	return kind, nil
}

// Selectors returns the configured selectors, sorted.
func (c *MainConfig) Selectors() []string {
	selectors := make([]string, 0, len(c.Sources))
	for s := range c.Sources {
		selectors = append(selectors, s)
	}
	sort.Strings(selectors)
	return selectors
}

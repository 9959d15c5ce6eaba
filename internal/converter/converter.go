// =============================================================================
// Report Cleaner - Converter Module
// =============================================================================
//
// This module orchestrates the cleaning pipeline for a single export.
//
// CONVERSION PIPELINE:
//   1. Read the raw export (CSV, or XLSX by extension)
//   2. Project it through the report's Schema Map
//   3. Validate row invariants (integer columns, summary row, ids)
//   4. Normalize amounts and identifiers
//   5. Write <kind>.csv and <kind>.sql (or render them, on a dry run)
//   6. Archive the raw export, if configured
//
// Data flows strictly forward and every error aborts the run before any
// artifact is written.
//
// =============================================================================

package converter

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/ginjaninja78/report-cleaner/internal/config"
	"github.com/ginjaninja78/report-cleaner/internal/csvparser"
	"github.com/ginjaninja78/report-cleaner/internal/schema"
	"github.com/ginjaninja78/report-cleaner/internal/types"
	"github.com/ginjaninja78/report-cleaner/internal/upload"
	"github.com/ginjaninja78/report-cleaner/internal/validation"
	"github.com/ginjaninja78/report-cleaner/internal/xlsxparser"
	"github.com/ginjaninja78/report-cleaner/pkg/utils"
	"github.com/google/uuid"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single export.
type Result struct {
	// RunID tags every log line of this run.
	RunID string

	// FilePath is the path to the input file that was processed.
	FilePath string

	// Kind is the report kind the file was cleaned as.
	Kind schema.Kind

	// Artifact holds the rendered (and, unless dry-run, written) output.
	// Nil if processing failed.
	Artifact *upload.Artifact

	// ArchivePath is where the input was moved, if archival is enabled.
	ArchivePath string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// RowsRead is the number of data rows in the raw export.
	RowsRead int

	// RowsCleaned is the number of rows in the cleaned table.
	RowsCleaned int

	// SummaryLine is the source line of the dropped totals row, or 0.
	SummaryLine int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Logger is the logging surface the converter needs. *slog.Logger
// satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Converter cleans a single export.
type Converter struct {
	inputPath  string
	kind       schema.Kind
	mainConfig *config.MainConfig
	files      *utils.FileManager
	logger     Logger
	dryRun     bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l Logger) Option {
	return func(c *Converter) { c.logger = l }
}

// WithDryRun renders the artifacts without writing or archiving anything.
func WithDryRun(dryRun bool) Option {
	return func(c *Converter) { c.dryRun = dryRun }
}

// WithFileManager overrides the file manager built from the config.
func WithFileManager(fm *utils.FileManager) Option {
	return func(c *Converter) { c.files = fm }
}

// New creates a Converter for one input file and report kind.
func New(inputPath string, kind schema.Kind, mainConfig *config.MainConfig, opts ...Option) *Converter {
	c := &Converter{
		inputPath:  inputPath,
		kind:       kind,
		mainConfig: mainConfig,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.files == nil {
		c.files = utils.NewFileManager(mainConfig.OutputDir, mainConfig.InputArchiveDir)
		c.files.UseTimestampSubdirs = mainConfig.ArchiveByDate
	}
	return c
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the pipeline for the file.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{
		RunID:    uuid.New().String(),
		FilePath: c.inputPath,
		Kind:     c.kind,
	}
	log := withRunID(c.logger, result.RunID)

	fail := func(err error) Result {
		result.Error = err
		result.Stats.ProcessingTime = time.Since(startTime)
		log.Error("Processing failed", "file", c.inputPath, "kind", c.kind, "error", err)
		return result
	}

	log.Info("Processing file", "file", c.inputPath, "kind", c.kind, "dry_run", c.dryRun)

	report, err := schema.Lookup(c.kind)
	if err != nil {
		return fail(err)
	}

	raw, err := ReadRaw(c.inputPath, c.mainConfig.CSVSettings)
	if err != nil {
		return fail(fmt.Errorf("failed to read input: %w", err))
	}
	result.Stats.RowsRead = len(raw.Rows)
	log.Debug("Read raw table", "columns", len(raw.Columns), "rows", len(raw.Rows))

	cleaned, err := Clean(raw, report)
	if err != nil {
		return fail(err)
	}
	result.Stats.RowsCleaned = len(cleaned.Table.Rows)
	result.Stats.SummaryLine = cleaned.SummaryLine
	if cleaned.SummaryLine > 0 {
		log.Debug("Dropped trailing summary row", "line", cleaned.SummaryLine)
	}

	packager := upload.NewPackager(c.files, c.mainConfig.UploadDir)
	if c.dryRun {
		result.Artifact, err = packager.Render(cleaned.Table, string(c.kind))
	} else {
		result.Artifact, err = packager.Package(cleaned.Table, string(c.kind))
	}
	if err != nil {
		return fail(err)
	}

	if !c.dryRun {
		log.Info("Wrote upload artifacts", "csv", result.Artifact.CSVPath, "sql", result.Artifact.SQLPath, "rows", result.Artifact.Rows)

		archivePath, err := c.files.ArchiveInputFile(c.inputPath)
		if err != nil {
			// The artifacts are already in place.
			log.Warn("Failed to archive input", "file", c.inputPath, "error", err)
		} else if archivePath != c.inputPath {
			result.ArchivePath = archivePath
			log.Debug("Archived input", "path", archivePath)
		}
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)
	return result
}

// =============================================================================
// PIPELINE STAGES
// =============================================================================

// Cleaned is a fully validated and normalized report.
type Cleaned struct {
	Table *types.Table

	// SummaryLine is the source line of the dropped totals row, or 0.
	SummaryLine int
}

// Clean runs the Schema Projector, the Row Validator and the Field
// Normalizer over raw. Each stage produces a new table.
func Clean(raw *types.Table, report *schema.Report) (*Cleaned, error) {
	projected, err := schema.Project(raw, report.Columns)
	if err != nil {
		return nil, err
	}

	validated, err := validation.NewValidator(report).Validate(projected)
	if err != nil {
		return nil, err
	}

	normalized, err := NewTransformer(report).Transform(validated.Table)
	if err != nil {
		return nil, err
	}

	return &Cleaned{Table: normalized, SummaryLine: validated.DroppedLine}, nil
}

// ReadRaw reads an export into a raw table, choosing the reader by file
// extension.
func ReadRaw(path string, settings config.CSVSettings) (*types.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return xlsxparser.Parse(path, settings)
	}
	return csvparser.Parse(path, settings)
}

func withRunID(l Logger, runID string) Logger {
	if sl, ok := l.(*slog.Logger); ok {
		return sl.With("run_id", runID)
	}
	return l
}

// =============================================================================
// Report Cleaner - Upload Packager
// =============================================================================
//
// This module turns a cleaned table into the two upload artifacts:
//   1. <kind>.csv - header plus data rows, canonical field order
//   2. <kind>.sql - a four-line bulk-load statement:
//
//        COPY <kind>(<field>,<field>,...)
//        FROM '<upload_dir>/<kind>.csv'
//        DELIMITER ','
//        CSV HEADER;
//
// The destination kind is validated before anything is written.
//
// =============================================================================

package upload

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/ginjaninja78/report-cleaner/internal/schema"
	"github.com/ginjaninja78/report-cleaner/internal/types"
	"github.com/ginjaninja78/report-cleaner/pkg/utils"
)

// DefaultUploadDir is where the database host expects uploaded CSVs.
const DefaultUploadDir = "/home/redash"

// =============================================================================
// ARTIFACT
// =============================================================================

// Artifact describes the files produced for one cleaned report.
type Artifact struct {
	Kind schema.Kind

	// CSVPath and SQLPath are empty for a rendered-only artifact.
	CSVPath string
	SQLPath string

	// CSV is the full cleaned file content.
	CSV []byte

	// Statement is the load statement text, without a trailing newline.
	Statement string

	// Rows is the number of data rows in the CSV.
	Rows int
}

// =============================================================================
// PACKAGER
// =============================================================================

// Packager writes upload artifacts into an output directory.
type Packager struct {
	files     *utils.FileManager
	uploadDir string
}

// NewPackager creates a Packager writing through files. An empty
// uploadDir means DefaultUploadDir.
func NewPackager(files *utils.FileManager, uploadDir string) *Packager {
	if uploadDir == "" {
		uploadDir = DefaultUploadDir
	}
	return &Packager{files: files, uploadDir: uploadDir}
}

// Render builds both artifacts in memory without touching the disk.
func (p *Packager) Render(table *types.Table, destination string) (*Artifact, error) {
	kind, err := schema.ParseKind(destination)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		return nil, fmt.Errorf("failed to render CSV: %w", err)
	}

	return &Artifact{
		Kind:      kind,
		CSV:       buf.Bytes(),
		Statement: LoadStatement(kind, table.Columns, p.uploadDir),
		Rows:      len(table.Rows),
	}, nil
}

// Package renders the artifacts and writes <kind>.csv and <kind>.sql to
// the output directory, replacing earlier output for the same kind.
//
// RETURNS:
//   - The written artifact.
//   - InvalidDestination if destination is not bookings or sales; in that
//     case nothing is written.
func (p *Packager) Package(table *types.Table, destination string) (*Artifact, error) {
	artifact, err := p.Render(table, destination)
	if err != nil {
		return nil, err
	}

	if err := p.files.EnsureDirectories(); err != nil {
		return nil, err
	}

	artifact.CSVPath, err = p.files.WriteOutputFile(string(artifact.Kind)+".csv", artifact.CSV)
	if err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}

	artifact.SQLPath, err = p.files.WriteOutputFile(string(artifact.Kind)+".sql", []byte(artifact.Statement))
	if err != nil {
		return nil, fmt.Errorf("failed to write load statement: %w", err)
	}

	return artifact, nil
}

// =============================================================================
// RENDERING
// =============================================================================

// LoadStatement returns the bulk-load statement for kind. fields must be
// in the same order as the CSV header.
func LoadStatement(kind schema.Kind, fields []string, uploadDir string) string {
	source := path.Join(uploadDir, string(kind)+".csv")

	var b strings.Builder
	fmt.Fprintf(&b, "COPY %s(%s)\n", kind, strings.Join(fields, ","))
	fmt.Fprintf(&b, "FROM '%s'\n", source)
	b.WriteString("DELIMITER ','\n")
	b.WriteString("CSV HEADER;")
	return b.String()
}

// WriteCSV writes table as comma-delimited text: a header row, then one
// line per row. Null cells are empty fields.
func WriteCSV(w io.Writer, table *types.Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(table.Columns); err != nil {
		return err
	}
	if err := writer.WriteAll(table.Records()); err != nil {
		return err
	}

	return writer.Error()
}

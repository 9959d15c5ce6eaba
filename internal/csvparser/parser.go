// =============================================================================
// Report Cleaner - CSV Parser Module
// =============================================================================
//
// This module reads a raw vendor export into a types.Table. It handles:
//   - A preamble before the real header (header_row, default line 2)
//   - Different delimiters (comma, semicolon, tab, pipe)
//   - Non-UTF-8 encodings and byte order marks
//   - Configurable null tokens
//   - Unicode-normalized header names
//
// The whole file is read into memory; exports are small enough that no
// streaming is needed.
//
// =============================================================================

package csvparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/report-cleaner/internal/config"
	"github.com/ginjaninja78/report-cleaner/internal/types"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns the raw table.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV settings from the configuration.
//
// RETURNS:
//   - The raw table: header names as columns, string or null cells.
//   - An error if the file cannot be read or has no header row.
func Parse(filePath string, settings config.CSVSettings) (*types.Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file, settings)
}

// ParseReader reads CSV data from r. See Parse.
func ParseReader(r io.Reader, settings config.CSVSettings) (*types.Table, error) {
	decoded, err := decodingReader(r, settings.Encoding)
	if err != nil {
		return nil, err
	}

	csvReader := csv.NewReader(decoded)
	configureReader(csvReader, settings)

	var records [][]string
	var lines []int
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line, _ := csvReader.FieldPos(0)
		if line < settings.HeaderRow {
			// Preamble.
			continue
		}
		records = append(records, record)
		lines = append(lines, line)
	}

	return BuildTable(records, lines, settings)
}

// decodingReader wraps r so it yields UTF-8 without a byte order mark.
func decodingReader(r io.Reader, label string) (io.Reader, error) {
	if label == "" || strings.EqualFold(label, "utf-8") || strings.EqualFold(label, "utf8") {
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	switch settings.Delimiter {
	case "\\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = []rune(settings.Delimiter)[0]
		} else {
			reader.Comma = ','
		}
	}

	// The preamble rarely has as many fields as the header.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
}

// =============================================================================
// TABLE CONSTRUCTION
// =============================================================================

// BuildTable turns header-first records into a raw table. lines holds the
// source line (or sheet row) of each record. Shared with the xlsx reader.
func BuildTable(records [][]string, lines []int, settings config.CSVSettings) (*types.Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("file has no header row at line %d", settings.HeaderRow)
	}

	headers := cleanHeaders(records[0], settings.ShouldNormalizeHeaders())
	nulls := make(map[string]bool, len(settings.NullValues))
	for _, v := range settings.NullValues {
		nulls[strings.TrimSpace(v)] = true
	}

	table := &types.Table{
		Columns: headers,
		Rows:    make([]types.Row, 0, len(records)-1),
	}
	for i, record := range records[1:] {
		values := make([]types.Value, len(headers))
		for col := range headers {
			if col >= len(record) {
				values[col] = types.Null(types.StringValue)
				continue
			}
			cell := record[col]
			if nulls[strings.TrimSpace(cell)] {
				values[col] = types.Null(types.StringValue)
				continue
			}
			values[col] = types.Text(cell)
		}
		table.Rows = append(table.Rows, types.Row{Line: lines[i+1], Values: values})
	}

	return table, nil
}

// cleanHeaders normalizes header values. Headers are matched exactly
// against the schema maps, so whitespace is kept as exported.
func cleanHeaders(headers []string, normalize bool) []string {
	cleaned := make([]string, len(headers))

	for i, header := range headers {
		header = strings.TrimPrefix(header, "\uFEFF")
		if normalize {
			header = norm.NFC.String(header)
		}
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}

	return cleaned
}

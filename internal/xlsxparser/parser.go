// =============================================================================
// Report Cleaner - XLSX Export Reader
// =============================================================================
//
// Some vendor dashboards offer the same reports as Excel workbooks. This
// module reads the first sheet of such a workbook into the same raw table
// the CSV parser produces: the header sits on header_row, rows before it
// are a preamble, and sheet row numbers stand in for source lines.
//
// Cells are read with their display formatting, so "52,90 €" arrives as
// text exactly as it would in the CSV export.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"io"

	"github.com/ginjaninja78/report-cleaner/internal/config"
	"github.com/ginjaninja78/report-cleaner/internal/csvparser"
	"github.com/ginjaninja78/report-cleaner/internal/types"
	"github.com/xuri/excelize/v2"
)

// Parse reads the first sheet of an XLSX file into a raw table.
//
// PARAMETERS:
//   - filePath: The path to the workbook.
//   - settings: The CSV settings; header_row, null_values and
//               normalize_headers apply, delimiter and encoding do not.
//
// RETURNS:
//   - The raw table.
//   - An error if the workbook cannot be opened or has no sheets.
func Parse(filePath string, settings config.CSVSettings) (*types.Table, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return parseWorkbook(f, settings)
}

// ParseReader reads a workbook from r. See Parse.
func ParseReader(r io.Reader, settings config.CSVSettings) (*types.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return parseWorkbook(f, settings)
}

func parseWorkbook(f *excelize.File, settings config.CSVSettings) (*types.Table, error) {
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	var records [][]string
	var lines []int
	for i, row := range rows {
		line := i + 1
		if line < settings.HeaderRow {
			continue
		}
		// GetRows keeps blank rows between data as empty slices; a blank
		// line in a CSV export is skipped, so do the same here.
		if len(row) == 0 && line > settings.HeaderRow {
			continue
		}
		records = append(records, row)
		lines = append(lines, line)
	}

	return csvparser.BuildTable(records, lines, settings)
}

// =============================================================================
// Report Cleaner - Field Normalizer
// =============================================================================
//
// This module rewrites locale-formatted cells of a validated report into
// canonical machine-readable values:
//   - Amounts:     "1.234,56 €" -> 1234.56
//   - Identifiers: "#153"       -> 153
//
// AMOUNT ALGORITHM (order is significant):
//   1. Remove every "." (thousands separator)
//   2. Replace every "," with "." (decimal separator)
//   3. Remove the currency symbol, then trim surrounding whitespace
//   4. Parse as a 64-bit float
//
//   Stripping "." before substituting "," is what keeps "1.234,56" from
//   being read as 1.234.
//
// Null cells in amount fields stay null. Any other cell that does not
// parse aborts the run with a ParseError; nothing is cleaned best-effort.
//
// =============================================================================

package converter

import (
	"strconv"
	"strings"

	"github.com/ginjaninja78/report-cleaner/internal/schema"
	"github.com/ginjaninja78/report-cleaner/internal/types"
)

// =============================================================================
// TRANSFORMER
// =============================================================================

// Transformer normalizes the float and identifier fields of one report kind.
type Transformer struct {
	report *schema.Report
}

// NewTransformer creates a Transformer for report.
func NewTransformer(report *schema.Report) *Transformer {
	return &Transformer{report: report}
}

// Transform returns a new table with every float field and identifier
// field normalized. The input table is not modified.
func (t *Transformer) Transform(validated *types.Table) (*types.Table, error) {
	table := validated.Clone()

	for _, field := range t.report.FloatFields {
		idx := table.ColumnIndex(field)
		if idx < 0 {
			continue
		}
		for i := range table.Rows {
			cell, err := t.normalizeAmountCell(table.Rows[i].Values[idx])
			if err != nil {
				return nil, withContext(err, field, table.Rows[i].Line)
			}
			table.Rows[i].Values[idx] = cell
		}
	}

	for _, field := range t.report.IdentifierFields {
		idx := table.ColumnIndex(field)
		if idx < 0 {
			continue
		}
		for i := range table.Rows {
			cell, err := normalizeIdentifierCell(table.Rows[i].Values[idx])
			if err != nil {
				return nil, withContext(err, field, table.Rows[i].Line)
			}
			table.Rows[i].Values[idx] = cell
		}
	}

	return table, nil
}

func (t *Transformer) normalizeAmountCell(cell types.Value) (types.Value, error) {
	switch {
	case cell.Null:
		return types.Null(types.FloatValue), nil
	case cell.Type == types.FloatValue:
		return cell, nil
	case cell.Type == types.IntValue:
		return types.Float(float64(cell.Int)), nil
	}

	f, err := NormalizeAmount(cell.Str, t.report.CurrencySymbol)
	if err != nil {
		return types.Value{}, err
	}
	return types.Float(f), nil
}

func normalizeIdentifierCell(cell types.Value) (types.Value, error) {
	switch {
	case cell.Null:
		return types.Value{}, &types.Error{
			Code:    types.CodeParseError,
			Message: "cannot convert null identifier to integer",
		}
	case cell.Type == types.IntValue:
		return cell, nil
	}

	n, err := NormalizeIdentifier(cell.Str)
	if err != nil {
		return types.Value{}, err
	}
	return types.Int(n), nil
}

// withContext fills in the column and line of a cell-level error.
func withContext(err error, column string, line int) error {
	if e, ok := err.(*types.Error); ok {
		e.Column = column
		e.Line = line
	}
	return err
}

// =============================================================================
// CELL NORMALIZATION
// =============================================================================

// NormalizeAmount converts a locale-formatted amount such as "1.234,56 €"
// into a float. currency may be empty.
func NormalizeAmount(value, currency string) (float64, error) {
	s := strings.ReplaceAll(value, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	if currency != "" {
		s = strings.ReplaceAll(s, currency, "")
	}
	s = strings.TrimSpace(s)

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &types.Error{
			Code:    types.CodeParseError,
			Message: "could not convert string to float",
			Value:   value,
			Err:     err,
		}
	}
	return f, nil
}

// NormalizeIdentifier converts an identifier such as "#153" into an int.
func NormalizeIdentifier(value string) (int64, error) {
	s := strings.TrimPrefix(strings.TrimSpace(value), "#")

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, &types.Error{
			Code:    types.CodeParseError,
			Message: "invalid literal for integer identifier",
			Value:   value,
			Err:     err,
		}
	}
	return n, nil
}

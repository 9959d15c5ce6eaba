// =============================================================================
// Report Cleaner - Row Validator
// =============================================================================
//
// This module enforces the structural invariants of a projected report
// before any cell is rewritten:
//   1. Integer-typed columns (bookings "pax") must already read as integers
//   2. A trailing summary row with no id is dropped
//   3. No remaining row may lack an id
//
// ORDER MATTERS:
//   The integer gate looks at the whole column as exported, summary row
//   included. The null-id check runs only after the summary row is gone.
//
// =============================================================================

package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ginjaninja78/report-cleaner/internal/schema"
	"github.com/ginjaninja78/report-cleaner/internal/types"
)

var integerRe = regexp.MustCompile(`^[+-]?[0-9]+$`)

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// Result is the outcome of a successful validation.
type Result struct {
	// Table is the validated table. Integer columns hold IntValue cells.
	Table *types.Table

	// DroppedLine is the source line of the removed summary row, or 0.
	DroppedLine int
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator checks projected tables of one report kind.
type Validator struct {
	report *schema.Report
}

// NewValidator creates a Validator for report.
func NewValidator(report *schema.Report) *Validator {
	return &Validator{report: report}
}

// Validate runs every check in order and returns a new table; projected
// is never modified. The first violation aborts with a *types.Error.
func (v *Validator) Validate(projected *types.Table) (*Result, error) {
	table := projected.Clone()

	for _, col := range v.report.IntegerColumns {
		if err := CheckIntegerColumn(table, col); err != nil {
			return nil, err
		}
	}

	dropped := DropTrailingSummary(table)

	if err := CheckIdentifiers(table); err != nil {
		return nil, err
	}

	return &Result{Table: table, DroppedLine: dropped}, nil
}

// =============================================================================
// CHECKS
// =============================================================================

// InferType reports how a whole column reads: IntValue when every cell is
// a non-null integer literal, FloatValue when every non-null cell parses
// as a plain float (or the column is entirely null), StringValue otherwise.
func InferType(values []types.Value) types.ValueType {
	allInt := true
	allFloat := true

	for _, v := range values {
		if v.Null {
			allInt = false
			continue
		}
		switch v.Type {
		case types.IntValue:
			continue
		case types.FloatValue:
			allInt = false
			continue
		}
		s := strings.TrimSpace(v.Str)
		if !integerRe.MatchString(s) {
			allInt = false
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				allFloat = false
			}
		}
	}

	switch {
	case allInt && len(values) > 0:
		return types.IntValue
	case allFloat:
		return types.FloatValue
	default:
		return types.StringValue
	}
}

// CheckIntegerColumn fails with InvalidType unless column reads as an
// integer column, then rewrites its cells to IntValue.
func CheckIntegerColumn(table *types.Table, column string) error {
	idx := table.ColumnIndex(column)
	if idx < 0 {
		return fmt.Errorf("column %q not in table", column)
	}

	values, _ := table.Column(column)
	if InferType(values) != types.IntValue {
		return &types.Error{
			Code:    types.CodeInvalidType,
			Message: fmt.Sprintf("%s should be an int", capitalize(column)),
			Column:  column,
		}
	}

	for i := range table.Rows {
		cell := table.Rows[i].Values[idx]
		if cell.Type == types.IntValue {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(cell.Str), 10, 64)
		if err != nil {
			// Matched integerRe but overflows int64.
			return &types.Error{
				Code:    types.CodeInvalidType,
				Message: fmt.Sprintf("%s should be an int", capitalize(column)),
				Column:  column,
				Line:    table.Rows[i].Line,
				Value:   cell.Str,
				Err:     err,
			}
		}
		table.Rows[i].Values[idx] = types.Int(n)
	}
	return nil
}

// DropTrailingSummary removes the last row when its id is null and
// returns that row's source line. Other null-id rows are left alone.
func DropTrailingSummary(table *types.Table) int {
	n := len(table.Rows)
	idx := table.ColumnIndex(schema.IDField)
	if n == 0 || idx < 0 {
		return 0
	}

	last := table.Rows[n-1]
	if !last.Values[idx].Null {
		return 0
	}
	table.Rows = table.Rows[:n-1]
	return last.Line
}

// CheckIdentifiers fails with MissingIdentifier if any row has a null id.
func CheckIdentifiers(table *types.Table) error {
	idx := table.ColumnIndex(schema.IDField)
	if idx < 0 {
		return fmt.Errorf("column %q not in table", schema.IDField)
	}

	var lines []int
	for _, row := range table.Rows {
		if row.Values[idx].Null {
			lines = append(lines, row.Line)
		}
	}
	if len(lines) > 0 {
		return &types.Error{
			Code:    types.CodeMissingIdentifier,
			Message: "There are rows with no id.",
			Column:  schema.IDField,
			Lines:   lines,
		}
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

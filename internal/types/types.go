// =============================================================================
// Report Cleaner - Shared Types
// =============================================================================
//
// This package contains the table model shared by every stage of the
// pipeline, kept here to avoid import cycles. Types defined here are used by:
//   - csvparser / xlsxparser (produce the raw table)
//   - schema                 (projects the raw table)
//   - validation, converter  (validate and normalize the projected table)
//   - upload                 (serializes the cleaned table)
//
// =============================================================================

package types

import (
	"math"
	"strconv"
	"strings"
)

// =============================================================================
// VALUES
// =============================================================================

// ValueType is the representation a cell currently holds.
type ValueType int

const (
	// StringValue is raw text, as read from the export.
	StringValue ValueType = iota

	// FloatValue is a normalized monetary/numeric amount.
	FloatValue

	// IntValue is a normalized identifier or count.
	IntValue
)

// String returns the lowercase name of the type.
func (t ValueType) String() string {
	switch t {
	case FloatValue:
		return "float"
	case IntValue:
		return "int"
	default:
		return "string"
	}
}

// Value is a single table cell. A null Value renders as an empty field.
type Value struct {
	Type  ValueType
	Null  bool
	Str   string
	Float float64
	Int   int64
}

// Text returns a non-null string cell.
func Text(s string) Value {
	return Value{Type: StringValue, Str: s}
}

// Null returns a null cell of the given type.
func Null(t ValueType) Value {
	return Value{Type: t, Null: true}
}

// Float returns a non-null float cell.
func Float(f float64) Value {
	return Value{Type: FloatValue, Float: f}
}

// Int returns a non-null integer cell.
func Int(i int64) Value {
	return Value{Type: IntValue, Int: i}
}

// String renders the cell the way it is written to the cleaned CSV.
func (v Value) String() string {
	if v.Null {
		return ""
	}
	switch v.Type {
	case FloatValue:
		return FormatFloat(v.Float)
	case IntValue:
		return strconv.FormatInt(v.Int, 10)
	default:
		return v.Str
	}
}

// FormatFloat renders f in its shortest round-trip form, always with a
// fractional part or an exponent, e.g. 52.9, 64.0, 1e+16.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// =============================================================================
// TABLES
// =============================================================================

// Row is one data row. Line is the 1-based line (or sheet row) the row
// was read from, used for error reporting.
type Row struct {
	Line   int
	Values []Value
}

// Table is an ordered set of named columns over ordered rows. Every row
// holds exactly len(Columns) values.
type Table struct {
	Columns []string
	Rows    []Row
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns a copy of every value in the named column.
func (t *Table) Column(name string) ([]Value, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	values := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row.Values[idx]
	}
	return values, true
}

// Clone returns a deep copy, so a stage can rewrite cells without touching
// the table it was handed.
func (t *Table) Clone() *Table {
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = Row{
			Line:   row.Line,
			Values: append([]Value(nil), row.Values...),
		}
	}
	return out
}

// Records renders every row as strings, in column order.
func (t *Table) Records() [][]string {
	records := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		record := make([]string, len(row.Values))
		for j, v := range row.Values {
			record[j] = v.String()
		}
		records[i] = record
	}
	return records
}

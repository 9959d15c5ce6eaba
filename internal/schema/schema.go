// =============================================================================
// Report Cleaner - Schema Maps and Projector
// =============================================================================
//
// A Schema Map is the fixed, ordered list of (raw column, canonical field)
// pairs for one report kind. The map doubles as an allow-list: projection
// keeps exactly the mapped columns, in map order, and fails before any row
// is touched if one of them is absent from the export.
//
// The two report kinds differ only in data (their maps and field lists);
// every stage after this one is driven by a *Report value.
//
// =============================================================================

package schema

import (
	"fmt"
	"sort"

	"github.com/ginjaninja78/report-cleaner/internal/types"
)

// =============================================================================
// REPORT KINDS
// =============================================================================

// Kind names a report layout and, by convention, its destination table.
type Kind string

const (
	Bookings Kind = "bookings"
	Sales    Kind = "sales"
)

// Kinds lists every known report kind in a stable order.
var Kinds = []Kind{Bookings, Sales}

// ParseKind validates a destination name. Anything outside the closed
// {bookings, sales} set is an InvalidDestination error.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", &types.Error{
		Code:    types.CodeInvalidDestination,
		Message: "Filename should be either bookings or sales.",
		Value:   name,
	}
}

// =============================================================================
// SCHEMA MAP
// =============================================================================

// ColumnMapping renames one raw export column to its canonical field.
type ColumnMapping struct {
	// Raw is the exact, locale-specific header in the export.
	Raw string

	// Canonical is the output field name used in the cleaned CSV and
	// the load statement.
	Canonical string
}

// Map is an ordered Schema Map.
type Map []ColumnMapping

// RawNames returns the raw headers in declaration order.
func (m Map) RawNames() []string {
	names := make([]string, len(m))
	for i, c := range m {
		names[i] = c.Raw
	}
	return names
}

// CanonicalNames returns the canonical fields in declaration order.
func (m Map) CanonicalNames() []string {
	names := make([]string, len(m))
	for i, c := range m {
		names[i] = c.Canonical
	}
	return names
}

// =============================================================================
// REPORT DEFINITIONS
// =============================================================================

// Report bundles everything the pipeline needs to know about one kind.
type Report struct {
	Kind    Kind
	Columns Map

	// IntegerColumns must already read as integers in the raw export.
	IntegerColumns []string

	// FloatFields are locale-formatted amounts rewritten to floats.
	FloatFields []string

	// IdentifierFields are '#'-prefixed identifiers rewritten to ints.
	IdentifierFields []string

	// CurrencySymbol is stripped from float fields before parsing.
	CurrencySymbol string
}

// IDField is the row identifier every report carries.
const IDField = "id"

var reports = map[Kind]*Report{
	Bookings: bookingsReport,
	Sales:    salesReport,
}

// Lookup returns the report definition for kind.
func Lookup(kind Kind) (*Report, error) {
	r, ok := reports[kind]
	if !ok {
		return nil, fmt.Errorf("unknown report kind %q", kind)
	}
	return r, nil
}

// =============================================================================
// PROJECTOR
// =============================================================================

// Project restricts raw to the columns named in m and renames them.
//
// Extra raw columns are dropped. If any mapped raw column is missing the
// call fails with a SchemaMismatch error listing every absent header. Row
// count, row order and source line numbers are preserved; the result has
// exactly the canonical columns, in map order.
func Project(raw *types.Table, m Map) (*types.Table, error) {
	// First occurrence wins for duplicated headers.
	available := make(map[string]int, len(raw.Columns))
	for i, name := range raw.Columns {
		if _, seen := available[name]; !seen {
			available[name] = i
		}
	}

	indexes := make([]int, len(m))
	var missing []string
	for i, c := range m {
		idx, ok := available[c.Raw]
		if !ok {
			missing = append(missing, c.Raw)
			continue
		}
		indexes[i] = idx
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &types.Error{
			Code:    types.CodeSchemaMismatch,
			Message: "Usecols do not match columns",
			Missing: missing,
		}
	}

	projected := &types.Table{
		Columns: m.CanonicalNames(),
		Rows:    make([]types.Row, len(raw.Rows)),
	}
	for i, row := range raw.Rows {
		values := make([]types.Value, len(indexes))
		for j, idx := range indexes {
			if idx < len(row.Values) {
				values[j] = row.Values[idx]
			} else {
				values[j] = types.Null(types.StringValue)
			}
		}
		projected.Rows[i] = types.Row{Line: row.Line, Values: values}
	}

	return projected, nil
}

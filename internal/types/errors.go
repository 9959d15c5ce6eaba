package types

import (
	"fmt"
	"strings"
)

// ErrorCode classifies a fatal cleaning error.
type ErrorCode string

const (
	CodeSchemaMismatch     ErrorCode = "SchemaMismatch"
	CodeInvalidType        ErrorCode = "InvalidType"
	CodeMissingIdentifier  ErrorCode = "MissingIdentifier"
	CodeParseError         ErrorCode = "ParseError"
	CodeInvalidDestination ErrorCode = "InvalidDestination"
)

// Sentinels for errors.Is. Only the Code is compared.
var (
	ErrSchemaMismatch     = &Error{Code: CodeSchemaMismatch}
	ErrInvalidType        = &Error{Code: CodeInvalidType}
	ErrMissingIdentifier  = &Error{Code: CodeMissingIdentifier}
	ErrParseError         = &Error{Code: CodeParseError}
	ErrInvalidDestination = &Error{Code: CodeInvalidDestination}
)

// Error is a fatal error raised by the cleaning core. Every run aborts on
// the first one; there is no row-level recovery.
type Error struct {
	Code    ErrorCode
	Message string

	// Column is the raw or canonical column involved, if any.
	Column string

	// Line is the 1-based source line of the offending cell, if any.
	Line int

	// Value is the offending cell text, if any.
	Value string

	// Missing lists absent raw column names (SchemaMismatch).
	Missing []string

	// Lines lists every offending source line (MissingIdentifier).
	Lines []int

	// Err is the underlying cause, e.g. a strconv error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)

	var details []string
	if len(e.Missing) > 0 {
		details = append(details, fmt.Sprintf("missing columns: %s", strings.Join(quoteAll(e.Missing), ", ")))
	}
	if e.Column != "" {
		details = append(details, fmt.Sprintf("column %q", e.Column))
	}
	if e.Line > 0 {
		details = append(details, fmt.Sprintf("line %d", e.Line))
	}
	if len(e.Lines) > 0 {
		details = append(details, fmt.Sprintf("lines %s", joinInts(e.Lines)))
	}
	if e.Code == CodeParseError || e.Value != "" {
		details = append(details, fmt.Sprintf("value %q", e.Value))
	}
	if len(details) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(details, ", "))
		b.WriteString(")")
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprintf("%q", v)
	}
	return out
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

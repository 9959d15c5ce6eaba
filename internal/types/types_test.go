package types

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{52.9, "52.9"},
		{64, "64.0"},
		{0, "0.0"},
		{-2.04, "-2.04"},
		{1234.56, "1234.56"},
		{37.04, "37.04"},
		{1e16, "1e+16"},
		{0.00001, "1e-05"},
		{math.NaN(), "nan"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.in))
		})
	}
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "", Null(FloatValue).String())
	assert.Equal(t, "", Null(StringValue).String())
	assert.Equal(t, "#153", Text("#153").String())
	assert.Equal(t, "153", Int(153).String())
	assert.Equal(t, "0.0", Float(0).String())
}

func TestTable_CloneIsDeep(t *testing.T) {
	orig := &Table{
		Columns: []string{"id"},
		Rows:    []Row{{Line: 3, Values: []Value{Text("#1")}}},
	}
	clone := orig.Clone()
	clone.Rows[0].Values[0] = Int(1)
	clone.Columns[0] = "other"

	assert.Equal(t, "#1", orig.Rows[0].Values[0].Str)
	assert.Equal(t, "id", orig.Columns[0])
	assert.Equal(t, 3, clone.Rows[0].Line)
}

func TestTable_Column(t *testing.T) {
	tbl := &Table{
		Columns: []string{"id", "pax"},
		Rows: []Row{
			{Values: []Value{Text("#1"), Text("2")}},
			{Values: []Value{Text("#2"), Null(StringValue)}},
		},
	}

	values, ok := tbl.Column("pax")
	require.True(t, ok)
	assert.Equal(t, []Value{Text("2"), Null(StringValue)}, values)

	_, ok = tbl.Column("missing")
	assert.False(t, ok)
	assert.Equal(t, -1, tbl.ColumnIndex("missing"))

	assert.Equal(t, [][]string{{"#1", "2"}, {"#2", ""}}, tbl.Records())
}

func TestError_IsMatchesCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &Error{
		Code:    CodeMissingIdentifier,
		Message: "There are rows with no id.",
		Lines:   []int{4, 7},
	})

	assert.True(t, errors.Is(err, ErrMissingIdentifier))
	assert.False(t, errors.Is(err, ErrParseError))
	assert.Contains(t, err.Error(), "There are rows with no id.")
	assert.Contains(t, err.Error(), "lines 4, 7")
}

func TestError_ParseErrorMessage(t *testing.T) {
	err := &Error{
		Code:    CodeParseError,
		Message: "could not convert string to float",
		Column:  "subtotal",
		Line:    5,
		Value:   "abc",
	}
	assert.Equal(t, `could not convert string to float (column "subtotal", line 5, value "abc")`, err.Error())
}

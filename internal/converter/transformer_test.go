package converter

import (
	"errors"
	"testing"

	"github.com/ginjaninja78/report-cleaner/internal/schema"
	"github.com/ginjaninja78/report-cleaner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.234,56 €", 1234.56},
		{"52,90 €", 52.9},
		{"0,00", 0},
		{"-2,04 €", -2.04},
		{"1.000.000,00 €", 1000000},
		{"€ 7,76", 7.76},
		{" 44,80 € ", 44.8},
		{"12", 12},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeAmount(tt.in, "€")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeAmount_Errors(t *testing.T) {
	for _, in := range []string{"abc €", "12,34,56", "€", "1 234,00 €"} {
		t.Run(in, func(t *testing.T) {
			_, err := NormalizeAmount(in, "€")
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrParseError))
		})
	}
}

func TestNormalizeIdentifier(t *testing.T) {
	n, err := NormalizeIdentifier("#153")
	require.NoError(t, err)
	assert.Equal(t, int64(153), n)

	n, err = NormalizeIdentifier("36816723")
	require.NoError(t, err)
	assert.Equal(t, int64(36816723), n)

	for _, in := range []string{"#abc", "", "#", "#12.5", "##12"} {
		_, err := NormalizeIdentifier(in)
		assert.ErrorIs(t, err, types.ErrParseError, in)
	}
}

func salesTable(rows ...[]types.Value) *types.Table {
	tbl := &types.Table{Columns: []string{"id", "gross", "card_type", "booking_id"}}
	for i, r := range rows {
		tbl.Rows = append(tbl.Rows, types.Row{Line: i + 3, Values: r})
	}
	return tbl
}

func TestTransform_Sales(t *testing.T) {
	report, err := schema.Lookup(schema.Sales)
	require.NoError(t, err)

	in := salesTable(
		[]types.Value{types.Text("#23839"), types.Text("1.234,56 €"), types.Text("Visa"), types.Text("#362")},
		[]types.Value{types.Text("#23840"), types.Null(types.StringValue), types.Null(types.StringValue), types.Text("363")},
	)

	out, err := NewTransformer(report).Transform(in)
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"23839", "1234.56", "Visa", "362"},
		{"23840", "", "", "363"},
	}, out.Records())
	assert.Equal(t, types.Int(23839), out.Rows[0].Values[0])
	assert.Equal(t, types.Float(1234.56), out.Rows[0].Values[1])
	assert.Equal(t, types.Null(types.FloatValue), out.Rows[1].Values[1])

	// Input is untouched.
	assert.Equal(t, "#23839", in.Rows[0].Values[0].Str)
}

func TestTransform_ParseErrorCarriesContext(t *testing.T) {
	report, err := schema.Lookup(schema.Sales)
	require.NoError(t, err)

	in := salesTable(
		[]types.Value{types.Text("#1"), types.Text("9,00 €"), types.Text("Visa"), types.Text("#2")},
		[]types.Value{types.Text("#3"), types.Text("nueve €"), types.Text("Visa"), types.Text("#4")},
	)

	_, err = NewTransformer(report).Transform(in)
	require.Error(t, err)

	var e *types.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, types.CodeParseError, e.Code)
	assert.Equal(t, "gross", e.Column)
	assert.Equal(t, 4, e.Line)
	assert.Equal(t, "nueve €", e.Value)
}

func TestTransform_NullBookingIDFails(t *testing.T) {
	report, err := schema.Lookup(schema.Sales)
	require.NoError(t, err)

	in := salesTable(
		[]types.Value{types.Text("#1"), types.Text("9,00 €"), types.Text("Visa"), types.Null(types.StringValue)},
	)

	_, err = NewTransformer(report).Transform(in)
	assert.ErrorIs(t, err, types.ErrParseError)
}

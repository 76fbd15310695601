package incode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.in/src-d/go-sqlin.v0/sql"
	"gopkg.in/src-d/go-sqlin.v0/sql/expression"
)

func bigints(from, n int) []Candidate {
	result := make([]Candidate, n)
	for i := range result {
		result[i] = Constant(int64(from+i), sql.Int64)
	}
	return result
}

func doubles(from, n int) []Candidate {
	result := make([]Candidate, n)
	for i := range result {
		result[i] = Constant(float64(from+i)+0.5, sql.Float64)
	}
	return result
}

func castToBigint(v float64) Candidate {
	return Residual(expression.NewConvert(expression.NewLiteral(v, sql.Float64), expression.ConvertToSigned))
}

func TestSelectScenarios(t *testing.T) {
	null := Constant(nil, sql.Int64)

	scenarioC := append(bigints(1, 3), null, castToBigint(5.0))

	growC := append([]Candidate{}, scenarioC...)
	growC = append(growC, bigints(100, DefaultSwitchThreshold-len(scenarioC))...)

	growD := append(doubles(1, 3), Constant(nil, sql.Float64))
	growD = append(growD, doubles(100, DefaultSwitchThreshold-len(growD))...)

	mistyped := make([]Candidate, DefaultSwitchThreshold+1)
	for i := range mistyped {
		mistyped[i] = Constant(float64(i), sql.Float64)
	}

	testCases := []struct {
		name       string
		typ        sql.Type
		candidates []Candidate
		expected   SwitchGenerationCase
	}{
		{"A: bigint constants", sql.Int64, bigints(1, 3), DirectSwitch},
		{"B: bigint constants and null", sql.Int64, append(bigints(1, 3), null), DirectSwitch},
		{"C: bigint constants, null and cast", sql.Int64, scenarioC, DirectSwitch},
		{"C: grown to the threshold", sql.Int64, growC, DirectSwitch},
		{"D: double constants", sql.Float64, doubles(1, 3), HashSwitch},
		{"D: grown to the threshold", sql.Float64, growD, HashSwitch},
		{"E: bigints over the threshold", sql.Int64, bigints(1, DefaultSwitchThreshold+1), SetContains},
		{"F: double values with bigint type", sql.Int64, mistyped, SetContains},
		{"date constants", sql.Date, []Candidate{
			Constant("2018-01-01", sql.Date),
			Constant("2018-01-02", sql.Date),
			Constant("2018-01-03", sql.Date),
		}, DirectSwitch},
		{"text constants", sql.Text, []Candidate{Constant("a", sql.Text)}, HashSwitch},
		{"unsigned bigint constants", sql.Uint64, []Candidate{Constant(uint64(1), sql.Uint64)}, HashSwitch},
		{"empty list", sql.Int64, nil, DirectSwitch},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			require.Equal(tt.expected, Select(tt.typ, tt.candidates))
			require.Equal(tt.expected, Select(tt.typ, tt.candidates), "select must be idempotent")
		})
	}
}

func TestSelectProperties(t *testing.T) {
	types := []sql.Type{
		sql.Int8, sql.Int16, sql.Int24, sql.Int32, sql.Int64,
		sql.Uint8, sql.Uint16, sql.Uint24, sql.Uint32, sql.Uint64,
		sql.Float32, sql.Float64,
		sql.Date, sql.Datetime, sql.Timestamp,
		sql.Text, sql.Blob,
		sql.CreateTuple(sql.Int64, sql.Text),
	}

	sizes := []int{0, 1, 2, 500, DefaultSwitchThreshold - 1, DefaultSwitchThreshold, DefaultSwitchThreshold + 1, 2000}

	for _, typ := range types {
		for _, size := range sizes {
			candidates := make([]Candidate, size)
			for i := range candidates {
				candidates[i] = Constant(nil, typ)
			}

			got := Select(typ, candidates)
			switch {
			case size > DefaultSwitchThreshold:
				require.Equal(t, SetContains, got, "%s with %d candidates", typ, size)
			case Classify(typ) == FixedWidthInteger:
				require.Equal(t, DirectSwitch, got, "%s with %d candidates", typ, size)
			default:
				require.Equal(t, HashSwitch, got, "%s with %d candidates", typ, size)
			}

			if size == 0 {
				continue
			}

			// replacing one entry by a residual or a NULL keeps the outcome
			withResidual := append([]Candidate{}, candidates...)
			withResidual[0] = Residual(expression.NewGetField(0, typ, "foo", true))
			require.Equal(t, got, Select(typ, withResidual))

			withNull := append([]Candidate{}, candidates...)
			withNull[0] = Constant(nil, sql.Null)
			require.Equal(t, got, Select(typ, withNull))
		}
	}
}

func TestSelectThreshold(t *testing.T) {
	require := require.New(t)

	opts := Options{SwitchThreshold: 2}
	require.Equal(DirectSwitch, opts.Select(sql.Int64, bigints(0, 2)))
	require.Equal(SetContains, opts.Select(sql.Int64, bigints(0, 3)))
	require.Equal(HashSwitch, opts.Select(sql.Float64, doubles(0, 2)))
	require.Equal(SetContains, opts.Select(sql.Float64, doubles(0, 3)))

	require.Equal(DirectSwitch, Options{}.Select(sql.Int64, bigints(0, DefaultSwitchThreshold)))
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		typ      sql.Type
		expected RepresentationClass
	}{
		{sql.Int8, FixedWidthInteger},
		{sql.Int64, FixedWidthInteger},
		{sql.Uint32, FixedWidthInteger},
		{sql.Uint64, Other},
		{sql.Date, FixedWidthInteger},
		{sql.Datetime, FixedWidthInteger},
		{sql.Timestamp, FixedWidthInteger},
		{sql.Float32, FloatingPoint},
		{sql.Float64, FloatingPoint},
		{sql.Text, Other},
		{sql.Blob, Other},
		{sql.Null, Other},
		{sql.CreateTuple(sql.Int64, sql.Int64), Other},
	}

	for _, tt := range testCases {
		t.Run(tt.typ.String(), func(t *testing.T) {
			require.Equal(t, tt.expected, Classify(tt.typ))
		})
	}
}

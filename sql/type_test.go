package sql

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-vitess.v0/sqltypes"
)

func TestNumberConvert(t *testing.T) {
	testCases := []struct {
		typ      Type
		value    interface{}
		expected interface{}
	}{
		{Int8, int64(5), int8(5)},
		{Int16, "12", int16(12)},
		{Int32, 3.0, int32(3)},
		{Int64, int32(-7), int64(-7)},
		{Int64, true, int64(1)},
		{Uint8, int64(5), uint8(5)},
		{Uint32, "4", uint32(4)},
		{Uint64, uint64(math.MaxUint64), uint64(math.MaxUint64)},
		{Float32, int64(2), float32(2)},
		{Float64, "1.5", 1.5},
		{Int64, nil, nil},
	}

	for _, tt := range testCases {
		t.Run(tt.typ.String(), func(t *testing.T) {
			require := require.New(t)
			v, err := tt.typ.Convert(tt.value)
			require.NoError(err)
			require.Equal(tt.expected, v)
		})
	}

	_, err := Int64.Convert("not a number")
	require.Error(t, err)
}

func TestNumberCompare(t *testing.T) {
	testCases := []struct {
		typ      Type
		a, b     interface{}
		expected int
	}{
		{Int64, int64(1), int32(2), -1},
		{Int64, int64(2), int64(2), 0},
		{Int32, "3", int64(2), 1},
		{Uint64, uint64(math.MaxUint64), uint64(1), 1},
		{Float64, 1.5, 1.5, 0},
		{Float64, math.Copysign(0, -1), 0.0, 0},
		{Float64, math.NaN(), math.NaN(), 0},
		{Float64, math.NaN(), math.Inf(1), 1},
		{Float64, math.Inf(-1), math.NaN(), -1},
		{Int64, nil, int64(1), -1},
		{Int64, int64(1), nil, 1},
		{Int64, nil, nil, 0},
	}

	for _, tt := range testCases {
		t.Run(tt.typ.String(), func(t *testing.T) {
			require := require.New(t)
			cmp, err := tt.typ.Compare(tt.a, tt.b)
			require.NoError(err)
			require.Equal(tt.expected, cmp)
		})
	}
}

func TestNumberSQL(t *testing.T) {
	require := require.New(t)

	v, err := Int64.SQL(int32(5))
	require.NoError(err)
	require.Equal(sqltypes.MakeTrusted(sqltypes.Int64, []byte("5")), v)

	v, err = Uint64.SQL(uint64(math.MaxUint64))
	require.NoError(err)
	require.Equal(sqltypes.MakeTrusted(sqltypes.Uint64, []byte("18446744073709551615")), v)

	v, err = Float64.SQL(1.5)
	require.NoError(err)
	require.Equal(sqltypes.MakeTrusted(sqltypes.Float64, []byte("1.5")), v)

	v, err = Int64.SQL(nil)
	require.NoError(err)
	require.Equal(sqltypes.NULL, v)
}

func TestDatetimeConvert(t *testing.T) {
	day := time.Date(2018, time.March, 4, 0, 0, 0, 0, time.UTC)
	instant := time.Date(2018, time.March, 4, 10, 20, 30, 123456789, time.UTC)

	testCases := []struct {
		name     string
		typ      Type
		value    interface{}
		expected interface{}
	}{
		{"date from string", Date, "2018-03-04", day},
		{"date from compact string", Date, "20180304", day},
		{"date truncates time", Date, instant, day},
		{"date from datetime string", Date, "2018-03-04 10:20:30", day},
		{"datetime keeps microseconds", Datetime, instant, instant.Truncate(time.Microsecond)},
		{"datetime from string", Datetime, "2018-03-04 10:20:30.5", time.Date(2018, time.March, 4, 10, 20, 30, 500000000, time.UTC)},
		{"timestamp from unix", Timestamp, int64(1520158830), time.Unix(1520158830, 0).UTC()},
		{"timestamp out of range", Timestamp, int64(0), zeroTime},
		{"zero date", Date, "0000-00-00", zeroTime},
		{"old date", Date, "0999-12-31", zeroTime},
		{"null", Datetime, nil, nil},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			v, err := tt.typ.Convert(tt.value)
			require.NoError(err)
			require.Equal(tt.expected, v)
		})
	}

	_, err := Date.Convert("tomorrow")
	require.Error(t, err)
	require.True(t, ErrConvertingToTime.Is(err))

	_, err = Datetime.Convert([]int{1})
	require.Error(t, err)
	require.True(t, ErrInvalidType.Is(err))
}

func TestDatetimeCompareAndSQL(t *testing.T) {
	require := require.New(t)

	cmp, err := Date.Compare("2018-03-04", time.Date(2018, time.March, 4, 23, 0, 0, 0, time.UTC))
	require.NoError(err)
	require.Equal(0, cmp)

	cmp, err = Datetime.Compare("2018-03-04", "2018-03-04 00:00:01")
	require.NoError(err)
	require.Equal(-1, cmp)

	v, err := Date.SQL("2018-03-04 10:00:00")
	require.NoError(err)
	require.Equal(sqltypes.MakeTrusted(sqltypes.Date, []byte("2018-03-04")), v)

	v, err = Datetime.SQL(zeroTime)
	require.NoError(err)
	require.Equal(sqltypes.MakeTrusted(sqltypes.Datetime, []byte("0000-00-00 00:00:00")), v)
}

func TestStringType(t *testing.T) {
	require := require.New(t)

	v, err := Text.Convert(int64(42))
	require.NoError(err)
	require.Equal("42", v)

	v, err = Blob.Convert("abc")
	require.NoError(err)
	require.Equal([]byte("abc"), v)

	cmp, err := Text.Compare("a", "b")
	require.NoError(err)
	require.Equal(-1, cmp)

	cmp, err = Blob.Compare([]byte("b"), "a")
	require.NoError(err)
	require.Equal(1, cmp)

	require.Equal("TEXT", Text.String())
	require.Equal("BLOB", Blob.String())
	require.Equal("", Text.Zero())
	require.Equal([]byte{}, Blob.Zero())
}

func TestTupleType(t *testing.T) {
	require := require.New(t)
	typ := CreateTuple(Int64, Text)

	v, err := typ.Convert([]interface{}{int32(1), 2})
	require.NoError(err)
	require.Equal([]interface{}{int64(1), "2"}, v)

	_, err = typ.Convert([]interface{}{1})
	require.Error(err)
	require.True(ErrInvalidColumnNumber.Is(err))

	_, err = typ.Convert(1)
	require.Error(err)
	require.True(ErrNotTuple.Is(err))

	cmp, err := typ.Compare([]interface{}{1, "a"}, []interface{}{1, "b"})
	require.NoError(err)
	require.Equal(-1, cmp)

	require.Equal("TUPLE(BIGINT, TEXT)", typ.String())
	require.Equal([]interface{}{int64(0), ""}, typ.Zero())
	require.Equal([]Type{Int64, Text}, TupleTypes(typ))
	require.Equal([]Type{Int64}, TupleTypes(Int64))
	require.Equal(2, NumColumns(typ))
	require.Equal(1, NumColumns(Int64))
	require.True(IsTuple(typ))
	require.False(IsTuple(CreateTuple(Int64)))
}

func TestNullType(t *testing.T) {
	require := require.New(t)

	v, err := Null.Convert(nil)
	require.NoError(err)
	require.Nil(v)

	_, err = Null.Convert(1)
	require.Error(err)
	require.True(ErrValueNotNil.Is(err))

	require.True(IsNull(Null))
	require.False(IsNull(Int64))
	require.False(IsNull(CreateTuple(Int64, Int64)))
}

func TestTypePredicates(t *testing.T) {
	require := require.New(t)

	require.True(IsInteger(Int8))
	require.True(IsInteger(Uint64))
	require.False(IsInteger(Float64))
	require.True(IsSigned(Int32))
	require.False(IsSigned(Uint32))
	require.True(IsUnsigned(Uint24))
	require.True(IsFloat(Float32))
	require.True(IsTime(Date))
	require.True(IsTime(Timestamp))
	require.False(IsTime(Text))
	require.True(IsText(Text))
	require.False(IsText(Blob))
	require.True(IsBlob(Blob))
}

func TestTypesEqual(t *testing.T) {
	testCases := []struct {
		a, b     Type
		expected bool
	}{
		{Int64, Int64, true},
		{Int64, Int32, false},
		{Boolean, Int8, true},
		{Date, Datetime, false},
		{CreateTuple(Int64, Text), CreateTuple(Int64, Text), true},
		{CreateTuple(Int64, Text), CreateTuple(Int64, Blob), false},
		{CreateTuple(Int64, Text), CreateTuple(Int64), false},
		{CreateTuple(Int64), Int64, false},
		{nil, nil, true},
		{nil, Null, false},
		{Null, Null, true},
	}

	for _, tt := range testCases {
		require.Equal(t, tt.expected, TypesEqual(tt.a, tt.b), "%v = %v", tt.a, tt.b)
	}
}

func TestNumberConvertOutOfRange(t *testing.T) {
	testCases := []struct {
		typ   Type
		value interface{}
	}{
		{Int8, int64(1000)},
		{Int8, int64(-129)},
		{Int8, "128"},
		{Int16, int64(math.MaxInt16 + 1)},
		{Int24, int64(8388608)},
		{Int32, 1e12},
		{Int64, uint64(math.MaxUint64)},
		{Int64, math.Inf(1)},
		{Uint8, int64(256)},
		{Uint8, int64(-1)},
		{Uint32, "4294967296"},
		{Uint64, int64(-1)},
		{Uint64, -0.5e1},
		{Float32, 1e300},
	}

	for _, tt := range testCases {
		t.Run(tt.typ.String(), func(t *testing.T) {
			require := require.New(t)
			_, err := tt.typ.Convert(tt.value)
			require.Error(err)
			require.True(ErrValueOutOfRange.Is(err), "unexpected error: %s", err)
		})
	}
}

func TestNumberConvertBounds(t *testing.T) {
	testCases := []struct {
		typ      Type
		value    interface{}
		expected interface{}
	}{
		{Int8, int64(127), int8(127)},
		{Int8, int64(-128), int8(-128)},
		{Int24, int64(-8388608), int32(-8388608)},
		{Uint8, "255", uint8(255)},
		{Uint24, int64(16777215), uint32(16777215)},
		{Uint64, "18446744073709551615", uint64(math.MaxUint64)},
		{Int64, uint64(math.MaxInt64), int64(math.MaxInt64)},
		{Float32, math.Inf(-1), float32(math.Inf(-1))},
	}

	for _, tt := range testCases {
		t.Run(tt.typ.String(), func(t *testing.T) {
			require := require.New(t)
			v, err := tt.typ.Convert(tt.value)
			require.NoError(err)
			require.Equal(tt.expected, v)
		})
	}
}

func TestConvertLossless(t *testing.T) {
	testCases := []struct {
		name     string
		to, from Type
		value    interface{}
		expected interface{}
		ok       bool
	}{
		{"same type", Int64, Int64, int64(3), int64(3), true},
		{"widening", Int64, Int8, int8(3), int64(3), true},
		{"narrowing in range", Int8, Int64, int64(100), int8(100), true},
		{"narrowing out of range", Int8, Int64, int64(1000), nil, false},
		{"fraction to integer", Int32, Float64, 3.7, nil, false},
		{"whole float to integer", Int32, Float64, 3.0, int32(3), true},
		{"number to text", Text, Int64, int64(12), "12", true},
		{"text to date", Date, Text, "2018-03-04", time.Date(2018, time.March, 4, 0, 0, 0, 0, time.UTC), true},
		{"invalid text to integer", Int64, Text, "abc", nil, false},
		{"null", Int8, Null, nil, nil, true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			v, ok := ConvertLossless(tt.to, tt.from, tt.value)
			require.Equal(tt.ok, ok)
			require.Equal(tt.expected, v)
		})
	}
}

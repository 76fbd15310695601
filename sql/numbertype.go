package sql

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/src-d/go-errors.v1"
	"gopkg.in/src-d/go-vitess.v0/sqltypes"
	"gopkg.in/src-d/go-vitess.v0/vt/proto/query"
)

// ErrValueOutOfRange is returned when a number does not fit in a numeric
// type.
var ErrValueOutOfRange = errors.NewKind("value %v is out of range for %s")

var (
	// Boolean is a synonym for TINYINT
	Boolean = Int8
	// Int8 is an integer of 8 bits
	Int8 Type = &numberType{sqltypes.Int8, "TINYINT", int8(0), 8}
	// Uint8 is an unsigned integer of 8 bits
	Uint8 Type = &numberType{sqltypes.Uint8, "TINYINT UNSIGNED", uint8(0), 8}
	// Int16 is an integer of 16 bits
	Int16 Type = &numberType{sqltypes.Int16, "SMALLINT", int16(0), 16}
	// Uint16 is an unsigned integer of 16 bits
	Uint16 Type = &numberType{sqltypes.Uint16, "SMALLINT UNSIGNED", uint16(0), 16}
	// Int24 is an integer of 24 bits, held in an int32.
	Int24 Type = &numberType{sqltypes.Int24, "MEDIUMINT", int32(0), 24}
	// Uint24 is an unsigned integer of 24 bits, held in an uint32.
	Uint24 Type = &numberType{sqltypes.Uint24, "MEDIUMINT UNSIGNED", uint32(0), 24}
	// Int32 is an integer of 32 bits.
	Int32 Type = &numberType{sqltypes.Int32, "INT", int32(0), 32}
	// Uint32 is an unsigned integer of 32 bits.
	Uint32 Type = &numberType{sqltypes.Uint32, "INT UNSIGNED", uint32(0), 32}
	// Int64 is an integer of 64 bits.
	Int64 Type = &numberType{sqltypes.Int64, "BIGINT", int64(0), 64}
	// Uint64 is an unsigned integer of 64 bits.
	Uint64 Type = &numberType{sqltypes.Uint64, "BIGINT UNSIGNED", uint64(0), 64}
	// Float32 is a floating point number of 32 bits.
	Float32 Type = &numberType{sqltypes.Float32, "FLOAT", float32(0), 32}
	// Float64 is a floating point number of 64 bits.
	Float64 Type = &numberType{sqltypes.Float64, "DOUBLE", float64(0), 64}
)

// numberType is an integer or floating point type of the given width. Values
// are held in the Go type of zero.
type numberType struct {
	baseType query.Type
	name     string
	zero     interface{}
	bits     uint
}

// Type implements Type interface.
func (t *numberType) Type() query.Type { return t.baseType }

// Zero implements Type interface.
func (t *numberType) Zero() interface{} { return t.zero }

// String implements Type interface.
func (t *numberType) String() string { return t.name }

// Convert implements Type interface. Times are taken as seconds since the
// epoch. Numbers that don't fit in the type are rejected with
// ErrValueOutOfRange instead of wrapping around.
func (t *numberType) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	if ti, ok := v.(time.Time); ok {
		v = float64(ti.Unix()) + float64(ti.Nanosecond())/float64(time.Second)
	}

	switch {
	case sqltypes.IsFloat(t.baseType):
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, err
		}
		if t.bits == 64 {
			return f, nil
		}
		if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return nil, ErrValueOutOfRange.New(v, t)
		}
		return float32(f), nil
	case sqltypes.IsUnsigned(t.baseType):
		u, err := t.toUnsigned(v)
		if err != nil {
			return nil, err
		}
		if t.bits < 64 && u > 1<<t.bits-1 {
			return nil, ErrValueOutOfRange.New(v, t)
		}
		return t.narrow(int64(u), u), nil
	default:
		i, err := t.toSigned(v)
		if err != nil {
			return nil, err
		}
		if t.bits < 64 && (i < -1<<(t.bits-1) || i > 1<<(t.bits-1)-1) {
			return nil, ErrValueOutOfRange.New(v, t)
		}
		return t.narrow(i, uint64(i)), nil
	}
}

// toSigned reads v as a 64-bit signed integer.
func (t *numberType) toSigned(v interface{}) (int64, error) {
	switch n := v.(type) {
	case uint64:
		if n > math.MaxInt64 {
			return 0, ErrValueOutOfRange.New(v, t)
		}
		return int64(n), nil
	case uint:
		return t.toSigned(uint64(n))
	case float32, float64:
		f := cast.ToFloat64(n)
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, ErrValueOutOfRange.New(v, t)
		}
		return int64(f), nil
	default:
		return cast.ToInt64E(v)
	}
}

// toUnsigned reads v as a 64-bit unsigned integer. Negative values are out
// of range.
func (t *numberType) toUnsigned(v interface{}) (uint64, error) {
	switch n := v.(type) {
	case uint, uint8, uint16, uint32, uint64:
		return cast.ToUint64E(n)
	case float32, float64:
		f := cast.ToFloat64(n)
		if math.IsNaN(f) || f < 0 || f >= math.MaxUint64 {
			return 0, ErrValueOutOfRange.New(v, t)
		}
		return uint64(f), nil
	case string:
		if u, err := strconv.ParseUint(strings.TrimSpace(n), 10, 64); err == nil {
			return u, nil
		}
	}

	i, err := t.toSigned(v)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, ErrValueOutOfRange.New(v, t)
	}
	return uint64(i), nil
}

// narrow returns the value in the Go type the type holds. Only the argument
// matching the signedness of the type is read.
func (t *numberType) narrow(i int64, u uint64) interface{} {
	switch t.zero.(type) {
	case int8:
		return int8(i)
	case int16:
		return int16(i)
	case int32:
		return int32(i)
	case uint8:
		return uint8(u)
	case uint16:
		return uint16(u)
	case uint32:
		return uint32(u)
	case uint64:
		return u
	default:
		return i
	}
}

// Compare implements Type interface. Floats order NaN after every other
// value and equal to itself, so that equality stays consistent with the
// hashing of canonical values.
func (t *numberType) Compare(a interface{}, b interface{}) (int, error) {
	if hasNulls, res := compareNulls(a, b); hasNulls {
		return res, nil
	}

	switch {
	case sqltypes.IsFloat(t.baseType):
		x, err := cast.ToFloat64E(a)
		if err != nil {
			return 0, err
		}
		y, err := cast.ToFloat64E(b)
		if err != nil {
			return 0, err
		}
		return compareFloat64(x, y), nil
	case sqltypes.IsUnsigned(t.baseType):
		x, err := cast.ToUint64E(a)
		if err != nil {
			return 0, err
		}
		y, err := cast.ToUint64E(b)
		if err != nil {
			return 0, err
		}
		return compareUint64(x, y), nil
	default:
		x, err := cast.ToInt64E(a)
		if err != nil {
			return 0, err
		}
		y, err := cast.ToInt64E(b)
		if err != nil {
			return 0, err
		}
		return compareInt64(x, y), nil
	}
}

// SQL implements Type interface.
func (t *numberType) SQL(v interface{}) (sqltypes.Value, error) {
	if v == nil {
		return sqltypes.NULL, nil
	}

	var buf []byte
	switch {
	case sqltypes.IsSigned(t.baseType):
		i, err := cast.ToInt64E(v)
		if err != nil {
			return sqltypes.Value{}, err
		}
		buf = strconv.AppendInt(nil, i, 10)
	case sqltypes.IsUnsigned(t.baseType):
		u, err := cast.ToUint64E(v)
		if err != nil {
			return sqltypes.Value{}, err
		}
		buf = strconv.AppendUint(nil, u, 10)
	default:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return sqltypes.Value{}, err
		}
		buf = strconv.AppendFloat(nil, f, 'g', -1, 64)
	}

	return sqltypes.MakeTrusted(t.baseType, buf), nil
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat64(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

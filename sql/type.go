package sql

import (
	"gopkg.in/src-d/go-errors.v1"
	"gopkg.in/src-d/go-vitess.v0/sqltypes"
	"gopkg.in/src-d/go-vitess.v0/vt/proto/query"
)

var (
	// ErrValueNotNil is thrown when a value that was expected to be nil, is not
	ErrValueNotNil = errors.NewKind("value not nil: %#v")

	// ErrNotTuple is returned when the value is not a tuple.
	ErrNotTuple = errors.NewKind("value of type %T is not a tuple")

	// ErrInvalidColumnNumber is returned when a tuple has an invalid number of
	// arguments.
	ErrInvalidColumnNumber = errors.NewKind("tuple should contain %d column(s), but has %d")

	// ErrConvertingToTime is returned when a value cannot be converted to a
	// date or datetime.
	ErrConvertingToTime = errors.NewKind("value %q can't be converted to time.Time")
)

// Type represent a SQL type.
type Type interface {
	// Type returns the query.Type for the given Type.
	Type() query.Type
	// Convert a value of a compatible type to a most accurate type.
	Convert(interface{}) (interface{}, error)
	// Compare returns an integer comparing two values.
	// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
	Compare(interface{}, interface{}) (int, error)
	// SQL returns the sqltypes.Value for the given value.
	SQL(interface{}) (sqltypes.Value, error)
	// Zero returns the golang zero value for this type
	Zero() interface{}
	// String returns the SQL name of the type.
	String() string
}

// Null represents the NULL type.
var Null Type = nullType{}

type nullType struct{}

// Type implements Type interface.
func (t nullType) Type() query.Type {
	return sqltypes.Null
}

// SQL implements Type interface.
func (t nullType) SQL(interface{}) (sqltypes.Value, error) {
	return sqltypes.NULL, nil
}

// Convert implements Type interface.
func (t nullType) Convert(v interface{}) (interface{}, error) {
	if v != nil {
		return nil, ErrValueNotNil.New(v)
	}

	return nil, nil
}

// Compare implements Type interface. Note that while this returns 0 (equals)
// for ordering purposes, in SQL NULL != NULL.
func (t nullType) Compare(a interface{}, b interface{}) (int, error) {
	return 0, nil
}

// Zero implements Type interface.
func (t nullType) Zero() interface{} {
	return nil
}

func (t nullType) String() string {
	return "NULL"
}

// IsNull returns true if t is the Null type.
func IsNull(t Type) bool {
	return t == Null
}

// IsInteger checks if t is a signed or unsigned integer type.
func IsInteger(t Type) bool {
	return sqltypes.IsIntegral(t.Type())
}

// IsSigned checks if t is a signed integer type.
func IsSigned(t Type) bool {
	return sqltypes.IsSigned(t.Type())
}

// IsUnsigned checks if t is an unsigned integer type.
func IsUnsigned(t Type) bool {
	return sqltypes.IsUnsigned(t.Type())
}

// IsFloat checks if t is float type.
func IsFloat(t Type) bool {
	return sqltypes.IsFloat(t.Type())
}

// IsTime checks if t is a timestamp, date or datetime
func IsTime(t Type) bool {
	switch t.Type() {
	case sqltypes.Date, sqltypes.Datetime, sqltypes.Timestamp:
		return true
	}
	return false
}

// IsText checks if t is a text type.
func IsText(t Type) bool {
	return sqltypes.IsText(t.Type())
}

// IsBlob checks if t is a binary type.
func IsBlob(t Type) bool {
	return sqltypes.IsBinary(t.Type())
}

// TypesEqual reports whether both types describe the same SQL type.
func TypesEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}

	at, aok := a.(*tupleType)
	bt, bok := b.(*tupleType)
	if aok != bok {
		return false
	}

	if aok {
		if len(at.elems) != len(bt.elems) {
			return false
		}
		for i := range at.elems {
			if !TypesEqual(at.elems[i], bt.elems[i]) {
				return false
			}
		}
		return true
	}

	return a.Type() == b.Type() && a.String() == b.String()
}

func compareNulls(a interface{}, b interface{}) (bool, int) {
	if a == nil && b == nil {
		return true, 0
	} else if a == nil {
		return true, -1
	} else if b == nil {
		return true, 1
	}
	return false, 0
}

// MustConvert calls the Convert function from a given Type, it err panics.
func MustConvert(t Type, v interface{}) interface{} {
	c, err := t.Convert(v)
	if err != nil {
		panic(err)
	}
	return c
}

// ConvertLossless converts v, a value of type from, to type to. It reports
// false when the conversion fails or converting the result back to from
// doesn't give v again, which means v has no equal in to. Strings are
// accepted as times whenever they can be parsed.
func ConvertLossless(to, from Type, v interface{}) (interface{}, bool) {
	converted, err := to.Convert(v)
	if err != nil {
		return nil, false
	}

	if v == nil || from == nil || IsNull(from) || TypesEqual(to, from) {
		return converted, true
	}

	if IsTime(to) && IsText(from) {
		return converted, true
	}

	back, err := from.Convert(converted)
	if err != nil {
		return nil, false
	}

	cmp, err := from.Compare(v, back)
	if err != nil || cmp != 0 {
		return nil, false
	}
	return converted, true
}

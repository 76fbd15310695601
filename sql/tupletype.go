package sql

import (
	"strings"

	"gopkg.in/src-d/go-errors.v1"
	"gopkg.in/src-d/go-vitess.v0/sqltypes"
	"gopkg.in/src-d/go-vitess.v0/vt/proto/query"
)

// ErrTupleToSQL is returned when a tuple value is asked for its wire
// representation.
var ErrTupleToSQL = errors.NewKind("tuple %s has no SQL value")

// tupleType is the type of a row constructor. A tuple of a single element
// is a parenthesized value and behaves as its element.
type tupleType struct {
	elems []Type
}

// CreateTuple returns a new tuple type with the given element types.
func CreateTuple(types ...Type) Type {
	return &tupleType{elems: types}
}

// IsTuple checks if t is a tuple type of more than one element.
func IsTuple(t Type) bool {
	tt, ok := t.(*tupleType)
	return ok && len(tt.elems) > 1
}

// NumColumns returns the number of columns in a type. This is one for all
// types, except tuples.
func NumColumns(t Type) int {
	if tt, ok := t.(*tupleType); ok {
		return len(tt.elems)
	}
	return 1
}

// TupleTypes returns the types of the elements of a tuple type, or the type
// itself if it's not a tuple.
func TupleTypes(t Type) []Type {
	if tt, ok := t.(*tupleType); ok {
		return tt.elems
	}
	return []Type{t}
}

// Type implements Type interface.
func (t *tupleType) Type() query.Type { return sqltypes.Expression }

// Convert implements Type interface. Every element is converted with the
// type at its position.
func (t *tupleType) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	vals, ok := v.([]interface{})
	if !ok {
		return nil, ErrNotTuple.New(v)
	}

	if len(vals) != len(t.elems) {
		return nil, ErrInvalidColumnNumber.New(len(t.elems), len(vals))
	}

	out := make([]interface{}, len(vals))
	for i, val := range vals {
		c, err := t.elems[i].Convert(val)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// Compare implements Type interface. Tuples are ordered lexicographically.
func (t *tupleType) Compare(a, b interface{}) (int, error) {
	if hasNulls, res := compareNulls(a, b); hasNulls {
		return res, nil
	}

	ca, err := t.Convert(a)
	if err != nil {
		return 0, err
	}

	cb, err := t.Convert(b)
	if err != nil {
		return 0, err
	}

	left, right := ca.([]interface{}), cb.([]interface{})
	for i, typ := range t.elems {
		cmp, err := typ.Compare(left[i], right[i])
		if err != nil || cmp != 0 {
			return cmp, err
		}
	}
	return 0, nil
}

// SQL implements Type interface.
func (t *tupleType) SQL(interface{}) (sqltypes.Value, error) {
	return sqltypes.Value{}, ErrTupleToSQL.New(t)
}

// Zero implements Type interface.
func (t *tupleType) Zero() interface{} {
	zero := make([]interface{}, len(t.elems))
	for i, typ := range t.elems {
		zero[i] = typ.Zero()
	}
	return zero
}

func (t *tupleType) String() string {
	var sb strings.Builder
	sb.WriteString("TUPLE(")
	for i, typ := range t.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(typ.String())
	}
	sb.WriteString(")")
	return sb.String()
}

package incode

import (
	"bytes"
	"fmt"

	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// Tristate is the result of a SQL boolean predicate.
type Tristate byte

const (
	// Unknown is the result of a comparison involving NULL.
	Unknown Tristate = iota
	// False means no candidate matched.
	False
	// True means a candidate matched.
	True
)

// Value returns the tristate as a SQL value: nil, false or true.
func (t Tristate) Value() interface{} {
	switch t {
	case True:
		return true
	case False:
		return false
	default:
		return nil
	}
}

func (t Tristate) String() string {
	switch t {
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	default:
		return "UNKNOWN"
	}
}

// table is the membership test generated for the non-null constants.
type table interface {
	contains(v interface{}) (bool, error)
	len() int
	describe() string
}

// Routine is a compiled IN predicate. It is immutable once compiled and can
// be probed concurrently.
type Routine struct {
	typ      sql.Type
	strategy SwitchGenerationCase
	size     int
	table    table
	// values holds the distinct non-null constants.
	values []interface{}
	// partial holds tuple constants with NULL elements, which can't be
	// placed in the table.
	partial   []interface{}
	residuals []sql.Expression
	hasNull   bool
}

// Type returns the comparison type of the routine.
func (r *Routine) Type() sql.Type { return r.typ }

// Strategy returns the strategy used to test the constants.
func (r *Routine) Strategy() SwitchGenerationCase { return r.strategy }

// Residuals returns the expressions evaluated on every probe.
func (r *Routine) Residuals() []sql.Expression { return r.residuals }

// HasNull returns whether the NULL constant was among the candidates.
func (r *Routine) HasNull() bool { return r.hasNull }

// Probe tests whether value is in the list. The row is used to evaluate the
// residual expressions, which are evaluated in order until one matches.
func (r *Routine) Probe(ctx *sql.Context, row sql.Row, value interface{}) (Tristate, error) {
	if value == nil {
		return Unknown, nil
	}

	value, exact, err := convertInput(r.typ, value)
	if err != nil {
		return Unknown, err
	}

	sawNull := r.hasNull
	switch {
	case exact && !hasNullElement(value):
		ok, err := r.table.contains(value)
		if err != nil {
			return Unknown, err
		}
		if ok {
			return True, nil
		}
	case sql.IsTuple(r.typ):
		// No constant can be equal, but any of them may be unknown.
		for _, c := range r.values {
			res, err := matchValue(r.typ, value, c)
			if err != nil {
				return Unknown, err
			}
			if res == Unknown {
				sawNull = true
				break
			}
		}
	}

	for _, c := range r.partial {
		res, err := matchValue(r.typ, value, c)
		if err != nil {
			return Unknown, err
		}
		switch res {
		case True:
			return True, nil
		case Unknown:
			sawNull = true
		}
	}

	for _, e := range r.residuals {
		v, err := e.Eval(ctx, row)
		if err != nil {
			return Unknown, err
		}

		if v == nil {
			sawNull = true
			continue
		}

		v, _, err = convertInput(r.typ, v)
		if err != nil {
			return Unknown, err
		}

		res, err := matchValue(r.typ, value, v)
		if err != nil {
			return Unknown, err
		}
		switch res {
		case True:
			return True, nil
		case Unknown:
			sawNull = true
		}
	}

	if sawNull {
		return Unknown, nil
	}
	return False, nil
}

// String returns a one line description of the routine.
func (r *Routine) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s(%s) size=%d constants=[%s]", r.strategy, r.typ, r.size, r.table.describe())
	if len(r.partial) > 0 {
		fmt.Fprintf(&buf, " partial=%d", len(r.partial))
	}
	fmt.Fprintf(&buf, " residuals=%d null=%t", len(r.residuals), r.hasNull)
	return buf.String()
}

// matchValue compares two non-null values of type t with SQL equality.
// Tuples are equal if all their elements are, and unknown if no element
// differs but some are NULL.
func matchValue(t sql.Type, a, b interface{}) (Tristate, error) {
	if a == nil || b == nil {
		return Unknown, nil
	}

	if a == outOfRange || b == outOfRange {
		return False, nil
	}

	if sql.IsTuple(t) {
		av, aok := a.([]interface{})
		bv, bok := b.([]interface{})
		if !aok || !bok {
			return Unknown, sql.ErrNotTuple.New(a)
		}

		types := sql.TupleTypes(t)
		if len(av) != len(types) || len(bv) != len(types) {
			return Unknown, sql.ErrInvalidColumnNumber.New(len(types), len(bv))
		}

		result := True
		for i, typ := range types {
			res, err := matchValue(typ, av[i], bv[i])
			if err != nil {
				return Unknown, err
			}
			switch res {
			case False:
				return False, nil
			case Unknown:
				result = Unknown
			}
		}
		return result, nil
	}

	cmp, err := t.Compare(a, b)
	if err != nil {
		return Unknown, err
	}
	if cmp == 0 {
		return True, nil
	}
	return False, nil
}

func hasNullElement(v interface{}) bool {
	vals, ok := v.([]interface{})
	if !ok {
		return false
	}
	for _, e := range vals {
		if e == nil || hasNullElement(e) {
			return true
		}
	}
	return false
}

// unmatchable is the type of outOfRange.
type unmatchable struct{}

// outOfRange replaces a value too large or too small for its type. It is
// not equal to any value, but comparing it with NULL is still unknown.
var outOfRange interface{} = unmatchable{}

// convertInput converts v to t. Values, or tuple elements, out of the range
// of their type are replaced by outOfRange, and exact is false.
func convertInput(t sql.Type, v interface{}) (converted interface{}, exact bool, err error) {
	if !sql.IsTuple(t) {
		converted, err = t.Convert(v)
		if sql.ErrValueOutOfRange.Is(err) {
			return outOfRange, false, nil
		}
		return converted, err == nil, err
	}

	if v == nil {
		return nil, true, nil
	}

	vals, ok := v.([]interface{})
	if !ok {
		return nil, false, sql.ErrNotTuple.New(v)
	}

	types := sql.TupleTypes(t)
	if len(vals) != len(types) {
		return nil, false, sql.ErrInvalidColumnNumber.New(len(types), len(vals))
	}

	exact = true
	out := make([]interface{}, len(vals))
	for i, val := range vals {
		var elemExact bool
		out[i], elemExact, err = convertInput(types[i], val)
		if err != nil {
			return nil, false, err
		}
		exact = exact && elemExact
	}
	return out, exact, nil
}

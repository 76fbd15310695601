package expression

import (
	"fmt"
	"strings"

	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// Tuple is a parenthesized list of expressions, such as the list of an IN
// predicate or a row constructor. A tuple of one element behaves as the
// element itself.
type Tuple []sql.Expression

var _ sql.Expression = Tuple(nil)

// NewTuple creates a new Tuple expression.
func NewTuple(exprs ...sql.Expression) Tuple {
	return Tuple(exprs)
}

// Eval implements the Expression interface. Values of tuples with more than
// one element are returned as a []interface{}.
func (t Tuple) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	if len(t) == 1 {
		return t[0].Eval(ctx, row)
	}

	values := make([]interface{}, len(t))
	for i, e := range t {
		var err error
		if values[i], err = e.Eval(ctx, row); err != nil {
			return nil, err
		}
	}

	return values, nil
}

// IsNullable implements the Expression interface. A tuple is never NULL,
// but its elements may be.
func (t Tuple) IsNullable() bool {
	return len(t) == 1 && t[0].IsNullable()
}

// Resolved implements the Expression interface.
func (t Tuple) Resolved() bool {
	for _, e := range t {
		if !e.Resolved() {
			return false
		}
	}
	return true
}

// Type implements the Expression interface.
func (t Tuple) Type() sql.Type {
	if len(t) == 1 {
		return t[0].Type()
	}

	types := make([]sql.Type, len(t))
	for i, e := range t {
		types[i] = e.Type()
	}
	return sql.CreateTuple(types...)
}

// Children implements the Expression interface.
func (t Tuple) Children() []sql.Expression { return t }

// WithChildren implements the Expression interface.
func (t Tuple) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if err := checkChildren(t, children, len(t)); err != nil {
		return nil, err
	}
	return NewTuple(children...), nil
}

func (t Tuple) String() string {
	return "(" + t.join(func(e sql.Expression) string { return e.String() }) + ")"
}

// DebugString implements the sql.DebugStringer interface.
func (t Tuple) DebugString() string {
	return fmt.Sprintf("TUPLE(%s)", t.join(func(e sql.Expression) string { return sql.DebugString(e) }))
}

func (t Tuple) join(f func(sql.Expression) string) string {
	parts := make([]string, len(t))
	for i, e := range t {
		parts[i] = f(e)
	}
	return strings.Join(parts, ", ")
}

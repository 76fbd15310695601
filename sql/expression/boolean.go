package expression

import (
	"fmt"

	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// Not negates a boolean expression. NOT NULL is NULL.
type Not struct {
	UnaryExpression
}

var _ sql.Expression = (*Not)(nil)

// NewNot returns a new Not node.
func NewNot(child sql.Expression) *Not {
	return &Not{UnaryExpression{child}}
}

// Type implements the Expression interface.
func (e *Not) Type() sql.Type { return sql.Boolean }

// Eval implements the Expression interface.
func (e *Not) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	v, err := evalBool(ctx, e.Child, row)
	if err != nil || v == nil {
		return nil, err
	}

	return !v.(bool), nil
}

func (e *Not) String() string {
	return fmt.Sprintf("(NOT(%s))", e.Child)
}

// DebugString implements the sql.DebugStringer interface.
func (e *Not) DebugString() string {
	return fmt.Sprintf("(NOT(%s))", sql.DebugString(e.Child))
}

// WithChildren implements the Expression interface.
func (e *Not) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if err := checkChildren(e, children, 1); err != nil {
		return nil, err
	}
	return NewNot(children[0]), nil
}

// IsNull checks whether an expression evaluates to NULL. It is never NULL
// itself.
type IsNull struct {
	UnaryExpression
}

var _ sql.Expression = (*IsNull)(nil)

// NewIsNull creates a new IsNull expression.
func NewIsNull(child sql.Expression) *IsNull {
	return &IsNull{UnaryExpression{child}}
}

// Type implements the Expression interface.
func (e *IsNull) Type() sql.Type { return sql.Boolean }

// IsNullable implements the Expression interface.
func (e *IsNull) IsNullable() bool { return false }

// Eval implements the Expression interface.
func (e *IsNull) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	v, err := e.Child.Eval(ctx, row)
	if err != nil {
		return nil, err
	}

	return v == nil, nil
}

func (e *IsNull) String() string {
	return e.Child.String() + " IS NULL"
}

// DebugString implements the sql.DebugStringer interface.
func (e *IsNull) DebugString() string {
	return sql.DebugString(e.Child) + " IS NULL"
}

// WithChildren implements the Expression interface.
func (e *IsNull) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if err := checkChildren(e, children, 1); err != nil {
		return nil, err
	}
	return NewIsNull(children[0]), nil
}

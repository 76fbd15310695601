package expression

import (
	"fmt"

	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// Comparer implements a comparison expression.
type Comparer interface {
	sql.Expression
	Compare(ctx *sql.Context, row sql.Row) (int, error)
	Left() sql.Expression
	Right() sql.Expression
}

// Equals is a comparison that checks an expression is equal to another.
type Equals struct {
	BinaryExpression
}

var _ Comparer = (*Equals)(nil)

// NewEquals returns a new Equals expression.
func NewEquals(left sql.Expression, right sql.Expression) *Equals {
	return &Equals{BinaryExpression{left, right}}
}

// Left implements the Comparer interface.
func (e *Equals) Left() sql.Expression { return e.BinaryExpression.Left }

// Right implements the Comparer interface.
func (e *Equals) Right() sql.Expression { return e.BinaryExpression.Right }

// Type implements the Expression interface.
func (*Equals) Type() sql.Type {
	return sql.Boolean
}

// Compare the two sides using the type of the left side. A NULL on either
// side compares as nil and must be checked by the caller.
func (e *Equals) Compare(ctx *sql.Context, row sql.Row) (int, error) {
	left, err := e.Left().Eval(ctx, row)
	if err != nil {
		return 0, err
	}

	right, err := e.Right().Eval(ctx, row)
	if err != nil {
		return 0, err
	}

	return e.compareValues(left, right)
}

func (e *Equals) compareValues(left, right interface{}) (int, error) {
	typ := e.Left().Type()
	if sql.IsNull(typ) {
		typ = e.Right().Type()
	}

	left, err := typ.Convert(left)
	if err != nil {
		return 0, err
	}

	right, err = typ.Convert(right)
	if err != nil {
		return 0, err
	}

	return typ.Compare(left, right)
}

// Eval implements the Expression interface.
func (e *Equals) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	left, err := e.Left().Eval(ctx, row)
	if err != nil {
		return nil, err
	}

	right, err := e.Right().Eval(ctx, row)
	if err != nil {
		return nil, err
	}

	if left == nil || right == nil {
		return nil, nil
	}

	if !sql.IsNull(e.Left().Type()) {
		var ok bool
		if right, ok = sql.ConvertLossless(e.Left().Type(), e.Right().Type(), right); !ok {
			return false, nil
		}
	}

	result, err := e.compareValues(left, right)
	if err != nil {
		return nil, err
	}

	return result == 0, nil
}

// WithChildren implements the Expression interface.
func (e *Equals) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if err := checkChildren(e, children, 2); err != nil {
		return nil, err
	}
	return NewEquals(children[0], children[1]), nil
}

func (e *Equals) String() string {
	return fmt.Sprintf("(%s = %s)", e.Left(), e.Right())
}

// DebugString implements the sql.DebugStringer interface.
func (e *Equals) DebugString() string {
	return fmt.Sprintf("(%s = %s)", sql.DebugString(e.Left()), sql.DebugString(e.Right()))
}

package expression

import (
	"fmt"

	"gopkg.in/src-d/go-errors.v1"

	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// ErrUnsupportedInOperand is returned when there is an invalid righthand
// operand in an IN operator.
var ErrUnsupportedInOperand = errors.NewKind("right operand in IN operation must be tuple, but is %T")

// InTuple is an expression that checks an expression is inside a list of
// expressions. Every element is evaluated and compared on each call; the
// analyzer replaces it with a compiled form when it can.
type InTuple struct {
	BinaryExpression
}

var _ Comparer = (*InTuple)(nil)

// NewInTuple creates an InTuple expression.
func NewInTuple(left sql.Expression, right sql.Expression) *InTuple {
	return &InTuple{BinaryExpression{left, right}}
}

// Compare implements the Comparer interface. InTuple has a Left and a Right
// but can't be ordered.
func (in *InTuple) Compare(ctx *sql.Context, row sql.Row) (int, error) {
	panic("Compare not implemented for InTuple")
}

// Type implements the Expression interface.
func (in *InTuple) Type() sql.Type {
	return sql.Boolean
}

// Left implements the Comparer interface.
func (in *InTuple) Left() sql.Expression {
	return in.BinaryExpression.Left
}

// Right implements the Comparer interface.
func (in *InTuple) Right() sql.Expression {
	return in.BinaryExpression.Right
}

// Eval implements the Expression interface. The result is NULL when the
// left value is NULL, or when nothing matches and some element is NULL.
// Elements with no equal value in the type of the left side never match.
func (in *InTuple) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	elems, err := in.elements()
	if err != nil {
		return nil, err
	}

	typ := in.Left().Type()
	left, err := in.Left().Eval(ctx, row)
	if err != nil || left == nil {
		return nil, err
	}

	if left, err = typ.Convert(left); err != nil {
		return nil, err
	}

	var sawNull bool
	for _, el := range elems {
		v, err := el.Eval(ctx, row)
		if err != nil {
			return nil, err
		}

		if v == nil {
			sawNull = true
			continue
		}

		v, ok := sql.ConvertLossless(typ, el.Type(), v)
		if !ok {
			continue
		}

		cmp, err := typ.Compare(left, v)
		if err != nil {
			return nil, err
		}

		if cmp == 0 {
			return true, nil
		}
	}

	if sawNull {
		return nil, nil
	}
	return false, nil
}

// elements returns the list of the right operand once checked that every
// element has as many columns as the left operand.
func (in *InTuple) elements() (Tuple, error) {
	right, ok := in.Right().(Tuple)
	if !ok {
		return nil, ErrUnsupportedInOperand.New(in.Right())
	}

	cols := sql.NumColumns(in.Left().Type())
	for _, el := range right {
		if n := sql.NumColumns(el.Type()); n != cols {
			return nil, sql.ErrInvalidOperandColumns.New(cols, n)
		}
	}
	return right, nil
}

// WithChildren implements the Expression interface.
func (in *InTuple) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if err := checkChildren(in, children, 2); err != nil {
		return nil, err
	}
	return NewInTuple(children[0], children[1]), nil
}

func (in *InTuple) String() string {
	return fmt.Sprintf("(%s IN %s)", in.Left(), in.Right())
}

// DebugString implements the sql.DebugStringer interface.
func (in *InTuple) DebugString() string {
	return fmt.Sprintf("(%s IN %s)", sql.DebugString(in.Left()), sql.DebugString(in.Right()))
}

// NewNotInTuple creates the negation of an InTuple expression.
func NewNotInTuple(left sql.Expression, right sql.Expression) sql.Expression {
	return NewNot(NewInTuple(left, right))
}

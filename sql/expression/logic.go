package expression

import (
	"fmt"

	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// And checks whether two expressions are true.
type And struct {
	BinaryExpression
}

// NewAnd creates a new And expression.
func NewAnd(left, right sql.Expression) sql.Expression {
	return &And{BinaryExpression{Left: left, Right: right}}
}

// JoinAnd joins several expressions with And.
func JoinAnd(exprs ...sql.Expression) sql.Expression {
	switch len(exprs) {
	case 0:
		return nil
	case 1:
		return exprs[0]
	default:
		return NewAnd(exprs[0], JoinAnd(exprs[1:]...))
	}
}

func (a *And) String() string {
	return fmt.Sprintf("(%s AND %s)", a.Left, a.Right)
}

// DebugString implements the sql.DebugStringer interface.
func (a *And) DebugString() string {
	return fmt.Sprintf("(%s AND %s)", sql.DebugString(a.Left), sql.DebugString(a.Right))
}

// Type implements the Expression interface.
func (*And) Type() sql.Type {
	return sql.Boolean
}

// Eval implements the Expression interface.
func (a *And) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	lval, err := evalBool(ctx, a.Left, row)
	if err != nil {
		return nil, err
	}

	if lval == false {
		return false, nil
	}

	rval, err := evalBool(ctx, a.Right, row)
	if err != nil {
		return nil, err
	}

	if rval == false {
		return false, nil
	}

	if lval == nil || rval == nil {
		return nil, nil
	}

	return true, nil
}

// WithChildren implements the Expression interface.
func (a *And) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if err := checkChildren(a, children, 2); err != nil {
		return nil, err
	}
	return NewAnd(children[0], children[1]), nil
}

// Or checks whether one of the two given expressions is true.
type Or struct {
	BinaryExpression
}

// NewOr creates a new Or expression.
func NewOr(left, right sql.Expression) sql.Expression {
	return &Or{BinaryExpression{Left: left, Right: right}}
}

func (o *Or) String() string {
	return fmt.Sprintf("(%s OR %s)", o.Left, o.Right)
}

// DebugString implements the sql.DebugStringer interface.
func (o *Or) DebugString() string {
	return fmt.Sprintf("(%s OR %s)", sql.DebugString(o.Left), sql.DebugString(o.Right))
}

// Type implements the Expression interface.
func (*Or) Type() sql.Type {
	return sql.Boolean
}

// Eval implements the Expression interface.
func (o *Or) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	lval, err := evalBool(ctx, o.Left, row)
	if err != nil {
		return nil, err
	}

	if lval == true {
		return true, nil
	}

	rval, err := evalBool(ctx, o.Right, row)
	if err != nil {
		return nil, err
	}

	if rval == true {
		return true, nil
	}

	if lval == nil || rval == nil {
		return nil, nil
	}

	return false, nil
}

// WithChildren implements the Expression interface.
func (o *Or) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if err := checkChildren(o, children, 2); err != nil {
		return nil, err
	}
	return NewOr(children[0], children[1]), nil
}

// evalBool evaluates e as a SQL boolean: nil, true or false. Numbers are
// true when they are not zero.
func evalBool(ctx *sql.Context, e sql.Expression, row sql.Row) (interface{}, error) {
	v, err := e.Eval(ctx, row)
	if err != nil {
		return nil, err
	}

	switch b := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return b, nil
	}

	i, err := sql.Int64.Convert(v)
	if err != nil {
		return nil, sql.ErrInvalidType.New(fmt.Sprintf("%T", v))
	}
	return i.(int64) != 0, nil
}

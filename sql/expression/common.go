package expression

import (
	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// UnaryExpression is embedded by the expressions with a single operand.
type UnaryExpression struct {
	Child sql.Expression
}

// Children implements the Expression interface.
func (u *UnaryExpression) Children() []sql.Expression { return []sql.Expression{u.Child} }

// Resolved implements the Expression interface.
func (u *UnaryExpression) Resolved() bool { return u.Child.Resolved() }

// IsNullable implements the Expression interface.
func (u *UnaryExpression) IsNullable() bool { return u.Child.IsNullable() }

// BinaryExpression is embedded by the expressions with a left and a right
// operand, such as comparisons and IN predicates.
type BinaryExpression struct {
	Left  sql.Expression
	Right sql.Expression
}

// Children implements the Expression interface.
func (b *BinaryExpression) Children() []sql.Expression {
	return []sql.Expression{b.Left, b.Right}
}

// Resolved implements the Expression interface.
func (b *BinaryExpression) Resolved() bool {
	return b.Left.Resolved() && b.Right.Resolved()
}

// IsNullable implements the Expression interface.
func (b *BinaryExpression) IsNullable() bool {
	return b.Left.IsNullable() || b.Right.IsNullable()
}

func checkChildren(e sql.Expression, children []sql.Expression, expected int) error {
	if len(children) != expected {
		return sql.ErrInvalidChildrenNumber.New(e, len(children), expected)
	}
	return nil
}

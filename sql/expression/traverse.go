package expression

import (
	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// Inspect calls f for expr and then, while f keeps returning true, for each
// of its descendants in depth-first order. Children of a node for which f
// returned false are skipped.
func Inspect(expr sql.Expression, f func(sql.Expression) bool) {
	if !f(expr) {
		return
	}

	for _, child := range expr.Children() {
		Inspect(child, f)
	}
}

// InspectUp calls f on every node, children first, and stops as soon as f
// returns true. It reports whether f returned true for any node.
func InspectUp(expr sql.Expression, f func(sql.Expression) bool) bool {
	for _, child := range expr.Children() {
		if InspectUp(child, f) {
			return true
		}
	}
	return f(expr)
}

// TransformUp rebuilds the expression bottom up, replacing every node with
// the result of f once its children have been transformed.
func TransformUp(e sql.Expression, f sql.TransformExprFunc) (sql.Expression, error) {
	children := e.Children()
	if len(children) > 0 {
		transformed := make([]sql.Expression, len(children))
		for i, child := range children {
			var err error
			if transformed[i], err = TransformUp(child, f); err != nil {
				return nil, err
			}
		}

		var err error
		if e, err = e.WithChildren(transformed...); err != nil {
			return nil, err
		}
	}

	return f(e)
}

// TransformInPredicates applies f to every IN predicate of the expression,
// innermost first. Other nodes are rebuilt with their transformed children.
func TransformInPredicates(
	e sql.Expression,
	f func(*InTuple) (sql.Expression, error),
) (sql.Expression, error) {
	return TransformUp(e, func(e sql.Expression) (sql.Expression, error) {
		if in, ok := e.(*InTuple); ok {
			return f(in)
		}
		return e, nil
	})
}

// Unresolved returns the first node without children that is not resolved,
// or nil if there is none.
func Unresolved(e sql.Expression) sql.Expression {
	var found sql.Expression
	Inspect(e, func(e sql.Expression) bool {
		if found != nil {
			return false
		}

		if !e.Resolved() && len(e.Children()) == 0 {
			found = e
		}
		return found == nil
	})
	return found
}

package analyzer

import (
	"gopkg.in/src-d/go-sqlin.v0/sql"
	"gopkg.in/src-d/go-sqlin.v0/sql/expression"
)

// coerceInLiterals retypes the literals in the list of an IN predicate to
// the type of its left side, so the list can be compiled. A literal is only
// retyped when no information is lost in the conversion. NULLs always take
// the type of the left side. Other expressions are left as they are.
func coerceInLiterals(ctx *sql.Context, a *Analyzer, schema sql.Schema, e sql.Expression) (sql.Expression, error) {
	span, _ := ctx.Span("coerce_in_literals")
	defer span.Finish()

	return expression.TransformInPredicates(e, func(in *expression.InTuple) (sql.Expression, error) {
		if !in.Left().Resolved() {
			return in, nil
		}

		typ := in.Left().Type()
		if sql.IsNull(typ) {
			return in, nil
		}

		right, ok := in.Right().(expression.Tuple)
		if !ok {
			return in, nil
		}

		var changed bool
		elems := make([]sql.Expression, len(right))
		for i, el := range right {
			var ok bool
			elems[i], ok = coerceLiteral(typ, el)
			changed = changed || ok
		}

		if !changed {
			return in, nil
		}

		a.Log(ctx, "coerced literals of %s to %s", in, typ)
		return expression.NewInTuple(in.Left(), expression.NewTuple(elems...)), nil
	})
}

// coerceLiteral returns the expression retyped to typ and whether it was
// changed at all.
func coerceLiteral(typ sql.Type, e sql.Expression) (sql.Expression, bool) {
	switch e := e.(type) {
	case *expression.Literal:
		if sql.TypesEqual(e.Type(), typ) {
			return e, false
		}

		if e.Value() == nil {
			return expression.NewLiteral(nil, typ), true
		}

		v, ok := sql.ConvertLossless(typ, e.Type(), e.Value())
		if !ok || v == nil {
			return e, false
		}
		return expression.NewLiteral(v, typ), true
	case expression.Tuple:
		if !sql.IsTuple(typ) {
			if len(e) == 1 {
				return coerceLiteral(typ, e[0])
			}
			return e, false
		}

		types := sql.TupleTypes(typ)
		if len(types) != len(e) {
			return e, false
		}

		var changed bool
		elems := make([]sql.Expression, len(e))
		for i, el := range e {
			var ok bool
			elems[i], ok = coerceLiteral(types[i], el)
			changed = changed || ok
		}

		if !changed {
			return e, false
		}
		return expression.NewTuple(elems...), true
	default:
		return e, false
	}
}

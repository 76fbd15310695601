package analyzer

import (
	"gopkg.in/src-d/go-sqlin.v0/sql"
	"gopkg.in/src-d/go-sqlin.v0/sql/expression"
	"gopkg.in/src-d/go-sqlin.v0/sql/expression/incode"
)

// applySwitchIn replaces the IN predicates whose list is made of expressions
// of the type of their left side with a compiled SwitchIn.
func applySwitchIn(ctx *sql.Context, a *Analyzer, schema sql.Schema, e sql.Expression) (sql.Expression, error) {
	span, ctx := ctx.Span("apply_switch_in")
	defer span.Finish()

	return expression.TransformInPredicates(e, func(in *expression.InTuple) (sql.Expression, error) {
		if !canCompile(in) {
			return in, nil
		}

		compiled, err := incode.NewSwitchIn(ctx, a.Options, in.Left(), in.Right())
		if err != nil {
			return nil, err
		}

		a.Log(ctx, "compiled %s with strategy %s", in, compiled.Routine().Strategy())
		return compiled, nil
	})
}

// canCompile checks that every element of the list has the type of the left
// side, or is NULL.
func canCompile(in *expression.InTuple) bool {
	if !in.Resolved() {
		return false
	}

	typ := in.Left().Type()
	if sql.IsNull(typ) {
		return false
	}

	right, ok := in.Right().(expression.Tuple)
	if !ok {
		return false
	}

	for _, el := range right {
		if sql.TypesEqual(el.Type(), typ) {
			continue
		}

		if lit, ok := el.(*expression.Literal); ok && lit.Value() == nil {
			continue
		}

		return false
	}

	return true
}

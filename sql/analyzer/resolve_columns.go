package analyzer

import (
	"gopkg.in/src-d/go-sqlin.v0/sql"
	"gopkg.in/src-d/go-sqlin.v0/sql/expression"
)

func resolveColumns(ctx *sql.Context, a *Analyzer, schema sql.Schema, e sql.Expression) (sql.Expression, error) {
	span, _ := ctx.Span("resolve_columns")
	defer span.Finish()

	return expression.TransformUp(e, func(e sql.Expression) (sql.Expression, error) {
		uc, ok := e.(*expression.UnresolvedColumn)
		if !ok {
			return e, nil
		}

		idx := schema.IndexOf(uc.Name(), uc.Table())
		if idx < 0 {
			return nil, sql.ErrColumnNotFound.New(uc)
		}

		a.Log(ctx, "column %s resolved to field %d of type %s", uc, idx, schema[idx].Type)
		return expression.NewGetFieldFromSchema(schema, idx), nil
	})
}

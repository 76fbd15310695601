package analyzer

import (
	"gopkg.in/src-d/go-errors.v1"

	"gopkg.in/src-d/go-sqlin.v0/sql"
	"gopkg.in/src-d/go-sqlin.v0/sql/expression"
)

// ErrValidationResolved is returned when the expression can not be resolved.
var ErrValidationResolved = errors.NewKind("expression not resolved: %s")

func validateIsResolved(ctx *sql.Context, a *Analyzer, schema sql.Schema, e sql.Expression) (sql.Expression, error) {
	span, _ := ctx.Span("validate_is_resolved")
	defer span.Finish()

	if !e.Resolved() {
		unresolved := expression.Unresolved(e)
		if unresolved == nil {
			unresolved = e
		}
		return nil, ErrValidationResolved.New(unresolved)
	}

	return e, nil
}

package analyzer

import (
	"reflect"

	"github.com/sirupsen/logrus"

	"gopkg.in/src-d/go-sqlin.v0/sql"
)

// RuleFunc is the function to be applied in a rule.
type RuleFunc func(*sql.Context, *Analyzer, sql.Schema, sql.Expression) (sql.Expression, error)

// Rule to transform expressions.
type Rule struct {
	// Name of the rule.
	Name string
	// Apply transforms an expression.
	Apply RuleFunc
}

// Batch is a list of rules applied in order, over and over, until the
// expression stops changing or Iterations passes are done.
type Batch struct {
	Desc       string
	Iterations int
	Rules      []Rule
}

func newBatch(desc string, iterations int, rules []Rule) *Batch {
	return &Batch{Desc: desc, Iterations: iterations, Rules: rules}
}

// Eval runs the batch on e. When the expression still changes after the
// last allowed pass, it is returned along with ErrMaxAnalysisIters.
func (b *Batch) Eval(ctx *sql.Context, a *Analyzer, schema sql.Schema, e sql.Expression) (sql.Expression, error) {
	if b.Iterations == 0 || len(b.Rules) == 0 {
		return e, nil
	}

	cur := e
	for i := 0; i < b.Iterations; i++ {
		next, err := b.pass(ctx, a, schema, cur)
		if err != nil {
			return nil, err
		}

		if b.Iterations == 1 || reflect.DeepEqual(cur, next) {
			return next, nil
		}
		cur = next
	}

	return cur, ErrMaxAnalysisIters.New(b.Iterations)
}

func (b *Batch) pass(ctx *sql.Context, a *Analyzer, schema sql.Schema, e sql.Expression) (sql.Expression, error) {
	for _, rule := range b.Rules {
		rctx := ctx.WithFields(logrus.Fields{"rule": rule.Name})
		a.Log(rctx, "evaluating rule")

		var err error
		if e, err = rule.Apply(rctx, a, schema, e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

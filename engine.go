// Package sqlin compiles SQL predicates and evaluates them on rows. IN
// predicates whose lists are known at compile time are turned into switches
// or sets chosen by the type and size of the list.
package sqlin // import "gopkg.in/src-d/go-sqlin.v0"

import (
	opentracing "github.com/opentracing/opentracing-go"

	"gopkg.in/src-d/go-sqlin.v0/sql"
	"gopkg.in/src-d/go-sqlin.v0/sql/analyzer"
	"gopkg.in/src-d/go-sqlin.v0/sql/parse"
)

// Engine compiles and evaluates SQL predicates.
type Engine struct {
	Analyzer *analyzer.Analyzer
}

// New creates a new Engine with the given configuration.
func New(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	ab := analyzer.NewBuilder().WithOptions(cfg.Options())
	if cfg.Debug {
		ab = ab.WithDebug()
	}

	return &Engine{Analyzer: ab.Build()}
}

// NewDefault creates a new Engine with the default configuration.
func NewDefault() *Engine {
	return New(nil)
}

// Compile parses the given predicate and analyzes it against the schema of
// the rows it will be evaluated on. IN predicates are compiled when possible.
func (e *Engine) Compile(
	ctx *sql.Context,
	schema sql.Schema,
	predicate string,
) (sql.Expression, error) {
	if ctx == nil {
		ctx = sql.NewEmptyContext()
	}

	span, ctx := ctx.Span("compile_predicate", opentracing.Tag{Key: "predicate", Value: predicate})
	defer span.Finish()

	parsed, err := parse.ParseExpr(ctx, predicate)
	if err != nil {
		return nil, err
	}

	return e.Analyzer.Analyze(ctx, schema, parsed)
}

// Eval compiles the predicate and evaluates it on the given row, which must
// conform to the schema.
func (e *Engine) Eval(
	ctx *sql.Context,
	schema sql.Schema,
	predicate string,
	row sql.Row,
) (interface{}, error) {
	if ctx == nil {
		ctx = sql.NewEmptyContext()
	}

	if err := schema.CheckRow(row); err != nil {
		return nil, err
	}

	expr, err := e.Compile(ctx, schema, predicate)
	if err != nil {
		return nil, err
	}

	return expr.Eval(ctx, row)
}

// Filter compiles the predicate once and returns the rows for which it
// evaluates to true. Rows evaluating to false or NULL are dropped.
func (e *Engine) Filter(
	ctx *sql.Context,
	schema sql.Schema,
	predicate string,
	rows []sql.Row,
) ([]sql.Row, error) {
	if ctx == nil {
		ctx = sql.NewEmptyContext()
	}

	expr, err := e.Compile(ctx, schema, predicate)
	if err != nil {
		return nil, err
	}

	var result []sql.Row
	for _, row := range rows {
		if err := schema.CheckRow(row); err != nil {
			return nil, err
		}

		v, err := expr.Eval(ctx, row)
		if err != nil {
			return nil, err
		}

		if v == true {
			result = append(result, row)
		}
	}

	ctx.GetLogger().WithField("predicate", predicate).
		Debugf("filtered %d rows out of %d", len(result), len(rows))

	return result, nil
}

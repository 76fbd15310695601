// Package analyzer resolves predicate expressions against a schema and
// rewrites the IN predicates in them into compiled routines.
package analyzer // import "gopkg.in/src-d/go-sqlin.v0/sql/analyzer"

import (
	"os"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/src-d/go-errors.v1"

	"gopkg.in/src-d/go-sqlin.v0/sql"
	"gopkg.in/src-d/go-sqlin.v0/sql/expression/incode"
)

const debugAnalyzerKey = "DEBUG_ANALYZER"

const maxAnalysisIterations = 1000

// ErrMaxAnalysisIters is thrown when the analysis iterations are exceeded
var ErrMaxAnalysisIters = errors.NewKind("exceeded max analysis iterations (%d)")

// Builder provides an easy way to generate Analyzer with custom rules and options.
type Builder struct {
	pre     []Rule
	post    []Rule
	options incode.Options
	debug   bool
}

// NewBuilder creates a new Builder with the default compile options.
func NewBuilder() *Builder {
	return &Builder{options: incode.DefaultOptions()}
}

// WithDebug activates debug on the Analyzer.
func (ab *Builder) WithDebug() *Builder {
	ab.debug = true
	return ab
}

// WithOptions sets the options used to compile IN predicates.
func (ab *Builder) WithOptions(opts incode.Options) *Builder {
	ab.options = opts
	return ab
}

// AddPreAnalyzeRule adds a rule that runs before columns are resolved.
func (ab *Builder) AddPreAnalyzeRule(name string, fn RuleFunc) *Builder {
	ab.pre = append(ab.pre, Rule{name, fn})
	return ab
}

// AddPostAnalyzeRule adds a rule that runs once IN predicates are compiled
// and before validation.
func (ab *Builder) AddPostAnalyzeRule(name string, fn RuleFunc) *Builder {
	ab.post = append(ab.post, Rule{name, fn})
	return ab
}

// Build creates a new Analyzer. Debug is also enabled by the DEBUG_ANALYZER
// environment variable.
func (ab *Builder) Build() *Analyzer {
	_, debug := os.LookupEnv(debugAnalyzerKey)

	return &Analyzer{
		Debug:   debug || ab.debug,
		Options: ab.options,
		Batches: []*Batch{
			newBatch("pre-analyzer", maxAnalysisIterations, ab.pre),
			newBatch("once-before", 1, OnceBeforeDefault),
			newBatch("default-rules", maxAnalysisIterations, DefaultRules),
			newBatch("once-after", 1, OnceAfterDefault),
			newBatch("post-analyzer", maxAnalysisIterations, ab.post),
			newBatch("validation", 1, DefaultValidationRules),
		},
	}
}

// Analyzer runs batches of rules over an expression until it is resolved
// and its IN predicates are compiled. It is not modified while analyzing,
// so one Analyzer can serve concurrent calls.
type Analyzer struct {
	// Debug logs every rule application.
	Debug bool
	// Options used to compile IN predicates.
	Options incode.Options
	// Batches of Rules to apply.
	Batches []*Batch
}

// NewDefault creates an Analyzer with the default rules and options.
func NewDefault() *Analyzer {
	return NewBuilder().Build()
}

// Log writes an info message to the logger of ctx when the analyzer is in
// debug mode. While batches run, the logger carries the batch and rule being
// applied.
func (a *Analyzer) Log(ctx *sql.Context, msg string, args ...interface{}) {
	if a == nil || !a.Debug {
		return
	}
	ctx.GetLogger().Infof(msg, args...)
}

// Analyze resolves e against schema and runs every batch on it. A batch
// that does not reach a fixed point is logged and analysis goes on with the
// last expression it produced.
func (a *Analyzer) Analyze(ctx *sql.Context, schema sql.Schema, e sql.Expression) (sql.Expression, error) {
	span, ctx := ctx.Span("analyze", opentracing.Tags{"expression": e.String()})
	defer span.Finish()

	a.Log(ctx, "starting analysis of expression of type: %T", e)
	result := e
	for _, batch := range a.Batches {
		bctx := ctx.WithFields(logrus.Fields{"batch": batch.Desc})
		next, err := batch.Eval(bctx, a, schema, result)

		switch {
		case ErrMaxAnalysisIters.Is(err):
			a.Log(bctx, err.Error())
		case err != nil:
			return nil, err
		}
		result = next
	}

	span.SetTag("IsResolved", result.Resolved())
	return result, nil
}

package incode

import (
	"context"
	"fmt"

	"gopkg.in/src-d/go-sqlin.v0/sql"
	"gopkg.in/src-d/go-sqlin.v0/sql/expression"
)

// SwitchIn is an IN predicate whose list has been compiled into a Routine.
type SwitchIn struct {
	expression.BinaryExpression
	routine *Routine
	opts    Options
	// ctx keeps the tracer and logger the list was compiled with, to
	// compile it again when the children change.
	ctx *sql.Context
}

var _ expression.Comparer = (*SwitchIn)(nil)

// NewSwitchIn compiles the list on the right into a routine testing the
// values of the left expression. The right side must be a tuple.
func NewSwitchIn(ctx *sql.Context, opts Options, left, right sql.Expression) (*SwitchIn, error) {
	if ctx == nil {
		ctx = sql.NewEmptyContext()
	}

	tuple, ok := right.(expression.Tuple)
	if !ok {
		return nil, expression.ErrUnsupportedInOperand.New(right)
	}

	leftCols := sql.NumColumns(left.Type())
	for _, el := range tuple {
		if n := sql.NumColumns(el.Type()); n != leftCols && !sql.IsNull(el.Type()) {
			return nil, sql.ErrInvalidOperandColumns.New(leftCols, n)
		}
	}

	routine, err := opts.Compile(ctx, left.Type(), CandidatesOf(tuple...))
	if err != nil {
		return nil, err
	}

	return &SwitchIn{
		BinaryExpression: expression.BinaryExpression{Left: left, Right: right},
		routine:          routine,
		opts:             opts,
		ctx:              ctx.WithContext(context.Background()),
	}, nil
}

// Routine returns the compiled routine.
func (in *SwitchIn) Routine() *Routine { return in.routine }

// Left implements the Comparer interface.
func (in *SwitchIn) Left() sql.Expression { return in.BinaryExpression.Left }

// Right implements the Comparer interface.
func (in *SwitchIn) Right() sql.Expression { return in.BinaryExpression.Right }

// Compare implements the Comparer interface.
func (in *SwitchIn) Compare(ctx *sql.Context, row sql.Row) (int, error) {
	panic("Compare not implemented for SwitchIn")
}

// Type implements the Expression interface.
func (in *SwitchIn) Type() sql.Type {
	return sql.Boolean
}

// Eval implements the Expression interface.
func (in *SwitchIn) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	left, err := in.Left().Eval(ctx, row)
	if err != nil {
		return nil, err
	}

	res, err := in.routine.Probe(ctx, row, left)
	if err != nil {
		return nil, err
	}

	return res.Value(), nil
}

// WithChildren implements the Expression interface. The list is compiled
// again with the same options, tracer and logger.
func (in *SwitchIn) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(in, len(children), 2)
	}
	return NewSwitchIn(in.ctx, in.opts, children[0], children[1])
}

func (in *SwitchIn) String() string {
	return fmt.Sprintf("(%s IN %s)", in.Left(), in.Right())
}

// DebugString implements the sql.DebugStringer interface.
func (in *SwitchIn) DebugString() string {
	return fmt.Sprintf("(%s %s IN %s)", sql.DebugString(in.Left()), in.routine.Strategy(), sql.DebugString(in.Right()))
}

package incode

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"gopkg.in/src-d/go-sqlin.v0/sql"
	"gopkg.in/src-d/go-sqlin.v0/sql/expression"
)

func TestSwitchIn(t *testing.T) {
	field := expression.NewGetField(0, sql.Int64, "foo", true)
	list := expression.NewTuple(
		expression.NewLiteral(int64(1), sql.Int64),
		expression.NewLiteral(int64(2), sql.Int64),
		expression.NewGetField(1, sql.Int64, "bar", true),
	)

	testCases := []struct {
		name     string
		row      sql.Row
		expected interface{}
	}{
		{"left is null", sql.NewRow(nil, int64(1)), nil},
		{"constant", sql.NewRow(int64(2), int64(5)), true},
		{"field", sql.NewRow(int64(5), int64(5)), true},
		{"no match", sql.NewRow(int64(3), int64(5)), false},
		{"field is null", sql.NewRow(int64(3), nil), nil},
	}

	in, err := NewSwitchIn(sql.NewEmptyContext(), DefaultOptions(), field, list)
	require.NoError(t, err)
	require.Equal(t, DirectSwitch, in.Routine().Strategy())

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			result, err := in.Eval(sql.NewEmptyContext(), tt.row)
			require.NoError(err)
			require.Equal(tt.expected, result)
		})
	}
}

func TestSwitchInErrors(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()
	field := expression.NewGetField(0, sql.Int64, "foo", true)

	_, err := NewSwitchIn(ctx, DefaultOptions(), field, expression.NewLiteral(int64(1), sql.Int64))
	require.True(expression.ErrUnsupportedInOperand.Is(err))

	_, err = NewSwitchIn(ctx, DefaultOptions(), field, expression.NewTuple(
		expression.NewTuple(
			expression.NewLiteral(int64(1), sql.Int64),
			expression.NewLiteral(int64(2), sql.Int64),
		),
		expression.NewLiteral(int64(1), sql.Int64),
	))
	require.True(sql.ErrInvalidOperandColumns.Is(err))

	_, err = NewSwitchIn(ctx, DefaultOptions(), field, expression.NewTuple(
		expression.NewLiteral("a", sql.Text),
		expression.NewLiteral(int64(1), sql.Int64),
	))
	require.True(ErrCandidateTypeMismatch.Is(err))
}

func TestSwitchInString(t *testing.T) {
	require := require.New(t)

	in, err := NewSwitchIn(
		sql.NewEmptyContext(),
		DefaultOptions(),
		expression.NewGetField(0, sql.Float64, "foo", false),
		expression.NewTuple(
			expression.NewLiteral(1.5, sql.Float64),
			expression.NewLiteral(nil, sql.Null),
		),
	)
	require.NoError(err)

	require.Equal("(foo IN (1.5, NULL))", in.String())
	require.Equal(
		"([foo, idx=0, type=DOUBLE, nullable=false] HASH_SWITCH IN TUPLE(1.5 (DOUBLE), NULL (NULL)))",
		in.DebugString(),
	)
	require.Equal(sql.Boolean, in.Type())
	require.True(in.Resolved())

	in2, err := in.WithChildren(in.Children()...)
	require.NoError(err)
	require.Equal(in.String(), in2.String())
	require.Equal(HashSwitch, in2.(*SwitchIn).Routine().Strategy())

	_, err = in.WithChildren(in.Left())
	require.True(sql.ErrInvalidChildrenNumber.Is(err))
}

func TestSwitchInWithChildrenKeepsLogger(t *testing.T) {
	require := require.New(t)

	logger, hook := test.NewNullLogger()
	logger.Level = logrus.DebugLevel
	ctx := sql.NewContext(context.TODO(), sql.WithLogger(logrus.NewEntry(logger)))

	in, err := NewSwitchIn(
		ctx,
		DefaultOptions(),
		expression.NewGetField(0, sql.Int64, "foo", false),
		expression.NewTuple(expression.NewLiteral(int64(1), sql.Int64)),
	)
	require.NoError(err)
	require.Len(hook.Entries, 1)

	_, err = in.WithChildren(expression.NewGetField(1, sql.Int64, "bar", false), in.Right())
	require.NoError(err)
	require.Len(hook.Entries, 2)

	e := hook.LastEntry()
	require.Equal("compiled IN predicate", e.Message)
	require.Equal(ctx.ID().String(), e.Data[sql.QueryIDLogField])
}

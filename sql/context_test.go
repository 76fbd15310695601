package sql

import (
	"context"
	"testing"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestContext(t *testing.T) {
	require := require.New(t)

	logger, hook := test.NewNullLogger()
	ctx := NewContext(
		context.TODO(),
		WithQuery("a IN (1, 2)"),
		WithLogger(logrus.NewEntry(logger)),
	)

	require.Equal("a IN (1, 2)", ctx.Query())
	require.NotEqual(NewEmptyContext().ID(), ctx.ID())

	ctx.GetLogger().Info("hello")
	require.Len(hook.Entries, 1)
	require.Equal(ctx.ID().String(), hook.LastEntry().Data[QueryIDLogField])

	span, child := ctx.Span("test", opentracing.Tag{Key: "k", Value: "v"})
	defer span.Finish()

	require.Equal(ctx.ID(), child.ID())
	require.Equal(span, opentracing.SpanFromContext(child))
	require.Nil(opentracing.SpanFromContext(ctx))
}

func TestSchemaIndexOf(t *testing.T) {
	require := require.New(t)

	s := Schema{
		{Name: "a", Type: Int64, Source: "t1"},
		{Name: "B", Type: Text, Source: "T2"},
	}

	require.Equal(0, s.IndexOf("a", ""))
	require.Equal(0, s.IndexOf("A", "t1"))
	require.Equal(1, s.IndexOf("b", "t2"))
	require.Equal(-1, s.IndexOf("a", "t2"))
	require.Equal(-1, s.IndexOf("c", ""))
}

func TestSchemaCheckRow(t *testing.T) {
	require := require.New(t)

	s := Schema{
		{Name: "a", Type: Int64, Nullable: false},
		{Name: "b", Type: Date, Nullable: true},
	}

	require.NoError(s.CheckRow(NewRow(int64(1), nil)))
	require.NoError(s.CheckRow(NewRow("2", "2018-01-01")))

	err := s.CheckRow(NewRow(int64(1)))
	require.Error(err)
	require.True(ErrUnexpectedRowLength.Is(err))

	err = s.CheckRow(NewRow(nil, nil))
	require.Error(err)
	require.True(ErrUnexpectedNullValue.Is(err))

	err = s.CheckRow(NewRow(int64(1), "yesterday"))
	require.Error(err)
	require.True(ErrUnexpectedType.Is(err))
}

func TestRowCopy(t *testing.T) {
	require := require.New(t)

	r := NewRow(int64(1), "a")
	c := r.Copy()
	require.Equal(r, c)

	c[0] = int64(2)
	require.Equal(int64(1), r[0])
}

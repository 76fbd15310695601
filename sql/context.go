package sql

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	uuid "github.com/satori/go.uuid"
)

// QueryIDLogField is the log field holding the id of the query a context
// belongs to.
const QueryIDLogField = "queryID"

// Context carries what a single compilation or evaluation of a predicate
// needs besides its input: an id to correlate log lines, the predicate text,
// a tracer and a logger.
type Context struct {
	context.Context
	id     uuid.UUID
	query  string
	tracer opentracing.Tracer
	logger *logrus.Entry
}

// ContextOption is a function to configure the context.
type ContextOption func(*Context)

// WithTracer adds the given tracer to the context.
func WithTracer(t opentracing.Tracer) ContextOption {
	return func(ctx *Context) {
		ctx.tracer = t
	}
}

// WithQuery adds the given query to the context.
func WithQuery(q string) ContextOption {
	return func(ctx *Context) {
		ctx.query = q
	}
}

// WithLogger sets the logger the context hands out through GetLogger. The
// query id field is added on top of it.
func WithLogger(l *logrus.Entry) ContextOption {
	return func(ctx *Context) {
		ctx.logger = l
	}
}

// NewContext wraps ctx. Unless given through opts, the tracer is a noop one
// and the logger is the logrus standard logger.
func NewContext(ctx context.Context, opts ...ContextOption) *Context {
	c := &Context{
		Context: ctx,
		id:      uuid.NewV4(),
		tracer:  opentracing.NoopTracer{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logrus.NewEntry(logrus.StandardLogger())
	}
	c.logger = c.logger.WithField(QueryIDLogField, c.id.String())

	return c
}

// NewEmptyContext returns a default context with default values.
func NewEmptyContext() *Context { return NewContext(context.TODO()) }

// ID returns the unique id of this context.
func (c *Context) ID() uuid.UUID { return c.id }

// Query returns the query string associated with this context.
func (c *Context) Query() string { return c.query }

// GetLogger returns the logger of this context, already annotated with the
// query id.
func (c *Context) GetLogger() *logrus.Entry { return c.logger }

// Span starts a span as a child of the one in c, if any, and returns it
// with a context holding it.
func (c *Context) Span(opName string, opts ...opentracing.StartSpanOption) (opentracing.Span, *Context) {
	if parent := opentracing.SpanFromContext(c.Context); parent != nil {
		opts = append(opts, opentracing.ChildOf(parent.Context()))
	}

	span := c.tracer.StartSpan(opName, opts...)
	return span, c.WithContext(opentracing.ContextWithSpan(c.Context, span))
}

// WithContext returns a new context with the given underlying context.
func (c *Context) WithContext(ctx context.Context) *Context {
	nc := *c
	nc.Context = ctx
	return &nc
}

// WithFields returns a copy of the context whose logger carries the given
// fields.
func (c *Context) WithFields(fields logrus.Fields) *Context {
	nc := *c
	nc.logger = c.logger.WithFields(fields)
	return &nc
}

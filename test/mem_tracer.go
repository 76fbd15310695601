package test

import (
	"sync"

	opentracing "github.com/opentracing/opentracing-go"
)

// MemTracer implements a simple tracer in memory for testing. It records the
// name of every started span and the tags set on them.
type MemTracer struct {
	Spans []string
	tags  map[string]map[string]interface{}
	sync.Mutex
}

var _ opentracing.Tracer = (*MemTracer)(nil)

type memSpan struct {
	opentracing.Span
	tracer *MemTracer
	opName string
}

// StartSpan implements opentracing.Tracer interface.
func (t *MemTracer) StartSpan(operationName string, opts ...opentracing.StartSpanOption) opentracing.Span {
	var so opentracing.StartSpanOptions
	for _, o := range opts {
		o.Apply(&so)
	}

	t.Lock()
	t.Spans = append(t.Spans, operationName)
	t.Unlock()

	s := &memSpan{
		Span:   opentracing.NoopTracer{}.StartSpan(operationName),
		tracer: t,
		opName: operationName,
	}
	for k, v := range so.Tags {
		s.SetTag(k, v)
	}
	return s
}

// Inject implements opentracing.Tracer interface.
func (t *MemTracer) Inject(sm opentracing.SpanContext, format interface{}, carrier interface{}) error {
	return opentracing.NoopTracer{}.Inject(sm, format, carrier)
}

// Extract implements opentracing.Tracer interface.
func (t *MemTracer) Extract(format interface{}, carrier interface{}) (opentracing.SpanContext, error) {
	return opentracing.NoopTracer{}.Extract(format, carrier)
}

// Tags returns the last value of every tag set on spans with the given name.
func (t *MemTracer) Tags(opName string) map[string]interface{} {
	t.Lock()
	defer t.Unlock()

	result := make(map[string]interface{}, len(t.tags[opName]))
	for k, v := range t.tags[opName] {
		result[k] = v
	}
	return result
}

// SetTag implements opentracing.Span interface.
func (s *memSpan) SetTag(key string, value interface{}) opentracing.Span {
	t := s.tracer
	t.Lock()
	if t.tags == nil {
		t.tags = make(map[string]map[string]interface{})
	}
	if t.tags[s.opName] == nil {
		t.tags[s.opName] = make(map[string]interface{})
	}
	t.tags[s.opName][key] = value
	t.Unlock()
	return s
}

// Tracer implements opentracing.Span interface.
func (s *memSpan) Tracer() opentracing.Tracer {
	return s.tracer
}

package instrument

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Context keys
type ctxKey int

const (
	traceIDKey ctxKey = iota
	parentSpanIDKey
	instrumenterKey
)

// Instrumenter is the tracing API. The engine opens one span per field
// validation; the default is a noop so the engine stays dependency-free
// for callers that don't care.
type Instrumenter interface {
	StartSpan(ctx context.Context, source, component, action string) (context.Context, Span)
}

// Span represents a timed operation span.
type Span interface {
	End()
	SetStatus(status string)
	SetMetadata(key string, value any)
	SetField(fieldID, fieldType string)
	TraceID() string
	SpanID() string
}

// Event is one recorded span.
type Event struct {
	TraceID      string         `json:"trace_id"`
	SpanID       string         `json:"span_id"`
	ParentSpanID string         `json:"parent_span_id,omitempty"`
	Source       string         `json:"source"`
	Component    string         `json:"component"`
	Action       string         `json:"action"`
	FieldID      string         `json:"field_id,omitempty"`
	FieldType    string         `json:"field_type,omitempty"`
	Status       string         `json:"status,omitempty"`
	DurationMs   float64        `json:"duration_ms"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// WithTraceID sets the trace ID in the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// GetTraceID returns the trace ID from the context.
func GetTraceID(ctx context.Context) string {
	if v, ok := ctx.Value(traceIDKey).(string); ok {
		return v
	}
	return ""
}

func withParentSpanID(ctx context.Context, spanID string) context.Context {
	return context.WithValue(ctx, parentSpanIDKey, spanID)
}

func getParentSpanID(ctx context.Context) string {
	if v, ok := ctx.Value(parentSpanIDKey).(string); ok {
		return v
	}
	return ""
}

// WithInstrumenter sets the instrumenter in the context.
func WithInstrumenter(ctx context.Context, inst Instrumenter) context.Context {
	return context.WithValue(ctx, instrumenterKey, inst)
}

// GetInstrumenter returns the instrumenter from the context, or a
// NoopInstrumenter if none is set.
func GetInstrumenter(ctx context.Context) Instrumenter {
	if v, ok := ctx.Value(instrumenterKey).(Instrumenter); ok {
		return v
	}
	return &NoopInstrumenter{}
}

// RecordingInstrumenter emits spans to a Recorder.
type RecordingInstrumenter struct {
	recorder *Recorder
}

// NewInstrumenter creates a RecordingInstrumenter backed by the given
// recorder.
func NewInstrumenter(recorder *Recorder) *RecordingInstrumenter {
	return &RecordingInstrumenter{recorder: recorder}
}

// StartSpan creates a new span and returns the updated context so child
// spans reference this span as parent.
func (i *RecordingInstrumenter) StartSpan(ctx context.Context, source, component, action string) (context.Context, Span) {
	span := &recordedSpan{
		traceID:      GetTraceID(ctx),
		spanID:       uuid.New().String(),
		parentSpanID: getParentSpanID(ctx),
		source:       source,
		component:    component,
		action:       action,
		startTime:    time.Now(),
		recorder:     i.recorder,
	}
	return withParentSpanID(ctx, span.spanID), span
}

type recordedSpan struct {
	traceID      string
	spanID       string
	parentSpanID string
	source       string
	component    string
	action       string
	fieldID      string
	fieldType    string
	status       string
	startTime    time.Time
	metadata     map[string]any
	recorder     *Recorder
	mu           sync.Mutex
	ended        bool
}

func (s *recordedSpan) TraceID() string { return s.traceID }
func (s *recordedSpan) SpanID() string  { return s.spanID }

func (s *recordedSpan) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

func (s *recordedSpan) SetMetadata(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.metadata == nil {
		s.metadata = make(map[string]any)
	}
	s.metadata[key] = value
}

func (s *recordedSpan) SetField(fieldID, fieldType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fieldID = fieldID
	s.fieldType = fieldType
}

func (s *recordedSpan) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}
	s.ended = true

	s.recorder.Record(Event{
		TraceID:      s.traceID,
		SpanID:       s.spanID,
		ParentSpanID: s.parentSpanID,
		Source:       s.source,
		Component:    s.component,
		Action:       s.action,
		FieldID:      s.fieldID,
		FieldType:    s.fieldType,
		Status:       s.status,
		DurationMs:   float64(time.Since(s.startTime).Microseconds()) / 1000.0,
		Metadata:     s.metadata,
		CreatedAt:    time.Now(),
	})
}

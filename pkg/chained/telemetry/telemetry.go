// Package telemetry exports chain lifecycle metrics, evaluation spans and
// events through a chained.Observer.
package telemetry

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"

	"github.com/ib-77/chained/pkg/chained"
)

// Metric keys.
const (
	ComposedTotal  = metricz.Key("chain.composed.total")
	EvaluatedTotal = metricz.Key("chain.evaluated.total")
	RejectedTotal  = metricz.Key("chain.rejected.total")
	EvalDepth      = metricz.Key("chain.eval.depth")
	EvalDurationMs = metricz.Key("chain.eval.duration.ms")
)

// Span names and tags.
const (
	EvalSpan = tracez.Key("chain.eval")

	TagID    = tracez.Tag("chain.id")
	TagDepth = tracez.Tag("chain.depth")
)

// Hook event keys.
const (
	EventEvaluated = hookz.Key("chain.evaluated")
	EventRejected  = hookz.Key("chain.rejected")
)

// Event is emitted after an evaluation and on every rejected reuse.
type Event struct {
	ID        uuid.UUID
	Depth     int
	Op        chained.Op
	Duration  time.Duration // evaluation only
	Err       error         // rejection only
	Timestamp time.Time
}

// Meter implements chained.Observer.
type Meter struct {
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[Event]
	clock   clockz.Clock
}

type Option func(*Meter)

// WithClock sets the clock used for durations and timestamps.
func WithClock(clock clockz.Clock) Option {
	return func(m *Meter) {
		m.clock = clock
	}
}

// WithRegistry shares an existing metrics registry.
func WithRegistry(registry *metricz.Registry) Option {
	return func(m *Meter) {
		m.metrics = registry
	}
}

// WithTracer shares an existing tracer.
func WithTracer(tracer *tracez.Tracer) Option {
	return func(m *Meter) {
		m.tracer = tracer
	}
}

// New creates a Meter. Pass it to chained.WithObserver.
func New(opts ...Option) *Meter {
	m := &Meter{}
	for _, opt := range opts {
		opt(m)
	}
	if m.metrics == nil {
		m.metrics = metricz.New()
	}
	if m.tracer == nil {
		m.tracer = tracez.New()
	}
	if m.clock == nil {
		m.clock = clockz.RealClock
	}
	m.hooks = hookz.New[Event]()

	m.metrics.Counter(ComposedTotal)
	m.metrics.Counter(EvaluatedTotal)
	m.metrics.Counter(RejectedTotal)
	m.metrics.Gauge(EvalDepth)
	m.metrics.Gauge(EvalDurationMs)
	return m
}

// Composed implements chained.Observer.
func (m *Meter) Composed(chained.Info) {
	m.metrics.Counter(ComposedTotal).Inc()
}

// Evaluating implements chained.Observer.
func (m *Meter) Evaluating(info chained.Info) func() {
	start := m.clock.Now()
	ctx, span := m.tracer.StartSpan(context.Background(), EvalSpan)
	span.SetTag(TagID, info.ID.String())
	span.SetTag(TagDepth, strconv.Itoa(info.Depth))
	m.metrics.Gauge(EvalDepth).Set(float64(info.Depth))

	return func() {
		elapsed := m.clock.Since(start)
		span.Finish()

		m.metrics.Counter(EvaluatedTotal).Inc()
		m.metrics.Gauge(EvalDurationMs).Set(float64(elapsed.Milliseconds()))

		_ = m.hooks.Emit(ctx, EventEvaluated, Event{ //nolint:errcheck
			ID:        info.ID,
			Depth:     info.Depth,
			Op:        info.Op,
			Duration:  elapsed,
			Timestamp: m.clock.Now(),
		})
	}
}

// Rejected implements chained.Observer.
func (m *Meter) Rejected(info chained.Info, err error) {
	m.metrics.Counter(RejectedTotal).Inc()

	_ = m.hooks.Emit(context.Background(), EventRejected, Event{ //nolint:errcheck
		ID:        info.ID,
		Depth:     info.Depth,
		Op:        info.Op,
		Err:       err,
		Timestamp: m.clock.Now(),
	})
}

// OnEvaluated registers a handler for completed evaluations.
// Handlers run asynchronously.
func (m *Meter) OnEvaluated(handler func(context.Context, Event) error) error {
	_, err := m.hooks.Hook(EventEvaluated, handler)
	return err
}

// OnRejected registers a handler for reuse of consumed chains.
// Handlers run asynchronously.
func (m *Meter) OnRejected(handler func(context.Context, Event) error) error {
	_, err := m.hooks.Hook(EventRejected, handler)
	return err
}

// Metrics returns the metrics registry.
func (m *Meter) Metrics() *metricz.Registry {
	return m.metrics
}

// Tracer returns the tracer.
func (m *Meter) Tracer() *tracez.Tracer {
	return m.tracer
}

// Close shuts down the tracer and hooks.
func (m *Meter) Close() error {
	if m.tracer != nil {
		m.tracer.Close()
	}
	m.hooks.Close()
	return nil
}

package telemetry

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/metric"
)

type (
	Counter   = metric.Int64Counter
	Histogram = metric.Int64Histogram
)

// Measurer is a helper struct to measure the duration of an operation and count the number of operations.
// It is not thread-safe.
type Measurer struct {
	clock     clockwork.Clock
	counter   Counter
	histogram Histogram
	startTime time.Time
}

func NewMeasurer(meter Meter, name string, clock clockwork.Clock) (*Measurer, error) {
	counter, err := meter.Int64Counter(name)
	if err != nil {
		return nil, err
	}
	histogram, err := meter.Int64Histogram(name+".duration", metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}
	return &Measurer{
		clock:     clock,
		counter:   counter,
		histogram: histogram,
		startTime: clock.Now(),
	}, nil
}

func (m *Measurer) Restart() {
	m.startTime = m.clock.Now()
}

func (m *Measurer) Measure(ctx context.Context, opts ...metric.AddOption) {
	m.counter.Add(ctx, 1, opts...)
	m.histogram.Record(ctx, m.clock.Since(m.startTime).Milliseconds())
}

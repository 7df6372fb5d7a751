package metrics

import (
	"context"
	"fmt"

	"github.com/NilFoundation/blobprobe/nil/internal/telemetry"
	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type ProbeMetrics struct {
	basicMetricsHandler
	meter telemetry.Meter

	stateTransitions telemetry.Counter
	submissions      telemetry.Counter
	blobsSubmitted   telemetry.Counter
	outcomes         telemetry.Counter
	payloadBytes     telemetry.Histogram
	polls            telemetry.Histogram
}

func NewProbeMetrics() (*ProbeMetrics, error) {
	handler := &ProbeMetrics{}
	if err := initHandler("blobprobe", handler); err != nil {
		return nil, fmt.Errorf("failed to init probe metrics: %w", err)
	}
	return handler, nil
}

func (m *ProbeMetrics) init(attributes metric.MeasurementOption, meter telemetry.Meter) error {
	if err := m.basicMetricsHandler.init(attributes, meter); err != nil {
		return err
	}
	m.meter = meter

	var err error
	if m.stateTransitions, err = meter.Int64Counter(namespace + "monitor_state_transitions"); err != nil {
		return err
	}
	if m.submissions, err = meter.Int64Counter(namespace + "tx_submitted"); err != nil {
		return err
	}
	if m.blobsSubmitted, err = meter.Int64Counter(namespace + "blobs_submitted"); err != nil {
		return err
	}
	if m.outcomes, err = meter.Int64Counter(namespace + "inclusion_outcomes"); err != nil {
		return err
	}
	if m.payloadBytes, err = meter.Int64Histogram(namespace+"payload_bytes", metric.WithUnit("By")); err != nil {
		return err
	}
	if m.polls, err = meter.Int64Histogram(namespace + "polls_per_wait"); err != nil {
		return err
	}
	return nil
}

func (m *ProbeMetrics) RecordStateTransition(ctx context.Context, state string) {
	m.stateTransitions.Add(ctx, 1, m.attributes, metric.WithAttributes(attribute.String("state", state)))
}

func (m *ProbeMetrics) RecordSubmission(ctx context.Context, payloadSize int, blobCount int) {
	m.submissions.Add(ctx, 1, m.attributes)
	m.blobsSubmitted.Add(ctx, int64(blobCount), m.attributes)
	m.payloadBytes.Record(ctx, int64(payloadSize), m.attributes)
}

func (m *ProbeMetrics) RecordOutcome(ctx context.Context, status string) {
	m.outcomes.Add(ctx, 1, m.attributes, metric.WithAttributes(attribute.String("status", status)))
}

func (m *ProbeMetrics) RecordPolls(ctx context.Context, phase string, polls uint32) {
	m.polls.Record(ctx, int64(polls), m.attributes, metric.WithAttributes(attribute.String("phase", phase)))
}

// NewRunMeasurer counts probe runs and records their duration.
func (m *ProbeMetrics) NewRunMeasurer(clock clockwork.Clock) (*telemetry.Measurer, error) {
	return telemetry.NewMeasurer(m.meter, namespace+"runs", clock)
}

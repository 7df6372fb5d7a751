package core

import (
	"context"
	"fmt"
	"time"

	"github.com/NilFoundation/blobprobe/nil/common/logging"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/blob"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/chain"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/monitor"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/submit"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/internal/metrics"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/journal"
	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type options struct {
	clock   clockwork.Clock
	journal *journal.Journal
	logger  logging.Logger
}

type Option func(*options)

func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithJournal makes every run end with an entry appended to j.
func WithJournal(j *journal.Journal) Option {
	return func(o *options) {
		o.journal = j
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Report summarises a single run.
type Report struct {
	State       monitor.State    `yaml:"state"`
	Profile     string           `yaml:"profile"`
	PayloadSize int              `yaml:"payloadSize"`
	BlobCount   int              `yaml:"blobCount"`
	TxHash      string           `yaml:"txHash,omitempty"`
	Tx          *submit.TxResult `yaml:"-"`
	Outcome     *monitor.Outcome `yaml:"outcome,omitempty"`
}

// Succeeded reports whether the transaction was sent and the expected commitment, if any, was found.
func (r *Report) Succeeded() bool {
	return r.State == monitor.Submitted || r.State == monitor.Confirmed
}

// Err returns the inclusion mismatch of the run, if any.
func (r *Report) Err() error {
	if r.Outcome == nil {
		return nil
	}
	return r.Outcome.Err()
}

type Service struct {
	config  *Config
	codec   blob.Codec
	monitor *monitor.Monitor
	clock   clockwork.Clock
	journal *journal.Journal
	metrics *metrics.ProbeMetrics
	logger  logging.Logger
}

func New(config *Config, reader chain.Reader, submitter submit.Submitter, opts ...Option) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	o := options{
		clock:  clockwork.NewRealClock(),
		logger: logging.NewLogger("blobprobe"),
	}
	for _, opt := range opts {
		opt(&o)
	}

	probeMetrics, err := metrics.NewProbeMetrics()
	if err != nil {
		return nil, err
	}

	return &Service{
		config:  config,
		codec:   blob.NewCodec(config.Profile),
		monitor: monitor.New(config.Monitor, reader, submitter, o.clock, probeMetrics, o.logger),
		clock:   o.clock,
		journal: o.journal,
		metrics: probeMetrics,
		logger:  o.logger,
	}, nil
}

func (s *Service) State() monitor.State {
	return s.monitor.State()
}

// Run encodes payload, waits for the activation height, submits the blobs and, when expected is not empty,
// scans the following slots for the commitment. A commitment mismatch is reported through the returned
// Report, not as an error. The report is nil only when the run could not start.
func (s *Service) Run(ctx context.Context, payload []byte, expected string) (*Report, error) {
	measurer, err := s.metrics.NewRunMeasurer(s.clock)
	if err != nil {
		return nil, err
	}

	startedAt := s.clock.Now()
	report := &Report{
		Profile:     s.config.Profile.Name,
		PayloadSize: len(payload),
	}

	err = s.run(ctx, payload, expected, report)
	report.State = s.monitor.State()
	if err != nil {
		report.State = monitor.Failed
	}
	measurer.Measure(ctx, metric.WithAttributes(attribute.String("state", report.State.String())))
	s.record(ctx, startedAt, expected, report, err)
	return report, err
}

func (s *Service) run(ctx context.Context, payload []byte, expected string, report *Report) error {
	blobs, err := s.codec.Encode(payload)
	if err != nil {
		s.metrics.RecordError(ctx, "encode")
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	report.BlobCount = len(blobs)
	s.logger.Info().
		Int(logging.FieldPayloadSize, len(payload)).
		Int(logging.FieldBlobCount, len(blobs)).
		Stringer(logging.FieldProfile, s.config.Profile).
		Msg("payload encoded")

	if err := s.monitor.WaitForActivation(ctx, s.config.ActivationHeight); err != nil {
		return err
	}

	tx, err := s.monitor.Submit(ctx, blobs)
	if err != nil {
		return err
	}
	report.Tx = tx
	report.TxHash = tx.Hash.Hex()
	s.metrics.RecordSubmission(ctx, len(payload), len(blobs))

	if expected == "" {
		return nil
	}

	outcome, err := s.monitor.AwaitInclusion(ctx, expected, s.config.LookaheadSlots)
	if err != nil {
		return err
	}
	report.Outcome = outcome
	return nil
}

func (s *Service) record(ctx context.Context, startedAt time.Time, expected string, report *Report, runErr error) {
	if s.journal == nil {
		return
	}

	entry := &journal.Entry{
		StartedAt:   startedAt,
		FinishedAt:  s.clock.Now(),
		Profile:     report.Profile,
		PayloadSize: report.PayloadSize,
		BlobCount:   report.BlobCount,
		State:       report.State.String(),
		Expected:    expected,
	}
	if report.Tx != nil {
		entry.TxHash = report.Tx.Hash.Hex()
	}
	if report.Outcome != nil && report.Outcome.Record != nil {
		entry.Found = report.Outcome.Record.Commitment
		entry.Slot = report.Outcome.Record.Slot
	}
	if runErr != nil {
		entry.Error = runErr.Error()
	}

	// journal failures are only logged
	if err := s.journal.Append(context.WithoutCancel(ctx), entry); err != nil {
		s.metrics.RecordError(ctx, "journal")
		s.logger.Error().Err(err).Msg("failed to record run")
	}
}

package monitor

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/NilFoundation/blobprobe/nil/common"
	"github.com/NilFoundation/blobprobe/nil/common/logging"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/blob"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/chain"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/submit"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/internal/metrics"
	"github.com/jonboulle/clockwork"
)

const (
	phaseActivation = "activation"
	phaseSubmission = "submission"
	phaseInclusion  = "inclusion"
)

type Config struct {
	// Delay between two consecutive reads of the chain head
	PollInterval time.Duration `yaml:"pollInterval"`

	// Max time to wait for the activation height, zero means wait until the context is done
	ActivationTimeout time.Duration `yaml:"activationTimeout"`

	// Max time to wait for a single slot to be produced, zero means wait until the context is done
	SlotTimeout time.Duration `yaml:"slotTimeout"`
}

func DefaultConfig() Config {
	return Config{
		PollInterval: time.Second,
	}
}

// Monitor drives a single probe: activation wait, submission and inclusion scan.
// Steps are expected to be called sequentially, State may be read concurrently.
type Monitor struct {
	config    Config
	reader    chain.Reader
	submitter submit.Submitter
	clock     clockwork.Clock
	metrics   *metrics.ProbeMetrics
	logger    logging.Logger

	state atomic.Uint32
}

func New(
	config Config,
	reader chain.Reader,
	submitter submit.Submitter,
	clock clockwork.Clock,
	metrics *metrics.ProbeMetrics,
	logger logging.Logger,
) *Monitor {
	return &Monitor{
		config:    config,
		reader:    reader,
		submitter: submitter,
		clock:     clock,
		metrics:   metrics,
		logger:    logger,
	}
}

func (m *Monitor) State() State {
	return State(m.state.Load())
}

func (m *Monitor) setState(ctx context.Context, state State) {
	prev := State(m.state.Swap(uint32(state)))
	if prev == state {
		return
	}
	m.logger.Debug().
		Stringer("from", prev).
		Stringer(logging.FieldMonitorState, state).
		Msg("monitor state changed")
	m.metrics.RecordStateTransition(ctx, state.String())
}

func (m *Monitor) fail(ctx context.Context, phase string, err error) error {
	m.setState(ctx, Failed)
	m.metrics.RecordError(ctx, phase)
	m.logger.Error().Err(err).Str("phase", phase).Msg("probe failed")
	return err
}

func (m *Monitor) newPoller(timeout time.Duration) common.Poller {
	return common.NewPoller(common.NewPollConfig(m.config.PollInterval, timeout), m.clock, m.logger)
}

// WaitForActivation blocks until the execution layer reaches minHeight.
func (m *Monitor) WaitForActivation(ctx context.Context, minHeight uint64) error {
	m.setState(ctx, WaitingForActivation)
	m.logger.Info().Uint64(logging.FieldBlockNumber, minHeight).Msg("waiting for activation height")

	var height uint64
	poller := m.newPoller(m.config.ActivationTimeout)
	polls, err := poller.Poll(ctx, func(ctx context.Context, _ uint32) (bool, error) {
		var err error
		height, err = m.reader.CurrentHeight(ctx)
		if err != nil {
			return false, err
		}
		return height >= minHeight, nil
	})
	m.metrics.RecordPolls(ctx, phaseActivation, polls)
	if err != nil {
		return m.fail(ctx, phaseActivation, fmt.Errorf("failed to wait for activation height %d: %w", minHeight, err))
	}

	m.logger.Info().Uint64(logging.FieldBlockNumber, height).Uint32("polls", polls).Msg("activation height reached")
	return nil
}

func (m *Monitor) Submit(ctx context.Context, blobs []blob.Blob) (*submit.TxResult, error) {
	tx, err := m.submitter.Submit(ctx, blobs)
	if err != nil {
		return nil, m.fail(ctx, phaseSubmission, err)
	}

	m.setState(ctx, Submitted)
	m.logger.Info().
		Stringer(logging.FieldTxHash, tx.Hash).
		Int(logging.FieldBlobCount, len(blobs)).
		Uint64("gas", tx.Gas).
		Msg("blob transaction submitted")
	return tx, nil
}

// AwaitInclusion scans lookaheadSlots slots starting right below the current head, in order.
// Every slot is inspected only after the head has moved past it. The first commitment seen in the whole
// window is compared to expected; the scan is never cut short by a match.
func (m *Monitor) AwaitInclusion(ctx context.Context, expected string, lookaheadSlots uint64) (*Outcome, error) {
	m.setState(ctx, PollingForInclusion)

	head, err := m.reader.HeadSlot(ctx)
	if err != nil {
		return nil, m.fail(ctx, phaseInclusion, err)
	}
	start := head
	if start > 0 {
		start--
	}
	m.logger.Info().
		Uint64(logging.FieldHeadSlot, head).
		Uint64("lookahead", lookaheadSlots).
		Str(logging.FieldExpectedCommitment, expected).
		Msg("scanning slots for blob commitment")

	var first *InclusionRecord
	for offset := range lookaheadSlots {
		slot := start + offset
		if err := m.waitForSlot(ctx, slot); err != nil {
			return nil, m.fail(ctx, phaseInclusion, err)
		}

		commitments, err := m.reader.BlockCommitments(ctx, slot)
		if err != nil {
			return nil, m.fail(ctx, phaseInclusion, err)
		}
		if len(commitments) == 0 {
			m.logger.Debug().Uint64(logging.FieldSlot, slot).Msg("no blob commitments in slot")
			continue
		}

		m.logger.Debug().
			Uint64(logging.FieldSlot, slot).
			Strs("commitments", commitments).
			Msg("blob commitments found")
		if first == nil {
			first = &InclusionRecord{Slot: slot, Commitment: commitments[0]}
		}
	}

	var outcome *Outcome
	if first != nil && SameCommitment(first.Commitment, expected) {
		outcome = NewConfirmed(*first, expected)
		m.setState(ctx, Confirmed)
		m.logger.Info().
			Uint64(logging.FieldSlot, first.Slot).
			Str(logging.FieldCommitment, first.Commitment).
			Msg("blob inclusion confirmed")
	} else {
		outcome = NewMismatch(first, expected)
		m.setState(ctx, Mismatch)
		m.logger.Warn().Err(outcome.Err()).Msg("blob inclusion not confirmed")
	}
	m.metrics.RecordOutcome(ctx, string(outcome.Status))
	return outcome, nil
}

func (m *Monitor) waitForSlot(ctx context.Context, slot uint64) error {
	poller := m.newPoller(m.config.SlotTimeout)
	polls, err := poller.Poll(ctx, func(ctx context.Context, _ uint32) (bool, error) {
		head, err := m.reader.HeadSlot(ctx)
		if err != nil {
			return false, err
		}
		return head > slot, nil
	})
	m.metrics.RecordPolls(ctx, phaseInclusion, polls)
	if err != nil {
		return fmt.Errorf("failed to wait for slot %d: %w", slot, err)
	}
	return nil
}

package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NilFoundation/blobprobe/nil/common/logging"
	"github.com/jonboulle/clockwork"
)

var ErrPollTimeout = errors.New("polling timed out")

type PollConfig struct {
	// Delay between two consecutive checks
	Interval time.Duration

	// Max time spent polling, zero means no limit (the context still applies)
	Timeout time.Duration
}

func NewPollConfig(interval, timeout time.Duration) PollConfig {
	return PollConfig{
		Interval: interval,
		Timeout:  timeout,
	}
}

// PollCheck reports whether the awaited condition holds.
// A non-nil error aborts polling immediately, "not ready yet" must be reported as (false, nil).
type PollCheck func(ctx context.Context, attempt uint32) (done bool, err error)

// Poller repeatedly runs a check on a fixed interval of the injected clock.
type Poller struct {
	config PollConfig
	clock  clockwork.Clock
	logger logging.Logger
}

func NewPoller(config PollConfig, clock clockwork.Clock, logger logging.Logger) Poller {
	return Poller{
		config: config,
		clock:  clock,
		logger: logger,
	}
}

// Poll runs check until it is done, fails, the configured timeout elapses or ctx is done.
// Returns the number of attempts made.
func (p *Poller) Poll(ctx context.Context, check PollCheck) (uint32, error) {
	var deadline time.Time
	if p.config.Timeout > 0 {
		deadline = p.clock.Now().Add(p.config.Timeout)
	}

	attempt := uint32(0)
	for {
		if err := ctx.Err(); err != nil {
			return attempt, err
		}

		attempt++
		done, err := check(ctx, attempt)
		if err != nil || done {
			return attempt, err
		}

		if !deadline.IsZero() && !p.clock.Now().Before(deadline) {
			return attempt, fmt.Errorf("%w: %d attempts in %s", ErrPollTimeout, attempt, p.config.Timeout)
		}

		p.logger.Trace().Uint32("attempt", attempt).Dur("delay", p.config.Interval).Msg("condition not met, waiting")

		select {
		case <-ctx.Done():
			return attempt, ctx.Err()
		case <-p.clock.After(p.config.Interval):
		}
	}
}

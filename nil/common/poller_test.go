package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NilFoundation/blobprobe/nil/common/logging"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

type pollResult struct {
	attempts uint32
	err      error
}

func runPoll(ctx context.Context, poller *Poller, check PollCheck) <-chan pollResult {
	resCh := make(chan pollResult, 1)
	go func() {
		attempts, err := poller.Poll(ctx, check)
		resCh <- pollResult{attempts, err}
	}()
	return resCh
}

func TestPoller_DoneOnFirstAttempt(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	poller := NewPoller(NewPollConfig(time.Second, 0), clock, logging.NewLogger("poller_test"))

	attempts, err := poller.Poll(t.Context(), func(context.Context, uint32) (bool, error) {
		return true, nil
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, attempts)
}

func TestPoller_WaitsForInterval(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	clock := clockwork.NewFakeClock()
	poller := NewPoller(NewPollConfig(time.Second, 0), clock, logging.NewLogger("poller_test"))

	resCh := runPoll(ctx, &poller, func(_ context.Context, attempt uint32) (bool, error) {
		return attempt == 3, nil
	})

	for range 2 {
		require.NoError(t, clock.BlockUntilContext(ctx, 1))
		select {
		case <-resCh:
			require.Fail(t, "poller returned before the condition was met")
		default:
		}
		clock.Advance(time.Second)
	}

	res := <-resCh
	require.NoError(t, res.err)
	require.EqualValues(t, 3, res.attempts)
}

func TestPoller_CheckErrorAborts(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	clock := clockwork.NewFakeClock()
	poller := NewPoller(NewPollConfig(time.Second, 0), clock, logging.NewLogger("poller_test"))

	attempts, err := poller.Poll(t.Context(), func(context.Context, uint32) (bool, error) {
		return false, errBoom
	})
	require.ErrorIs(t, err, errBoom)
	require.EqualValues(t, 1, attempts)
}

func TestPoller_Timeout(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	clock := clockwork.NewFakeClock()
	poller := NewPoller(NewPollConfig(time.Second, 3*time.Second), clock, logging.NewLogger("poller_test"))

	resCh := runPoll(ctx, &poller, func(context.Context, uint32) (bool, error) {
		return false, nil
	})

	for range 3 {
		require.NoError(t, clock.BlockUntilContext(ctx, 1))
		clock.Advance(time.Second)
	}

	res := <-resCh
	require.ErrorIs(t, res.err, ErrPollTimeout)
	require.EqualValues(t, 4, res.attempts)
}

func TestPoller_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	clock := clockwork.NewFakeClock()
	poller := NewPoller(NewPollConfig(time.Second, 0), clock, logging.NewLogger("poller_test"))

	resCh := runPoll(ctx, &poller, func(context.Context, uint32) (bool, error) {
		return false, nil
	})

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	cancel()

	res := <-resCh
	require.ErrorIs(t, res.err, context.Canceled)
	require.EqualValues(t, 1, res.attempts)
}

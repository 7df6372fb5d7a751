package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/NilFoundation/blobprobe/nil/common/logging"
	"github.com/stretchr/testify/require"
)

type fakeExecution struct {
	height uint64
	err    error
}

func (f *fakeExecution) BlockNumber(context.Context) (uint64, error) {
	return f.height, f.err
}

type fakeBeacon struct {
	head        uint64
	commitments map[uint64][]string
	err         error
}

func (f *fakeBeacon) HeadSlot(context.Context) (uint64, error) {
	return f.head, f.err
}

func (f *fakeBeacon) BlockCommitments(_ context.Context, slot uint64) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.commitments[slot], nil
}

func TestRemoteReader(t *testing.T) {
	t.Parallel()

	exec := &fakeExecution{height: 9}
	beacon := &fakeBeacon{head: 17, commitments: map[uint64][]string{16: {"0xabc"}}}
	reader := NewReader(exec, beacon, logging.NewLogger("chain_reader_test"))

	height, err := reader.CurrentHeight(t.Context())
	require.NoError(t, err)
	require.Equal(t, uint64(9), height)

	slot, err := reader.HeadSlot(t.Context())
	require.NoError(t, err)
	require.Equal(t, uint64(17), slot)

	commitments, err := reader.BlockCommitments(t.Context(), 16)
	require.NoError(t, err)
	require.Equal(t, []string{"0xabc"}, commitments)
}

func TestRemoteReaderWrapsErrors(t *testing.T) {
	t.Parallel()

	errExec := errors.New("execution node down")
	errBeacon := errors.New("beacon node down")
	reader := NewReader(&fakeExecution{err: errExec}, &fakeBeacon{err: errBeacon}, logging.NewLogger("chain_reader_test"))

	_, err := reader.CurrentHeight(t.Context())
	require.ErrorIs(t, err, errExec)

	_, err = reader.HeadSlot(t.Context())
	require.ErrorIs(t, err, errBeacon)

	_, err = reader.BlockCommitments(t.Context(), 3)
	require.ErrorIs(t, err, errBeacon)
	require.Contains(t, err.Error(), "slot 3")
}

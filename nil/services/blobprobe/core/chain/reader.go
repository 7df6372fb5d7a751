package chain

import (
	"context"
	"fmt"

	"github.com/NilFoundation/blobprobe/nil/common/logging"
)

// Reader is the read-only view of the chain the inclusion monitor needs.
type Reader interface {
	// CurrentHeight returns the latest execution-layer block number.
	CurrentHeight(ctx context.Context) (uint64, error)

	// HeadSlot returns the slot of the latest beacon header.
	HeadSlot(ctx context.Context) (uint64, error)

	// BlockCommitments returns the blob commitments of the beacon block at slot,
	// an empty list when the slot has no block or no blobs.
	BlockCommitments(ctx context.Context, slot uint64) ([]string, error)
}

type ExecutionClient interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

type BeaconClient interface {
	HeadSlot(ctx context.Context) (uint64, error)
	BlockCommitments(ctx context.Context, slot uint64) ([]string, error)
}

// RemoteReader composes an execution-layer JSON-RPC client and a beacon REST client.
// Both clients are owned by the caller.
type RemoteReader struct {
	exec   ExecutionClient
	beacon BeaconClient
	logger logging.Logger
}

var _ Reader = (*RemoteReader)(nil)

func NewReader(exec ExecutionClient, beacon BeaconClient, logger logging.Logger) *RemoteReader {
	return &RemoteReader{
		exec:   exec,
		beacon: beacon,
		logger: logger,
	}
}

func (r *RemoteReader) CurrentHeight(ctx context.Context) (uint64, error) {
	height, err := r.exec.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get current block number: %w", err)
	}
	r.logger.Trace().Uint64(logging.FieldBlockNumber, height).Msg("current height")
	return height, nil
}

func (r *RemoteReader) HeadSlot(ctx context.Context) (uint64, error) {
	slot, err := r.beacon.HeadSlot(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get head slot: %w", err)
	}
	r.logger.Trace().Uint64(logging.FieldHeadSlot, slot).Msg("head slot")
	return slot, nil
}

func (r *RemoteReader) BlockCommitments(ctx context.Context, slot uint64) ([]string, error) {
	commitments, err := r.beacon.BlockCommitments(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to get commitments of slot %d: %w", slot, err)
	}
	r.logger.Trace().
		Uint64(logging.FieldSlot, slot).
		Int("commitments", len(commitments)).
		Msg("block commitments")
	return commitments, nil
}

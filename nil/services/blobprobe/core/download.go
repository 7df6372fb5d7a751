package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/NilFoundation/blobprobe/nil/client/beacon"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/blob"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/monitor"
)

var ErrNoBlobsFound = errors.New("no blobs found")

type SidecarSource interface {
	BlobSidecars(ctx context.Context, slot uint64) ([]beacon.BlobSidecar, error)
}

var _ SidecarSource = (*beacon.Client)(nil)

// Download fetches the blob sidecars of slots [startSlot, startSlot+count) and decodes the payload
// of the first slot carrying any. Returns the payload and the slot it was found in.
// All blobs of a slot are decoded as one payload. When a slot may hold several blob transactions,
// pass the commitments of the wanted transaction: only sidecars with one of them are decoded.
func Download(
	ctx context.Context,
	source SidecarSource,
	codec blob.Codec,
	startSlot uint64,
	count uint64,
	commitments []string,
) ([]byte, uint64, error) {
	for slot := startSlot; slot < startSlot+count; slot++ {
		sidecars, err := source.BlobSidecars(ctx, slot)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to fetch sidecars of slot %d: %w", slot, err)
		}
		sidecars = filterSidecars(sidecars, commitments)
		if len(sidecars) == 0 {
			continue
		}

		blobs := make([]blob.Blob, 0, len(sidecars))
		for _, sidecar := range sidecars {
			blobs = append(blobs, blob.Blob(sidecar.Blob))
		}
		payload, err := codec.Decode(blobs)
		if err != nil {
			return nil, slot, fmt.Errorf("failed to decode blobs of slot %d: %w", slot, err)
		}
		return payload, slot, nil
	}
	return nil, 0, fmt.Errorf("%w in slots [%d, %d)", ErrNoBlobsFound, startSlot, startSlot+count)
}

func filterSidecars(sidecars []beacon.BlobSidecar, commitments []string) []beacon.BlobSidecar {
	if len(commitments) == 0 {
		return sidecars
	}

	filtered := make([]beacon.BlobSidecar, 0, len(sidecars))
	for _, sidecar := range sidecars {
		for _, commitment := range commitments {
			if monitor.SameCommitment(sidecar.KzgCommitment, commitment) {
				filtered = append(filtered, sidecar)
				break
			}
		}
	}
	return filtered
}

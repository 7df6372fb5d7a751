package submit

import (
	"context"
	"errors"
	"fmt"

	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/blob"
	"github.com/ethereum/go-ethereum/common"
)

var ErrSubmissionRejected = errors.New("submission rejected")

// Submitter builds a transaction carrying the blobs and hands it to the execution client.
// Submissions are never retried.
type Submitter interface {
	Submit(ctx context.Context, blobs []blob.Blob) (*TxResult, error)
}

type TxResult struct {
	Hash common.Hash
	Gas  uint64

	// Raw is the node's response to the send request, or the encoded transaction for locally signed ones.
	Raw []byte
}

// SubmissionError is returned when the node refuses the transaction. Body keeps the raw response.
type SubmissionError struct {
	Method string
	Body   []byte
	Err    error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrSubmissionRejected, e.Method, e.Err)
}

func (e *SubmissionError) Unwrap() []error {
	return []error{ErrSubmissionRejected, e.Err}
}

package monitor

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

var ErrInclusionMismatch = errors.New("inclusion mismatch")

// InclusionRecord is the first blob commitment observed in the scanned slot window.
type InclusionRecord struct {
	Slot       uint64 `json:"slot" yaml:"slot"`
	Commitment string `json:"commitment" yaml:"commitment"`
}

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusMismatch  Status = "mismatch"
)

// Outcome is the result of an inclusion scan. A mismatch is a regular value, not an error.
type Outcome struct {
	Status   Status           `json:"status" yaml:"status"`
	Record   *InclusionRecord `json:"record,omitempty" yaml:"record,omitempty"`
	Expected string           `json:"expected" yaml:"expected"`
}

func NewConfirmed(record InclusionRecord, expected string) *Outcome {
	return &Outcome{
		Status:   StatusConfirmed,
		Record:   &record,
		Expected: expected,
	}
}

// NewMismatch builds a mismatch outcome, found is nil when no commitment was observed at all.
func NewMismatch(found *InclusionRecord, expected string) *Outcome {
	return &Outcome{
		Status:   StatusMismatch,
		Record:   found,
		Expected: expected,
	}
}

func (o *Outcome) Confirmed() bool {
	return o.Status == StatusConfirmed
}

// Err converts a mismatch into a *MismatchError, nil for a confirmed outcome.
func (o *Outcome) Err() error {
	if o.Confirmed() {
		return nil
	}
	err := &MismatchError{Expected: o.Expected}
	if o.Record != nil {
		err.Found = o.Record.Commitment
		err.Slot = o.Record.Slot
	}
	return err
}

type MismatchError struct {
	Expected string
	Found    string
	Slot     uint64
}

func (e *MismatchError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("%s: no commitment observed, expected %s", ErrInclusionMismatch, e.Expected)
	}
	return fmt.Sprintf("%s: slot %d has %s, expected %s", ErrInclusionMismatch, e.Slot, e.Found, e.Expected)
}

func (e *MismatchError) Unwrap() error {
	return ErrInclusionMismatch
}

// SameCommitment compares two hex encoded commitments ignoring letter case.
func SameCommitment(a, b string) bool {
	rawA, errA := hexutil.Decode(a)
	rawB, errB := hexutil.Decode(b)
	if errA == nil && errB == nil {
		return bytes.Equal(rawA, rawB)
	}
	return strings.EqualFold(a, b)
}

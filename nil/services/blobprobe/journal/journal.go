package journal

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NilFoundation/blobprobe/nil/common/logging"
	"github.com/dgraph-io/badger/v4"
)

const entriesTable = "probe_entries"

var ErrClosed = errors.New("journal is closed")

// Entry describes a single probe run.
type Entry struct {
	Seq         uint64    `json:"seq" yaml:"seq"`
	StartedAt   time.Time `json:"startedAt" yaml:"startedAt"`
	FinishedAt  time.Time `json:"finishedAt" yaml:"finishedAt"`
	Profile     string    `json:"profile" yaml:"profile"`
	PayloadSize int       `json:"payloadSize" yaml:"payloadSize"`
	BlobCount   int       `json:"blobCount" yaml:"blobCount"`
	TxHash      string    `json:"txHash,omitempty" yaml:"txHash,omitempty"`
	State       string    `json:"state" yaml:"state"`
	Expected    string    `json:"expected,omitempty" yaml:"expected,omitempty"`
	Found       string    `json:"found,omitempty" yaml:"found,omitempty"`
	Slot        uint64    `json:"slot,omitempty" yaml:"slot,omitempty"`
	Error       string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// Journal is an append-only log of probe runs kept in badger.
type Journal struct {
	db     *badger.DB
	logger logging.Logger
}

func makeKey(table string, key []byte) []byte {
	return append([]byte(table+":"), key...)
}

func seqKey(seq uint64) []byte {
	return makeKey(entriesTable, binary.BigEndian.AppendUint64(nil, seq))
}

func Open(path string, logger logging.Logger) (*Journal, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	return open(opts, logger)
}

func OpenInMemory(logger logging.Logger) (*Journal, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	return open(opts, logger)
}

func open(opts badger.Options, logger logging.Logger) (*Journal, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return &Journal{db: db, logger: logger}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Append assigns the next sequence number to entry and stores it.
func (j *Journal) Append(ctx context.Context, entry *Entry) error {
	if j.db.IsClosed() {
		return ErrClosed
	}

	err := j.db.Update(func(txn *badger.Txn) error {
		last, err := lastSeq(txn)
		if err != nil {
			return err
		}
		entry.Seq = last + 1

		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return txn.Set(seqKey(entry.Seq), data)
	})
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}

	j.logger.Debug().Uint64("seq", entry.Seq).Str(logging.FieldMonitorState, entry.State).Msg("journal entry stored")
	return nil
}

func lastSeq(txn *badger.Txn) (uint64, error) {
	prefix := makeKey(entriesTable, nil)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = true
	opts.PrefetchValues = false
	opts.Prefix = prefix

	iter := txn.NewIterator(opts)
	defer iter.Close()

	iter.Seek(append(prefix, 0xff))
	if !iter.ValidForPrefix(prefix) {
		return 0, nil
	}

	key := iter.Item().Key()[len(prefix):]
	if len(key) != 8 {
		return 0, fmt.Errorf("malformed journal key %x", iter.Item().Key())
	}
	return binary.BigEndian.Uint64(key), nil
}

// List returns all entries ordered by sequence number.
func (j *Journal) List(ctx context.Context) ([]Entry, error) {
	if j.db.IsClosed() {
		return nil, ErrClosed
	}

	var entries []Entry
	err := j.db.View(func(txn *badger.Txn) error {
		prefix := makeKey(entriesTable, nil)
		iter := txn.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var entry Entry
			err := iter.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			})
			if err != nil {
				return fmt.Errorf("failed to decode entry %x: %w", iter.Item().Key(), err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

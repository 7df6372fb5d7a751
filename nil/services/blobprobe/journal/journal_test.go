package journal

import (
	"testing"
	"time"

	"github.com/NilFoundation/blobprobe/nil/common/logging"
	"github.com/stretchr/testify/suite"
)

type JournalTestSuite struct {
	suite.Suite

	journal *Journal
}

func TestJournal(t *testing.T) {
	t.Parallel()

	suite.Run(t, new(JournalTestSuite))
}

func (s *JournalTestSuite) SetupTest() {
	var err error
	s.journal, err = OpenInMemory(logging.NewLogger("journal_test"))
	s.Require().NoError(err)
}

func (s *JournalTestSuite) TearDownTest() {
	if !s.journal.db.IsClosed() {
		s.Require().NoError(s.journal.Close())
	}
}

func (s *JournalTestSuite) TestEmpty() {
	entries, err := s.journal.List(s.T().Context())
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *JournalTestSuite) TestAppendAndList() {
	ctx := s.T().Context()
	started := time.Unix(1_700_000_000, 0).UTC()

	first := &Entry{
		StartedAt:   started,
		FinishedAt:  started.Add(time.Minute),
		Profile:     "mainnet",
		PayloadSize: 5,
		BlobCount:   1,
		TxHash:      "0x01",
		State:       "Confirmed",
		Expected:    "0xabc",
		Found:       "0xabc",
		Slot:        102,
	}
	second := &Entry{
		StartedAt: started.Add(time.Hour),
		Profile:   "devnet",
		State:     "Failed",
		Error:     "submission rejected",
	}

	s.Require().NoError(s.journal.Append(ctx, first))
	s.Require().NoError(s.journal.Append(ctx, second))
	s.Equal(uint64(1), first.Seq)
	s.Equal(uint64(2), second.Seq)

	entries, err := s.journal.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal(*first, entries[0])
	s.Equal(*second, entries[1])
}

func (s *JournalTestSuite) TestOrderingPastByteBoundary() {
	ctx := s.T().Context()
	for range 300 {
		s.Require().NoError(s.journal.Append(ctx, &Entry{State: "Confirmed"}))
	}

	entries, err := s.journal.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 300)
	for i, entry := range entries {
		s.Equal(uint64(i+1), entry.Seq)
	}
}

func (s *JournalTestSuite) TestClosed() {
	s.Require().NoError(s.journal.Close())

	s.Require().ErrorIs(s.journal.Append(s.T().Context(), &Entry{}), ErrClosed)
	_, err := s.journal.List(s.T().Context())
	s.Require().ErrorIs(err, ErrClosed)
}

func TestJournalPersists(t *testing.T) {
	t.Parallel()

	path := t.TempDir()
	logger := logging.NewLogger("journal_test")

	journal, err := Open(path, logger)
	if err != nil {
		t.Fatal(err)
	}
	if err := journal.Append(t.Context(), &Entry{State: "Mismatch"}); err != nil {
		t.Fatal(err)
	}
	if err := journal.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path, logger)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	entries, err := reopened.List(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].State != "Mismatch" || entries[0].Seq != 1 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

package beacon

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NilFoundation/blobprobe/nil/common/logging"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite

	routes map[string]func(w http.ResponseWriter)
	server *httptest.Server
	client *Client
}

func (s *ClientTestSuite) SetupTest() {
	s.routes = make(map[string]func(w http.ResponseWriter))
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := s.routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		handler(w)
	}))
	s.client = NewClient(s.server.URL, logging.NewLogger("beacon_client_test"))
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) serve(path, body string) {
	s.routes[path] = func(w http.ResponseWriter) {
		_, _ = w.Write([]byte(body))
	}
}

func (s *ClientTestSuite) TestHeadSlot() {
	s.serve("/eth/v1/beacon/headers",
		`{"data":[{"root":"0x01","canonical":true,"header":{"message":{"slot":"42","proposer_index":"3"}}}]}`)

	slot, err := s.client.HeadSlot(s.T().Context())
	s.Require().NoError(err)
	s.Equal(uint64(42), slot)
}

func (s *ClientTestSuite) TestHeadSlotNoHeaders() {
	s.serve("/eth/v1/beacon/headers", `{"data":[]}`)

	_, err := s.client.HeadSlot(s.T().Context())
	s.Require().ErrorIs(err, ErrNoHeaders)
}

func (s *ClientTestSuite) TestBlockCommitmentsLegacyName() {
	s.serve("/eth/v2/beacon/blocks/7",
		`{"data":{"message":{"slot":"7","body":{"blob_kzgs":["0xabc"]}}}}`)

	commitments, err := s.client.BlockCommitments(s.T().Context(), 7)
	s.Require().NoError(err)
	s.Equal([]string{"0xabc"}, commitments)
}

func (s *ClientTestSuite) TestBlockCommitmentsCurrentName() {
	s.serve("/eth/v2/beacon/blocks/8",
		`{"version":"deneb","data":{"message":{"slot":"8","body":{"blob_kzg_commitments":["0xdef","0x123"]}}}}`)

	commitments, err := s.client.BlockCommitments(s.T().Context(), 8)
	s.Require().NoError(err)
	s.Equal([]string{"0xdef", "0x123"}, commitments)
}

func (s *ClientTestSuite) TestBlockCommitmentsEmptyBody() {
	s.serve("/eth/v2/beacon/blocks/9", `{"data":{"message":{"slot":"9","body":{}}}}`)

	commitments, err := s.client.BlockCommitments(s.T().Context(), 9)
	s.Require().NoError(err)
	s.Empty(commitments)
	s.NotNil(commitments)
}

func (s *ClientTestSuite) TestBlockCommitmentsMissingSlot() {
	commitments, err := s.client.BlockCommitments(s.T().Context(), 10)
	s.Require().NoError(err)
	s.Empty(commitments)
}

func (s *ClientTestSuite) TestServerError() {
	s.routes["/eth/v2/beacon/blocks/11"] = func(w http.ResponseWriter) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}

	_, err := s.client.BlockCommitments(s.T().Context(), 11)
	s.Require().ErrorIs(err, ErrUnexpectedStatus)

	var statusErr *StatusError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusInternalServerError, statusErr.StatusCode)
	s.Contains(string(statusErr.Body), "internal")
	s.False(IsNotFound(err))
}

func (s *ClientTestSuite) TestMalformedBody() {
	s.serve("/eth/v1/beacon/headers", `not json`)

	_, err := s.client.HeadSlot(s.T().Context())
	s.Require().ErrorIs(err, ErrRequestFailed)
}

func (s *ClientTestSuite) TestBlobSidecarsSorted() {
	s.serve("/eth/v1/beacon/blob_sidecars/12", `{"data":[
		{"index":"1","blob":"0x0202","kzg_commitment":"0xbb"},
		{"index":"0","blob":"0x0101","kzg_commitment":"0xaa"}
	]}`)

	sidecars, err := s.client.BlobSidecars(s.T().Context(), 12)
	s.Require().NoError(err)
	s.Require().Len(sidecars, 2)
	s.Equal(uint64(0), sidecars[0].Index)
	s.Equal([]byte{1, 1}, []byte(sidecars[0].Blob))
	s.Equal("0xbb", sidecars[1].KzgCommitment)
}

func (s *ClientTestSuite) TestBlobSidecarsMissingSlot() {
	sidecars, err := s.client.BlobSidecars(s.T().Context(), 13)
	s.Require().NoError(err)
	s.Empty(sidecars)
}

func TestClient(t *testing.T) {
	t.Parallel()

	suite.Run(t, new(ClientTestSuite))
}

package submit

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/NilFoundation/blobprobe/nil/common/logging"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/blob"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/consensus/misc/eip4844"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto/kzg4844"
	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testPrivateKey = "45a915e4d060149eb4365960e6a7a45f334393093061116b197e3240065ff2d8"

type SignedSubmitterTestSuite struct {
	suite.Suite

	ethClient *EthClientMock
	submitter *SignedSubmitter
	blobs     []blob.Blob
	sent      []*ethtypes.Transaction
}

func (s *SignedSubmitterTestSuite) SetupSuite() {
	codec := blob.NewCodec(blob.DefaultProfile())
	blobs, err := codec.Encode([]byte("hello"))
	s.Require().NoError(err)
	s.blobs = blobs
}

func (s *SignedSubmitterTestSuite) SetupTest() {
	s.sent = nil
	s.ethClient = &EthClientMock{
		ChainIDFunc:          func(ctx context.Context) (*big.Int, error) { return big.NewInt(1337), nil },
		PendingNonceAtFunc:   func(ctx context.Context, account common.Address) (uint64, error) { return 7, nil },
		SuggestGasTipCapFunc: func(ctx context.Context) (*big.Int, error) { return big.NewInt(2), nil },
		HeaderByNumberFunc: func(ctx context.Context, number *big.Int) (*ethtypes.Header, error) {
			return &ethtypes.Header{Number: big.NewInt(10), BaseFee: big.NewInt(5)}, nil
		},
		EstimateGasFunc: func(ctx context.Context, msg ethereum.CallMsg) (uint64, error) { return 21000, nil },
		SendTransactionFunc: func(ctx context.Context, tx *ethtypes.Transaction) error {
			s.sent = append(s.sent, tx)
			return nil
		},
	}

	submitter, err := NewSignedSubmitter(
		s.T().Context(), s.ethClient, testPrivateKey, nil, logging.NewLogger("signed_submitter_test"))
	s.Require().NoError(err)
	s.submitter = submitter
}

func (s *SignedSubmitterTestSuite) TestSubmit() {
	res, err := s.submitter.Submit(s.T().Context(), s.blobs)
	s.Require().NoError(err)
	s.Require().Len(s.sent, 1)

	tx := s.sent[0]
	s.Equal(res.Hash, tx.Hash())
	s.Equal(uint64(21000), res.Gas)
	s.Equal(uint8(ethtypes.BlobTxType), tx.Type())
	s.Equal(uint64(7), tx.Nonce())
	s.Equal(big.NewInt(12), tx.GasFeeCap())
	s.Equal(big.NewInt(2), tx.BlobGasFeeCap())
	s.Equal(s.submitter.From(), *tx.To())

	sender, err := ethtypes.Sender(ethtypes.LatestSignerForChainID(big.NewInt(1337)), tx)
	s.Require().NoError(err)
	s.Equal(s.submitter.From(), sender)

	kzgBlob, err := s.blobs[0].KZG()
	s.Require().NoError(err)
	commitment, err := kzg4844.BlobToCommitment(kzgBlob)
	s.Require().NoError(err)

	sidecar := tx.BlobTxSidecar()
	s.Require().NotNil(sidecar)
	s.Equal([]kzg4844.Commitment{commitment}, sidecar.Commitments)
	s.Equal(sidecar.BlobHashes(), tx.BlobHashes())

	estimates := s.ethClient.EstimateGasCalls()
	s.Require().Len(estimates, 1)
	s.Equal(tx.BlobHashes(), estimates[0].Msg.BlobHashes)

	var decoded ethtypes.Transaction
	s.Require().NoError(decoded.UnmarshalBinary(res.Raw))
	s.Equal(tx.Hash(), decoded.Hash())
}

func (s *SignedSubmitterTestSuite) TestFixedRecipient() {
	to := common.HexToAddress("0xffb38a7a99e3e2335be83fc74b7faa19d5531243")
	submitter, err := NewSignedSubmitter(
		s.T().Context(), s.ethClient, testPrivateKey, &to, logging.NewLogger("signed_submitter_test"))
	s.Require().NoError(err)

	_, err = submitter.Submit(s.T().Context(), s.blobs)
	s.Require().NoError(err)
	s.Require().Len(s.sent, 1)
	s.Equal(to, *s.sent[0].To())
}

func (s *SignedSubmitterTestSuite) TestSendRejected() {
	errRejected := errors.New("replacement transaction underpriced")
	s.ethClient.SendTransactionFunc = func(ctx context.Context, tx *ethtypes.Transaction) error {
		return errRejected
	}

	_, err := s.submitter.Submit(s.T().Context(), s.blobs)
	s.Require().ErrorIs(err, ErrSubmissionRejected)
	s.Require().ErrorIs(err, errRejected)
}

func (s *SignedSubmitterTestSuite) TestRejectsNonMainnetBlobs() {
	devnet, err := blob.ProfileByName(blob.ProfileDevnet)
	s.Require().NoError(err)
	blobs, err := blob.NewCodec(devnet).Encode([]byte("hello"))
	s.Require().NoError(err)

	_, err = s.submitter.Submit(s.T().Context(), blobs)
	s.Require().ErrorIs(err, blob.ErrInvalidBlobSize)
	s.Empty(s.ethClient.PendingNonceAtCalls())
	s.Empty(s.sent)
}

func (s *SignedSubmitterTestSuite) TestBlobFeeFromExcessBlobGas() {
	excessBlobGas := uint64(100 * params.BlobTxBlobGasPerBlob)
	s.ethClient.HeaderByNumberFunc = func(ctx context.Context, number *big.Int) (*ethtypes.Header, error) {
		return &ethtypes.Header{Number: big.NewInt(10), BaseFee: big.NewInt(5), ExcessBlobGas: &excessBlobGas}, nil
	}

	_, err := s.submitter.Submit(s.T().Context(), s.blobs)
	s.Require().NoError(err)
	s.Require().Len(s.sent, 1)

	blobFee := eip4844.CalcBlobFee(excessBlobGas)
	s.Positive(blobFee.Cmp(big.NewInt(1)))
	s.Equal(new(big.Int).Mul(blobFee, big.NewInt(2)), s.sent[0].BlobGasFeeCap())

	estimates := s.ethClient.EstimateGasCalls()
	s.Require().Len(estimates, 1)
	s.Equal(s.sent[0].BlobGasFeeCap(), estimates[0].Msg.BlobGasFeeCap)
}

func (s *SignedSubmitterTestSuite) TestNoBaseFee() {
	s.ethClient.HeaderByNumberFunc = func(ctx context.Context, number *big.Int) (*ethtypes.Header, error) {
		return &ethtypes.Header{Number: big.NewInt(1)}, nil
	}

	_, err := s.submitter.Submit(s.T().Context(), s.blobs)
	s.Require().ErrorIs(err, ErrNoBaseFee)
	s.Empty(s.sent)
}

func TestSignedSubmitter(t *testing.T) {
	t.Parallel()

	suite.Run(t, new(SignedSubmitterTestSuite))
}

func TestSignedSubmitterBadKey(t *testing.T) {
	t.Parallel()

	client := &EthClientMock{}
	_, err := NewSignedSubmitter(t.Context(), client, "not a key", nil, logging.NewLogger("signed_submitter_test"))
	require.Error(t, err)
	require.Empty(t, client.ChainIDCalls())
}

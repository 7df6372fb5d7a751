package submit

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/NilFoundation/blobprobe/nil/common/logging"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/blob"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/consensus/misc/eip4844"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/crypto/kzg4844"
	"github.com/holiman/uint256"
)

// EthClient is the subset of ethclient.Client used to sign and send blob transactions.
type EthClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*ethtypes.Header, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
}

var ErrNoBaseFee = errors.New("latest header has no base fee")

// SignedSubmitter signs EIP-4844 transactions locally, the sidecar is computed with the KZG library.
type SignedSubmitter struct {
	client  EthClient
	key     *ecdsa.PrivateKey
	from    common.Address
	to      *common.Address
	chainId *big.Int
	logger  logging.Logger
}

var _ Submitter = (*SignedSubmitter)(nil)

func NewSignedSubmitter(
	ctx context.Context,
	client EthClient,
	privateKeyHex string,
	to *common.Address,
	logger logging.Logger,
) (*SignedSubmitter, error) {
	key, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("converting private key hex to ECDSA: %w", err)
	}

	chainId, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve chain ID: %w", err)
	}

	return &SignedSubmitter{
		client:  client,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		to:      to,
		chainId: chainId,
		logger:  logger,
	}, nil
}

func (s *SignedSubmitter) From() common.Address {
	return s.from
}

func (s *SignedSubmitter) Submit(ctx context.Context, blobs []blob.Blob) (*TxResult, error) {
	sidecar, err := s.computeSidecar(blobs)
	if err != nil {
		return nil, err
	}

	to := s.from
	if s.to != nil {
		to = *s.to
	}

	nonce, err := s.client.PendingNonceAt(ctx, s.from)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	gasTipCap, gasFeeCap, blobFeeCap, err := s.suggestFees(ctx)
	if err != nil {
		return nil, err
	}

	blobHashes := sidecar.BlobHashes()
	gas, err := s.client.EstimateGas(ctx, ethereum.CallMsg{
		From:          s.from,
		To:            &to,
		GasTipCap:     gasTipCap,
		GasFeeCap:     gasFeeCap,
		Value:         new(big.Int),
		BlobGasFeeCap: blobFeeCap,
		BlobHashes:    blobHashes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	tx, err := ethtypes.SignNewTx(s.key, ethtypes.LatestSignerForChainID(s.chainId), &ethtypes.BlobTx{
		ChainID:    uint256.MustFromBig(s.chainId),
		Nonce:      nonce,
		GasTipCap:  uint256.MustFromBig(gasTipCap),
		GasFeeCap:  uint256.MustFromBig(gasFeeCap),
		Gas:        gas,
		To:         to,
		Value:      uint256.NewInt(0),
		BlobFeeCap: uint256.MustFromBig(blobFeeCap),
		BlobHashes: blobHashes,
		Sidecar:    sidecar,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	raw, err := tx.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, tx); err != nil {
		return nil, &SubmissionError{Method: "eth_sendRawTransaction", Body: []byte(err.Error()), Err: err}
	}

	s.logger.Info().
		Stringer(logging.FieldTxHash, tx.Hash()).
		Stringer(logging.FieldChainId, s.chainId).
		Uint64("nonce", nonce).
		Uint64("gasLimit", gas).
		Int(logging.FieldBlobCount, len(blobs)).
		Msg("signed blob transaction sent")

	return &TxResult{
		Hash: tx.Hash(),
		Gas:  gas,
		Raw:  raw,
	}, nil
}

// suggestFees returns the tip, the fee cap (tip + 2 * base fee) and the blob fee cap (2 * blob base fee).
// The blob base fee is derived from the excess blob gas of the latest header.
func (s *SignedSubmitter) suggestFees(ctx context.Context) (*big.Int, *big.Int, *big.Int, error) {
	gasTipCap, err := s.client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to suggest gas tip cap: %w", err)
	}

	head, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get latest header: %w", err)
	}
	if head.BaseFee == nil {
		return nil, nil, nil, ErrNoBaseFee
	}
	gasFeeCap := new(big.Int).Add(gasTipCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

	var excessBlobGas uint64
	if head.ExcessBlobGas != nil {
		excessBlobGas = *head.ExcessBlobGas
	}
	blobFeeCap := new(big.Int).Mul(eip4844.CalcBlobFee(excessBlobGas), big.NewInt(2))

	return gasTipCap, gasFeeCap, blobFeeCap, nil
}

func (s *SignedSubmitter) computeSidecar(blobs []blob.Blob) (*ethtypes.BlobTxSidecar, error) {
	kzgBlobs := make([]kzg4844.Blob, 0, len(blobs))
	commitments := make([]kzg4844.Commitment, 0, len(blobs))
	proofs := make([]kzg4844.Proof, 0, len(blobs))

	for i, b := range blobs {
		kzgBlob, err := b.KZG()
		if err != nil {
			return nil, fmt.Errorf("blob %d: %w", i, err)
		}

		commitment, err := kzg4844.BlobToCommitment(kzgBlob)
		if err != nil {
			return nil, fmt.Errorf("computing commitment: %w", err)
		}

		proof, err := kzg4844.ComputeBlobProof(kzgBlob, commitment)
		if err != nil {
			return nil, fmt.Errorf("computing proof: %w", err)
		}

		kzgBlobs = append(kzgBlobs, *kzgBlob)
		commitments = append(commitments, commitment)
		proofs = append(proofs, proof)
	}

	return &ethtypes.BlobTxSidecar{
		Blobs:       kzgBlobs,
		Commitments: commitments,
		Proofs:      proofs,
	}, nil
}

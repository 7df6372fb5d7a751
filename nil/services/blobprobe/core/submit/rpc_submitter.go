package submit

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/NilFoundation/blobprobe/nil/client/rpc"
	"github.com/NilFoundation/blobprobe/nil/common/logging"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/blob"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// DefaultFromAddress is the prefunded account of the dev genesis.
	DefaultFromAddress = "0xa94f5374fce5edbc8e2a8697c15331677e6ebf0b"
	DefaultChainId     = "0x1"
)

// TxArgs is the eth_estimateGas / eth_sendTransaction argument object extended with blobs.
type TxArgs struct {
	From    common.Address  `json:"from"`
	To      common.Address  `json:"to"`
	Data    hexutil.Bytes   `json:"data"`
	ChainId *hexutil.Big    `json:"chainId"`
	Blobs   []hexutil.Bytes `json:"blobs"`
	Gas     *hexutil.Uint64 `json:"gas,omitempty"`
}

type RPCClient interface {
	EstimateGas(ctx context.Context, args any) (hexutil.Uint64, error)
	SendTransaction(ctx context.Context, args any) (common.Hash, []byte, error)
}

var _ RPCClient = (*rpc.Client)(nil)

type RPCSubmitterConfig struct {
	From    common.Address
	To      *common.Address // a fresh random address per submission when nil
	ChainId *big.Int
}

func NewDefaultRPCSubmitterConfig() RPCSubmitterConfig {
	return RPCSubmitterConfig{
		From:    common.HexToAddress(DefaultFromAddress),
		ChainId: big.NewInt(1),
	}
}

// RPCSubmitter lets the node sign the transaction with one of its unlocked accounts.
type RPCSubmitter struct {
	client RPCClient
	config RPCSubmitterConfig
	logger logging.Logger
}

var _ Submitter = (*RPCSubmitter)(nil)

func NewRPCSubmitter(client RPCClient, config RPCSubmitterConfig, logger logging.Logger) *RPCSubmitter {
	return &RPCSubmitter{
		client: client,
		config: config,
		logger: logger,
	}
}

func (s *RPCSubmitter) Submit(ctx context.Context, blobs []blob.Blob) (*TxResult, error) {
	to, err := s.recipient()
	if err != nil {
		return nil, err
	}

	args := TxArgs{
		From:    s.config.From,
		To:      to,
		Data:    hexutil.Bytes{},
		ChainId: (*hexutil.Big)(s.config.ChainId),
		Blobs:   make([]hexutil.Bytes, 0, len(blobs)),
	}
	for _, b := range blobs {
		args.Blobs = append(args.Blobs, hexutil.Bytes(b))
	}

	gas, err := s.client.EstimateGas(ctx, &args)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}
	args.Gas = &gas

	s.logger.Info().
		Stringer("to", to).
		Int(logging.FieldBlobCount, len(blobs)).
		Uint64("gas", uint64(gas)).
		Msg("sending blob transaction")

	hash, body, err := s.client.SendTransaction(ctx, &args)
	if err != nil {
		var respErr *rpc.ResponseError
		if errors.As(err, &respErr) {
			return nil, &SubmissionError{Method: rpc.Eth_sendTransaction, Body: body, Err: err}
		}
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	s.logger.Info().Stringer(logging.FieldTxHash, hash).RawJSON("response", body).Msg("blob transaction sent")

	return &TxResult{
		Hash: hash,
		Gas:  uint64(gas),
		Raw:  body,
	}, nil
}

func (s *RPCSubmitter) recipient() (common.Address, error) {
	if s.config.To != nil {
		return *s.config.To, nil
	}
	key, err := crypto.GenerateKey()
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to generate recipient: %w", err)
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

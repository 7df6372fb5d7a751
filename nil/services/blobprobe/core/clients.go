package core

import (
	"context"
	"fmt"

	"github.com/NilFoundation/blobprobe/nil/client/beacon"
	"github.com/NilFoundation/blobprobe/nil/client/rpc"
	"github.com/NilFoundation/blobprobe/nil/common/logging"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/chain"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/submit"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Clients owns the connections to the execution and beacon nodes.
type Clients struct {
	Rpc    *rpc.Client
	Beacon *beacon.Client

	eth *ethclient.Client
}

var _ submit.EthClient = (*ethclient.Client)(nil)

func NewClients(config *Config, logger logging.Logger) (*Clients, error) {
	rpcClient := rpc.NewClient(config.RpcEndpoint, logger)
	if rpcClient == nil {
		return nil, fmt.Errorf("%w: bad rpc endpoint %q", ErrInvalidConfig, config.RpcEndpoint)
	}
	return &Clients{
		Rpc:    rpcClient,
		Beacon: beacon.NewClient(config.BeaconEndpoint, logger),
	}, nil
}

func (c *Clients) Reader(logger logging.Logger) chain.Reader {
	return chain.NewReader(c.Rpc, c.Beacon, logger)
}

// Submitter picks the locally signing submitter when a signer key is configured,
// otherwise transactions are signed by the node.
func (c *Clients) Submitter(ctx context.Context, config *Config, logger logging.Logger) (submit.Submitter, error) {
	if config.SignerKey == "" {
		rpcConfig, err := config.rpcSubmitterConfig()
		if err != nil {
			return nil, err
		}
		return submit.NewRPCSubmitter(c.Rpc, rpcConfig, logger), nil
	}

	if c.eth == nil {
		eth, err := ethclient.DialContext(ctx, config.RpcEndpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to dial %s: %w", config.RpcEndpoint, err)
		}
		c.eth = eth
	}
	return submit.NewSignedSubmitter(ctx, c.eth, config.SignerKey, config.recipient(), logger)
}

func (c *Clients) Close() {
	if c.eth != nil {
		c.eth.Close()
	}
}

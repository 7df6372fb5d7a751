package core

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/NilFoundation/blobprobe/nil/internal/telemetry"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/blob"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/monitor"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/submit"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultRpcEndpoint    = "http://localhost:8545"
	DefaultBeaconEndpoint = "http://localhost:3500"
)

type Config struct {
	RpcEndpoint    string `yaml:"rpcEndpoint"`
	BeaconEndpoint string `yaml:"beaconEndpoint"`

	// Size constants of the target network
	Profile blob.Profile `yaml:"profile"`

	// Execution layer block after which blob transactions are accepted
	ActivationHeight uint64 `yaml:"activationHeight"`

	// Number of slots scanned for the expected commitment
	LookaheadSlots uint64 `yaml:"lookaheadSlots"`

	Monitor monitor.Config `yaml:"monitor"`

	From    string `yaml:"from"`
	To      string `yaml:"to,omitempty"`
	ChainId string `yaml:"chainId"`

	// Hex encoded private key, switches submissions to locally signed EIP-4844 transactions
	SignerKey string `yaml:"signerKey,omitempty"`

	// Badger directory of the run journal, journaling is off when empty
	JournalPath string `yaml:"journal,omitempty"`

	MetricsExport string `yaml:"metrics"`
	LogLevel      string `yaml:"logLevel"`
}

func NewDefaultConfig() *Config {
	return &Config{
		RpcEndpoint:      DefaultRpcEndpoint,
		BeaconEndpoint:   DefaultBeaconEndpoint,
		Profile:          blob.DefaultProfile(),
		ActivationHeight: 9,
		LookaheadSlots:   5,
		Monitor:          monitor.DefaultConfig(),
		From:             submit.DefaultFromAddress,
		ChainId:          submit.DefaultChainId,
		MetricsExport:    telemetry.ExportOptionNone.String(),
		LogLevel:         "info",
	}
}

func (c *Config) Validate() error {
	if c.RpcEndpoint == "" {
		return fmt.Errorf("%w: rpc endpoint is required", ErrInvalidConfig)
	}
	if c.BeaconEndpoint == "" {
		return fmt.Errorf("%w: beacon endpoint is required", ErrInvalidConfig)
	}
	if err := c.Profile.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.LookaheadSlots == 0 {
		return fmt.Errorf("%w: lookahead slots must be positive", ErrInvalidConfig)
	}
	if c.Monitor.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval must be positive", ErrInvalidConfig)
	}
	if c.Monitor.ActivationTimeout < 0 || c.Monitor.SlotTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidConfig)
	}
	if !common.IsHexAddress(c.From) {
		return fmt.Errorf("%w: invalid sender address %q", ErrInvalidConfig, c.From)
	}
	if c.To != "" && !common.IsHexAddress(c.To) {
		return fmt.Errorf("%w: invalid recipient address %q", ErrInvalidConfig, c.To)
	}
	if _, err := c.ChainIdValue(); err != nil {
		return err
	}
	if c.SignerKey != "" {
		if _, err := crypto.HexToECDSA(c.SignerKey); err != nil {
			return fmt.Errorf("%w: signer key: %w", ErrInvalidConfig, err)
		}
		if c.Profile.BlobSize() != blob.DefaultProfile().BlobSize() {
			return fmt.Errorf("%w: signed submissions need the %s profile", ErrInvalidConfig, blob.ProfileMainnet)
		}
	}
	if _, err := telemetry.ParseExportOption(c.MetricsExport); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) ChainIdValue() (*big.Int, error) {
	chainId, err := hexutil.DecodeBig(c.ChainId)
	if err != nil {
		return nil, fmt.Errorf("%w: chain id %q: %w", ErrInvalidConfig, c.ChainId, err)
	}
	return chainId, nil
}

func (c *Config) recipient() *common.Address {
	if c.To == "" {
		return nil
	}
	to := common.HexToAddress(c.To)
	return &to
}

func (c *Config) rpcSubmitterConfig() (submit.RPCSubmitterConfig, error) {
	chainId, err := c.ChainIdValue()
	if err != nil {
		return submit.RPCSubmitterConfig{}, err
	}
	return submit.RPCSubmitterConfig{
		From:    common.HexToAddress(c.From),
		To:      c.recipient(),
		ChainId: chainId,
	}, nil
}

package core

import (
	"math/big"
	"testing"

	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/blob"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	config := NewDefaultConfig()
	require.NoError(t, config.Validate())

	chainId, err := config.ChainIdValue()
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1), chainId)
	require.Nil(t, config.recipient())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	for name, mutate := range map[string]func(c *Config){
		"no rpc endpoint":   func(c *Config) { c.RpcEndpoint = "" },
		"no beacon":         func(c *Config) { c.BeaconEndpoint = "" },
		"broken profile":    func(c *Config) { c.Profile = blob.Profile{} },
		"no lookahead":      func(c *Config) { c.LookaheadSlots = 0 },
		"no poll interval":  func(c *Config) { c.Monitor.PollInterval = 0 },
		"negative timeout":  func(c *Config) { c.Monitor.SlotTimeout = -1 },
		"bad sender":        func(c *Config) { c.From = "0x123" },
		"bad recipient":     func(c *Config) { c.To = "not an address" },
		"bad chain id":      func(c *Config) { c.ChainId = "1" },
		"bad signer key":    func(c *Config) { c.SignerKey = "zz" },
		"unknown exporter":  func(c *Config) { c.MetricsExport = "prometheus" },
		"signed on devnet": func(c *Config) {
			c.SignerKey = "45a915e4d060149eb4365960e6a7a45f334393093061116b197e3240065ff2d8"
			c.Profile, _ = blob.ProfileByName(blob.ProfileDevnet)
		},
	} {
		config := NewDefaultConfig()
		mutate(config)
		require.ErrorIs(t, config.Validate(), ErrInvalidConfig, name)
	}
}

func TestConfigYaml(t *testing.T) {
	t.Parallel()

	config := NewDefaultConfig()
	config.To = "0xffb38a7a99e3e2335be83fc74b7faa19d5531243"

	data, err := yaml.Marshal(config)
	require.NoError(t, err)
	require.Contains(t, string(data), "profile: mainnet")
	require.Contains(t, string(data), "pollInterval: 1s")
	require.NotContains(t, string(data), "signerKey")

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, *config, decoded)
	require.NotNil(t, decoded.recipient())
}

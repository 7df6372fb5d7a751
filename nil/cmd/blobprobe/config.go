package main

import (
	"fmt"
	"strings"

	"github.com/NilFoundation/blobprobe/nil/common/check"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/blob"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "BLOBPROBE"

// flag name -> config key, keys follow the yaml layout of core.Config
var configFlags = map[string]string{
	"rpc-endpoint":       "rpcEndpoint",
	"beacon-endpoint":    "beaconEndpoint",
	"profile":            "profile",
	"activation-height":  "activationHeight",
	"lookahead-slots":    "lookaheadSlots",
	"poll-interval":      "monitor.pollInterval",
	"activation-timeout": "monitor.activationTimeout",
	"slot-timeout":       "monitor.slotTimeout",
	"from":               "from",
	"to":                 "to",
	"chain-id":           "chainId",
	"signer-key":         "signerKey",
	"journal":            "journal",
	"metrics":            "metrics",
	"log-level":          "logLevel",
}

func registerConfigFlags(flags *pflag.FlagSet, defaults *core.Config) {
	flags.String("rpc-endpoint", defaults.RpcEndpoint, "execution node JSON-RPC endpoint")
	flags.String("beacon-endpoint", defaults.BeaconEndpoint, "beacon node REST endpoint")
	flags.String("profile", defaults.Profile.Name,
		fmt.Sprintf("blob size profile: %s", strings.Join(blob.ProfileNames(), "|")))
	flags.Uint64("activation-height", defaults.ActivationHeight, "execution block to wait for before submitting")
	flags.Uint64("lookahead-slots", defaults.LookaheadSlots, "number of slots scanned for the expected commitment")
	flags.Duration("poll-interval", defaults.Monitor.PollInterval, "delay between two reads of the chain head")
	flags.Duration("activation-timeout", defaults.Monitor.ActivationTimeout,
		"max time to wait for the activation height, 0 waits forever")
	flags.Duration("slot-timeout", defaults.Monitor.SlotTimeout, "max time to wait for a single slot, 0 waits forever")
	flags.String("from", defaults.From, "sender account unlocked on the node")
	flags.String("to", defaults.To, "recipient address, a random one per transaction when empty")
	flags.String("chain-id", defaults.ChainId, "hex encoded chain id")
	flags.String("signer-key", defaults.SignerKey, "hex private key, signs EIP-4844 transactions locally when set")
	flags.String("journal", defaults.JournalPath, "badger directory to record runs in")
	flags.String("metrics", defaults.MetricsExport, "metric exporter: none|stdout|grpc")
	flags.StringP("log-level", "l", defaults.LogLevel, "log level: trace|debug|info|warn|error|fatal|panic")
}

func bindConfigFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for name, key := range configFlags {
		flag := flags.Lookup(name)
		check.PanicIfNotf(flag != nil, "flag %q is not registered", name)

		check.PanicIfErr(v.BindPFlag(key, flag))
		check.PanicIfErr(v.BindEnv(key, envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(name, "-", "_"))))
	}
}

func decoderConfig(config *mapstructure.DecoderConfig) {
	config.TagName = "yaml"
	config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)
}

// loadConfig merges, from lowest to highest priority, defaults, the config file, the environment and flags.
func (rc *RootCommand) loadConfig() error {
	bindConfigFlags(rc.viper, rc.baseCmd.PersistentFlags())

	if rc.cfgFile != "" {
		rc.viper.SetConfigFile(rc.cfgFile)
		if err := rc.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		logger.Debug().Str("file", rc.viper.ConfigFileUsed()).Msg("config file loaded")
	}

	config := core.NewDefaultConfig()
	if err := rc.viper.Unmarshal(config, decoderConfig); err != nil {
		return fmt.Errorf("unable to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}

	rc.config = config
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/NilFoundation/blobprobe/nil/common/logging"
	"github.com/NilFoundation/blobprobe/nil/internal/telemetry"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const serviceName = "blobprobe"

type RootCommand struct {
	baseCmd *cobra.Command
	viper   *viper.Viper
	config  *core.Config
	cfgFile string
}

var logger = logging.NewLogger("root")

// commands that never talk to the nodes
var noTelemetryCmd = map[string]struct{}{
	"help":       {},
	"completion": {},
	"config":     {},
	"history":    {},
}

func main() {
	rootCmd := newRootCommand()
	rootCmd.Execute()
}

func newRootCommand() *RootCommand {
	rc := &RootCommand{
		viper:  viper.New(),
		config: core.NewDefaultConfig(),
	}

	rc.baseCmd = &cobra.Command{
		Use:   serviceName + " <payload> [expected-commitment]",
		Short: "Send a blob transaction and check that its commitment lands on the beacon chain",
		Args:  cobra.RangeArgs(1, 2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := rc.loadConfig(); err != nil {
				return err
			}
			if err := logging.TrySetupGlobalLevel(rc.config.LogLevel); err != nil {
				return fmt.Errorf("%w: log level: %w", core.ErrInvalidConfig, err)
			}

			for cmd.HasParent() && cmd.Parent() != rc.baseCmd {
				cmd = cmd.Parent()
			}
			if _, skip := noTelemetryCmd[cmd.Name()]; skip {
				return nil
			}
			return rc.initTelemetry(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rc.send(cmd, []byte(args[0]), optionalArg(args, 1))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rc.baseCmd.PersistentFlags().StringVarP(&rc.cfgFile, "config", "c", "", "Path to a yaml config file")
	registerConfigFlags(rc.baseCmd.PersistentFlags(), rc.config)
	rc.registerSubCommands()
	return rc
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		rc.sendCommand(),
		rc.uploadCommand(),
		rc.downloadCommand(),
		rc.historyCommand(),
		rc.configCommand(),
	)
}

func (rc *RootCommand) initTelemetry(ctx context.Context) error {
	exportOption, err := telemetry.ParseExportOption(rc.config.MetricsExport)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidConfig, err)
	}
	return telemetry.Init(ctx, &telemetry.Config{
		ServiceName:        serviceName,
		MetricExportOption: exportOption,
	})
}

// Execute runs the root command, any error (a commitment mismatch included) exits with code 1.
func (rc *RootCommand) Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	err := rc.baseCmd.ExecuteContext(ctx)
	stop()
	telemetry.Shutdown(context.Background())

	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s %v\n", redStr("Error:"), err)
		os.Exit(1)
	}
}

func optionalArg(args []string, idx int) string {
	if len(args) > idx {
		return args[idx]
	}
	return ""
}

package main

import (
	"fmt"
	"os"

	"github.com/NilFoundation/blobprobe/nil/common/check"
	"github.com/NilFoundation/blobprobe/nil/common/logging"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/core/blob"
	"github.com/NilFoundation/blobprobe/nil/services/blobprobe/journal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (rc *RootCommand) sendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "send <payload> [expected-commitment]",
		Short: "Send the payload string as blobs, optionally checking the commitment of the first blob seen",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rc.send(cmd, []byte(args[0]), optionalArg(args, 1))
		},
	}
}

func (rc *RootCommand) uploadCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "upload --file <path> [expected-commitment]",
		Short: "Send the content of a file as blobs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read payload: %w", err)
			}
			return rc.send(cmd, payload, optionalArg(args, 0))
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "file with the payload")
	check.PanicIfErr(cmd.MarkFlagRequired("file"))
	return cmd
}

func (rc *RootCommand) downloadCommand() *cobra.Command {
	var startSlot, count uint64
	var outPath string
	var commitments []string
	cmd := &cobra.Command{
		Use:   "download --start <slot>",
		Short: "Decode the payload of the first slot carrying blobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := core.NewClients(rc.config, logging.NewLogger("clients"))
			if err != nil {
				return err
			}
			defer clients.Close()

			codec := blob.NewCodec(rc.config.Profile)
			payload, slot, err := core.Download(cmd.Context(), clients.Beacon, codec, startSlot, count, commitments)
			if err != nil {
				return err
			}
			logger.Info().Uint64(logging.FieldSlot, slot).Int(logging.FieldPayloadSize, len(payload)).Msg("payload decoded")

			if outPath != "" {
				return os.WriteFile(outPath, payload, 0o644)
			}
			_, err = cmd.OutOrStdout().Write(payload)
			return err
		},
	}
	cmd.Flags().Uint64Var(&startSlot, "start", 0, "first slot to look at")
	cmd.Flags().Uint64Var(&count, "count", 1, "number of slots to look at")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the payload to a file instead of stdout")
	cmd.Flags().StringSliceVar(&commitments, "commitment", nil, "decode only the blobs with these commitments")
	check.PanicIfErr(cmd.MarkFlagRequired("start"))
	return cmd
}

func (rc *RootCommand) historyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List the runs recorded in the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rc.config.JournalPath == "" {
				return fmt.Errorf("%w: journal path is not set", core.ErrInvalidConfig)
			}
			j, err := journal.Open(rc.config.JournalPath, logging.NewLogger("journal"))
			if err != nil {
				return err
			}
			defer j.Close()

			entries, err := j.List(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatHistory(entries))
			return err
		},
	}
}

func (rc *RootCommand) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(rc.config)
		},
	}
}

// send runs a single probe, a commitment mismatch is returned as an error.
func (rc *RootCommand) send(cmd *cobra.Command, payload []byte, expected string) error {
	ctx := cmd.Context()
	serviceLogger := logging.NewLogger(serviceName)

	clients, err := core.NewClients(rc.config, logging.NewLogger("clients"))
	if err != nil {
		return err
	}
	defer clients.Close()

	submitter, err := clients.Submitter(ctx, rc.config, logging.NewLogger("submitter"))
	if err != nil {
		return err
	}

	opts := []core.Option{core.WithLogger(serviceLogger)}
	if rc.config.JournalPath != "" {
		j, err := journal.Open(rc.config.JournalPath, logging.NewLogger("journal"))
		if err != nil {
			return err
		}
		defer j.Close()
		opts = append(opts, core.WithJournal(j))
	}

	service, err := core.New(rc.config, clients.Reader(logging.NewLogger("chain_reader")), submitter, opts...)
	if err != nil {
		return err
	}

	report, err := service.Run(ctx, payload, expected)
	if report != nil {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), formatReport(report))
	}
	if err != nil {
		return err
	}
	return report.Err()
}

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/five82/crew/internal/logtail"
)

type logsOptions struct {
	lines int
	level string
}

func newLogsCmd(flags *rootFlags) *cobra.Command {
	opts := &logsOptions{}

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the tail of the gallery log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			minLevel, err := zerolog.ParseLevel(opts.level)
			if err != nil {
				return fmt.Errorf("parse --level: %w", err)
			}

			entries, err := logtail.Read(cfg.LogFile, opts.lines, minLevel)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No log entries in %s.\n", cfg.LogFile)
				return nil
			}
			for _, e := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), logtail.Format(e))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.lines, "lines", "n", 200, "number of trailing lines to read")
	cmd.Flags().StringVar(&opts.level, "level", "debug", "minimum level to show")

	return cmd
}

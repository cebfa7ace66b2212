package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/crew/internal/app"
	"github.com/five82/crew/internal/logger"
)

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive gallery (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags)
		},
	}
}

func runBrowse(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := flags.loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so the TUI logs to a file.
	log, err := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	log.Component("browse").Info("starting gallery",
		"endpoint", cfg.Endpoint,
		"results", cfg.Results,
		"nat", cfg.Nationality,
	)

	return app.Run(cmd.Context(), app.Options{
		Config:    cfg,
		PrefsPath: flags.prefsPath,
		Logger:    log,
	})
}

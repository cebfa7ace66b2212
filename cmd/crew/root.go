package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/five82/crew/internal/config"
	"github.com/five82/crew/internal/logger"
)

type rootFlags struct {
	configPath string
	prefsPath  string
	endpoint   string
	results    int
	nat        string
	seed       string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "crew",
		Short:         "Browse a directory of people from a randomuser-compatible API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/crew/config.toml)")
	pf.StringVar(&flags.prefsPath, "prefs", "", "UI preferences file (default ~/.config/crew/prefs.toml)")
	pf.StringVar(&flags.endpoint, "endpoint", "", "user API endpoint")
	pf.IntVar(&flags.results, "results", 0, "number of people to fetch")
	pf.StringVar(&flags.nat, "nat", "", "two-letter nationality filter")
	pf.StringVar(&flags.seed, "seed", "", "fixed seed for a repeatable result set")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&flags.logFile, "log-file", "", "log file used by the TUI")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newLogsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func (f *rootFlags) loadConfig() (config.Config, error) {
	cfg, err := config.LoadWithOverrides(f.configPath, config.Overrides{
		Endpoint:    f.endpoint,
		Results:     f.results,
		Nationality: f.nat,
		Seed:        f.seed,
		LogLevel:    f.logLevel,
		LogFile:     f.logFile,
	})
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// consoleLogger builds the human-readable logger used by the CLI commands.
func consoleLogger(w io.Writer, cfg config.Config) (*logger.Logger, error) {
	return logger.New(logger.Options{Level: cfg.LogLevel, Console: true, Writer: w})
}

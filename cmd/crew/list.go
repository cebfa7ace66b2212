package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/crew/internal/app"
	"github.com/five82/crew/internal/directory"
	"github.com/five82/crew/internal/export"
)

type listOptions struct {
	search string
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch once and print the people as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := fetchDirectory(cmd, flags, opts.search)
			if err != nil {
				return err
			}
			if dir.VisibleCount() == 0 {
				return renderEmptyList(cmd, dir)
			}
			return export.Write(cmd.OutOrStdout(), export.FormatTable, export.People(dir))
		},
	}

	cmd.Flags().StringVar(&opts.search, "search", "", "only show names containing this text")

	return cmd
}

// fetchDirectory loads config, fetches once and applies the name filter.
func fetchDirectory(cmd *cobra.Command, flags *rootFlags, search string) (*directory.Directory, error) {
	cfg, err := flags.loadConfig()
	if err != nil {
		return nil, err
	}
	log, err := consoleLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return nil, err
	}

	dir, err := app.LoadDirectory(cmd.Context(), app.Options{Config: cfg, Logger: log})
	if err != nil {
		return nil, err
	}
	dir.Filter(search)
	return dir, nil
}

func renderEmptyList(cmd *cobra.Command, dir *directory.Directory) error {
	if dir.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "The API returned no people.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "No names match %q among %d people.\n", dir.Query(), dir.Len())
	return nil
}

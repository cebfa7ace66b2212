package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/crew/internal/export"
)

type exportOptions struct {
	format string
	search string
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch once and write the people as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			dir, err := fetchDirectory(cmd, flags, opts.search)
			if err != nil {
				return err
			}
			return export.Write(cmd.OutOrStdout(), format, export.People(dir))
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "output format: json, yaml or table")
	cmd.Flags().StringVar(&opts.search, "search", "", "only export names containing this text")

	return cmd
}

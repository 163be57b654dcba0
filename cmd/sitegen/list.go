package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eringen/sitegen/views"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the pages of the active table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			table, _, err := loadTable(cfg)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tCOLOR\tBREADCRUMB")
			for _, p := range table {
				color := p.Config.Color
				if !views.KnownColor(color) {
					color = fmt.Sprintf("%s -> %s", displayColor(color), views.DefaultColor)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Path, color, p.Breadcrumb())
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d pages\n", len(table))
			return nil
		},
	}
}

func displayColor(c string) string {
	if c == "" {
		return "(none)"
	}
	return c
}

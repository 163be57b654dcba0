package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eringen/sitegen"
)

func newExportCmd() *cobra.Command {
	var format, to string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active page table to a YAML file or SQLite database",
		Long: `export writes the active page table (the compiled one by default) to a
file that build can read back with --pages (YAML) or --db (SQLite). Existing
SQLite rows are upserted by path; a YAML file is replaced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if to == "" {
				return fmt.Errorf("--to is required")
			}
			if format == "" {
				format = formatFromExt(to)
			}
			table, _, err := loadTable(cfg)
			if err != nil {
				return err
			}

			out := newOutput(cmd.OutOrStdout())
			switch format {
			case "yaml":
				if err := sitegen.SaveTable(to, table); err != nil {
					return err
				}
			case "sqlite":
				s, err := sitegen.NewStore(to)
				if err != nil {
					return err
				}
				defer s.Close()
				if err := s.SaveTable(table); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown export format %q (want yaml or sqlite)", format)
			}
			out.success("Exported %d pages to %s (%s)", len(table), to, format)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "yaml or sqlite (default: from the --to extension)")
	cmd.Flags().StringVar(&to, "to", "", "destination file")
	return cmd
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".db", ".sqlite", ".sqlite3":
		return "sqlite"
	}
	return ""
}

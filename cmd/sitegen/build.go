package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/eringen/sitegen"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Render every page of the table into the output directory",
		Long: `build renders each page of the active table and writes it below the
output directory, creating directories as needed and overwriting existing
files. Files for paths no longer in the table are left in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd)
		},
	}
}

func runBuild(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return build(cfg, newLogger(cfg.LogLevel), newOutput(cmd.OutOrStdout()))
}

func build(cfg cliConfig, logger *slog.Logger, out *output) error {
	site, err := cfg.site()
	if err != nil {
		return err
	}
	table, source, err := loadTable(cfg)
	if err != nil {
		return err
	}
	logger.Info("building", "source", source, "pages", len(table), "out", site.OutputDir)

	w := sitegen.NewWriter(site,
		sitegen.WithLogger(logger),
		sitegen.WithOnWrite(out.created),
	)
	n, err := w.Write(table)
	if err != nil {
		return err
	}
	out.success("Successfully generated %d pages", n)
	if site.Sitemap {
		out.note("  %s written", sitegen.SitemapFile)
	}
	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/sitegen"
)

// cliConfig is the merged result of flag defaults, an optional config file
// and explicitly set flags, in increasing precedence.
type cliConfig struct {
	Out      string `mapstructure:"out"`
	Pages    string `mapstructure:"pages"`
	DB       string `mapstructure:"db"`
	URL      string `mapstructure:"url"`
	Sitemap  bool   `mapstructure:"sitemap"`
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log-level"`
}

func (c cliConfig) site() (sitegen.SiteConfig, error) {
	if c.Sitemap && c.URL == "" {
		return sitegen.SiteConfig{}, fmt.Errorf("--sitemap requires --url")
	}
	return sitegen.SiteConfig{
		Name:      c.Name,
		URL:       c.URL,
		OutputDir: c.Out,
		Sitemap:   c.Sitemap,
	}, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sitegen",
		Short: "Generate the Services and Lead Generation pages",
		Long: `sitegen renders one HTML page per entry of the page table into the
output directory. Without arguments it builds the compiled table into ./public.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml, json or toml)")
	pf.String("out", "public", "output directory")
	pf.String("pages", "", "read the page table from a YAML file")
	pf.String("db", "", "read the page table from a SQLite database")
	pf.String("url", "", "canonical base URL of the site")
	pf.Bool("sitemap", false, "write sitemap.xml after the pages (requires --url)")
	pf.String("name", "", "brand name in header and footer")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newBuildCmd(),
		newListCmd(),
		newExportCmd(),
		newWatchCmd(),
		newInitCmd(),
		newVersionCmd(),
	)
	return root
}

func loadConfig(cmd *cobra.Command) (cliConfig, error) {
	v := viper.New()
	v.SetDefault("out", "public")
	v.SetDefault("log-level", "warn")

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return cliConfig{}, fmt.Errorf("bind flags: %w", err)
	}

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return cliConfig{}, fmt.Errorf("read config file %s: %w", cfgFile, err)
		}
	}

	var cfg cliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cliConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sitegen version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sitegen %s\n", version)
		},
	}
}

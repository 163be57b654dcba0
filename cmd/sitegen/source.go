package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/eringen/sitegen"
	"github.com/eringen/sitegen/pages"
)

// loadTable returns the page table selected by the config: a YAML file, a
// SQLite database, or the compiled table when neither is set.
func loadTable(cfg cliConfig) (sitegen.Table, string, error) {
	switch {
	case cfg.Pages != "" && cfg.DB != "":
		return nil, "", errors.New("--pages and --db are mutually exclusive")
	case cfg.Pages != "":
		t, err := sitegen.LoadTable(cfg.Pages)
		return t, cfg.Pages, err
	case cfg.DB != "":
		if _, err := os.Stat(cfg.DB); err != nil {
			return nil, "", fmt.Errorf("page database: %w", err)
		}
		s, err := sitegen.NewStore(cfg.DB)
		if err != nil {
			return nil, "", err
		}
		defer s.Close()
		t, err := s.ListPages()
		if err != nil {
			return nil, "", fmt.Errorf("list pages from %s: %w", cfg.DB, err)
		}
		return t, cfg.DB, nil
	default:
		return pages.All(), "compiled table", nil
	}
}

// Package sitegen is a static page generator for the Services and Lead
// Generation sections of a marketing site.
//
// Each entry of a page Table is rendered through a single templ skeleton and
// written to its path below the output directory. The table is usually the
// compiled one from the pages package; LoadTable and Store provide the same
// table from a YAML file or a SQLite database.
package sitegen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Writer renders a Table and persists one file per page. It is a single
// linear pass: pages are rendered and written one at a time in table order and
// the first filesystem failure aborts the run.
type Writer struct {
	cfg     SiteConfig
	logger  *slog.Logger
	onWrite []func(path string)
}

// NewWriter creates a Writer for the given site configuration.
func NewWriter(cfg SiteConfig, opts ...Option) *Writer {
	cfg.setDefaults()

	w := &Writer{
		cfg:    cfg,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Config returns the effective site configuration, defaults applied.
func (w *Writer) Config() SiteConfig {
	return w.cfg
}

// Generate writes every page of table below baseDir with default site
// settings and returns the number of pages written.
func Generate(table Table, baseDir string) (int, error) {
	return NewWriter(SiteConfig{OutputDir: baseDir}).Write(table)
}

// Write renders and writes every page of table, overwriting existing files,
// and returns the number of pages written. On failure the count covers the
// pages written before the failing one.
func (w *Writer) Write(table Table) (int, error) {
	base := w.cfg.OutputDir
	if err := os.MkdirAll(base, 0o755); err != nil {
		return 0, &FSError{Op: "mkdir", Path: base, Err: err}
	}

	count := 0
	for _, p := range table {
		if err := w.writePage(base, p); err != nil {
			w.logger.Error("page write failed", "path", p.Path, "err", err)
			return count, err
		}
		count++
		w.logger.Debug("page written", "path", p.Path, "color", p.Config.Color)
		for _, fn := range w.onWrite {
			fn(p.Path)
		}
	}

	if w.cfg.Sitemap && w.cfg.URL != "" {
		if err := writeSitemap(base, w.cfg.URL, table); err != nil {
			return count, err
		}
		w.logger.Debug("sitemap written", "urls", len(table))
	}

	w.logger.Info("pages generated", "count", count, "dir", base)
	return count, nil
}

func (w *Writer) writePage(base string, p Page) error {
	rel := filepath.FromSlash(p.Path)
	if !filepath.IsLocal(rel) {
		return &FSError{Op: "resolve", Path: p.Path, Err: ErrUnsafePath}
	}
	full := filepath.Join(base, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return &FSError{Op: "mkdir", Path: filepath.Dir(full), Err: err}
	}

	var buf bytes.Buffer
	if err := PageComponent(w.cfg, p.Config).Render(context.Background(), &buf); err != nil {
		return fmt.Errorf("sitegen: render %s: %w", p.Path, err)
	}
	return writeFile(full, &buf)
}

// writeFile replaces path with the contents of r through a temp file and a
// rename. New files get 0644; replaced files keep their mode.
func writeFile(path string, r io.Reader) error {
	_, statErr := os.Stat(path)
	if err := atomic.WriteFile(path, r); err != nil {
		return &FSError{Op: "write", Path: path, Err: err}
	}
	if os.IsNotExist(statErr) {
		if err := os.Chmod(path, 0o644); err != nil {
			return &FSError{Op: "chmod", Path: path, Err: err}
		}
	}
	return nil
}

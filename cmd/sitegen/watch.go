package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const rebuildDebounce = 300 * time.Millisecond

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rebuild whenever the --pages YAML table changes",
		Long: `watch performs a build, then watches the YAML page table given with
--pages and rebuilds after every change. Rebuilds never overlap. A failed
rebuild is reported and watching continues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Pages == "" {
				return errors.New("watch requires --pages")
			}
			logger := newLogger(cfg.LogLevel)
			out := newOutput(cmd.OutOrStdout())

			if err := build(cfg, logger, out); err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()

			// Editors often replace files by rename, so watch the directory.
			target := filepath.Clean(cfg.Pages)
			if err := watcher.Add(filepath.Dir(target)); err != nil {
				return err
			}
			out.note("Watching %s (Ctrl+C to stop)", target)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watchLoop(ctx, watcher, target, rebuildDebounce, logger, out, func() error {
				return build(cfg, logger, out)
			})
		},
	}
}

// watchLoop calls rebuild once per burst of changes to target, after the
// burst has been quiet for debounce. Rebuilds run on the calling goroutine so
// they never overlap. A failed rebuild is reported and the loop continues
// until ctx is done or the watcher is closed.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, target string, debounce time.Duration, logger *slog.Logger, out *output, rebuild func() error) error {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)
		case <-fire:
			fire = nil
			if err := rebuild(); err != nil {
				out.warning("Rebuild failed: %v", err)
			}
		}
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"lexiscope/internal/cache"
	"lexiscope/internal/trace"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [flags] file|dir...",
		Short: "Re-run analyze whenever a watched file changes",
		Long: `Watch runs a full analysis, then repeats it every time one of the watched
files or directories changes. Each run starts from scratch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runWatch,
	}
	registerAnalyzeFlags(cmd)
	cmd.Flags().Duration("debounce", 150*time.Millisecond, "wait this long after the last change before re-running")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := readAnalyzeOptions(cmd, cfg, os.Stdout)
	if err != nil {
		return err
	}
	if opts.hasText {
		return errors.New("--text cannot be watched")
	}
	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return fmt.Errorf("failed to get debounce flag: %w", err)
	}
	var store *cache.Cache
	if opts.cache {
		if store, err = cache.Open(opts.cacheDir); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	for _, p := range args {
		if err := addWatch(watcher, p); err != nil {
			return err
		}
	}

	run := func() {
		entries, err := collectEntries(cmd, args, opts, store)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "lexiscope: %v\n", err)
			return
		}
		if err := render(cmd.OutOrStdout(), entries, opts, os.Args[1:]); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "lexiscope: %v\n", err)
		}
	}
	run()
	return watchLoop(ctx, watcher, args, debounce, func(changed string) {
		trace.Point(ctx, trace.ScopeDriver, "watch-change", changed)
		fmt.Fprintf(cmd.ErrOrStderr(), "--- %s changed, re-analyzing\n", changed)
		run()
	})
}

// addWatch registers p. Directories are watched recursively (hidden ones
// skipped, as in batch.ListFiles); for a file its parent directory is
// watched because editors often replace files instead of writing them.
func addWatch(w *fsnotify.Watcher, p string) error {
	info, err := os.Stat(p)
	if err != nil {
		return fmt.Errorf("watch %s: %w", p, err)
	}
	if !info.IsDir() {
		return w.Add(filepath.Dir(p))
	}
	return filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != p && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// watchLoop calls onChange once per burst of relevant events.
func watchLoop(ctx context.Context, w *fsnotify.Watcher, roots []string, debounce time.Duration, onChange func(string)) error {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending string
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev, roots) {
				continue
			}
			// новые каталоги тоже наблюдаем
			if ev.Has(fsnotify.Create) {
				watchCreated(ctx, w, ev.Name)
			}
			pending = ev.Name
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			timerC = timer.C
		case <-timerC:
			timerC = nil
			onChange(pending)
		}
	}
}

// watchCreated starts watching a directory that appeared under a root.
// Failures only go to the trace; watching of existing directories continues.
func watchCreated(ctx context.Context, w *fsnotify.Watcher, name string) {
	info, err := os.Stat(name)
	if err != nil || !info.IsDir() {
		return
	}
	if err := addWatch(w, name); err != nil {
		trace.Point(ctx, trace.ScopeDriver, "watch-add-failed", err.Error(), trace.Attr{Key: "path", Value: name})
	}
}

// relevant filters out chmod-only events and, for file roots, siblings
// that happen to live in the same directory.
func relevant(ev fsnotify.Event, roots []string) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Clean(ev.Name)
	for _, r := range roots {
		r = filepath.Clean(r)
		if name == r {
			return true
		}
		if info, err := os.Stat(r); err == nil && info.IsDir() {
			if rel, err := filepath.Rel(r, name); err == nil && !strings.HasPrefix(rel, "..") {
				return true
			}
		}
	}
	return false
}

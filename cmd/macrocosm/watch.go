package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/macrocosm/compiler/load"
)

// debounce is how long the watcher waits for a burst of saves to settle.
const debounce = 200 * time.Millisecond

// watch runs fn once and again after every change to a descriptor under
// paths, until ctx is canceled. Failures of fn are logged, not returned.
func watch(ctx context.Context, logger *slog.Logger, paths []string, fn func(context.Context) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	// Files are watched through their directory so editors that replace
	// the file on save keep being followed.
	files := make(map[string]bool)
	inputDirs := make(map[string]bool)
	watched := make(map[string]bool)
	for _, p := range paths {
		p = filepath.Clean(p)
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		dir := p
		if info.IsDir() {
			inputDirs[p] = true
		} else {
			dir = filepath.Dir(p)
			files[p] = true
		}
		if watched[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		watched[dir] = true
	}
	relevant := func(name string) bool {
		if _, ok := load.FormatOf(name); !ok {
			return false
		}
		name = filepath.Clean(name)
		return files[name] || inputDirs[filepath.Dir(name)]
	}

	runOnce := func() {
		if err := fn(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("generation failed", "error", err)
		}
	}
	runOnce()
	logger.Info("watching descriptors", "dirs", len(watched))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(event.Name) || event.Op == fsnotify.Chmod {
				continue
			}
			logger.Debug("descriptor changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case <-timer.C:
			runOnce()
		}
	}
}

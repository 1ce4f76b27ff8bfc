// SPDX-License-Identifier: MIT

// Package watch re-runs a command whenever its input file changes.
//
// The parent directory is watched rather than the file itself so that
// editors which save by rename-and-replace keep triggering runs.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/boolgauss/log"
)

// Watcher debounces fsnotify events for a single file and invokes a callback.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   log.Logger

	mu       sync.Mutex
	timer    *time.Timer
	stopped  bool
	inflight sync.WaitGroup // debounced runs that have started

	runMu sync.Mutex // serialises callback runs
	runs  atomic.Int32
}

// New returns a Watcher for path. A nil logger discards diagnostics.
func New(path string, debounce time.Duration, logger log.Logger) *Watcher {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		logger:   logger,
	}
}

// Run invokes fn once, then again after every write to the file, until ctx
// is cancelled. Errors from fn are logged and do not stop the loop.
// Run returns nil on cancellation, after any run already in progress has
// finished, and an error only if watching cannot start.
func (w *Watcher) Run(ctx context.Context, fn func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}
	w.logger.Info("watching input", log.String("path", w.path))

	w.run(fn)

	for {
		select {
		case <-ctx.Done():
			w.stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				w.stop()
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(fn)

		case err, ok := <-watcher.Errors:
			if !ok {
				w.stop()
				return nil
			}
			w.logger.Warn("watch error", log.Err(err))
		}
	}
}

// Runs reports how many times the callback has completed.
func (w *Watcher) Runs() int {
	return int(w.runs.Load())
}

func (w *Watcher) schedule(fn func() error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		if w.stopped {
			w.mu.Unlock()
			return
		}
		w.inflight.Add(1)
		w.mu.Unlock()

		defer w.inflight.Done()
		w.run(fn)
	})
}

// stop cancels any pending run and waits for one already started.
// No run starts after stop returns.
func (w *Watcher) stop() {
	w.mu.Lock()
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.inflight.Wait()
}

func (w *Watcher) run(fn func() error) {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	if err := fn(); err != nil {
		w.logger.Error("run failed", log.String("path", w.path), log.Err(err))
	}
	w.runs.Add(1)
}

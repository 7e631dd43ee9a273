// Package watch reruns a function whenever a file changes.
//
// The parent directory is watched rather than the file itself so that
// editors which replace files on save are still picked up.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/equipsize/pkg/log"
)

// DefaultDebounce is the delay after the last change before a rerun.
const DefaultDebounce = 200 * time.Millisecond

// RunFunc is invoked once at start and again after each change.
type RunFunc func(ctx context.Context) error

// Watcher watches a single file.
type Watcher struct {
	path     string
	run      RunFunc
	debounce time.Duration
	logger   log.Logger

	mu    sync.Mutex
	timer *time.Timer
	runMu sync.Mutex
	wg    sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period after a change. Non-positive values
// keep DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New returns a Watcher that calls run for path.
func New(path string, run RunFunc, opts ...Option) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		run:      run,
		debounce: DefaultDebounce,
		logger:   log.NoopLogger{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run calls the run function once, then again after every write to the
// watched file, until ctx is done. Errors from the run function are logged
// and do not stop the watcher. Run returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	w.logger.Info("watching case file", log.String("path", w.path))
	w.trigger(ctx)

	defer func() {
		w.mu.Lock()
		if w.timer != nil && w.timer.Stop() {
			w.wg.Done()
		}
		w.mu.Unlock()
		w.wg.Wait()
	}()

	base := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug("case file changed", log.String("op", event.Op.String()))
			w.schedule(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}

	w.wg.Add(1)
	w.timer = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()
		w.trigger(ctx)
	})
}

func (w *Watcher) trigger(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	w.runMu.Lock()
	defer w.runMu.Unlock()

	if err := w.run(ctx); err != nil {
		w.logger.Error("run failed", log.String("path", w.path), log.Err(err))
	}
}

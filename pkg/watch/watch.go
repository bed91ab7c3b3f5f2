// Package watch calls a function whenever a file changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/macropower/termprofile/pkg/log"
)

// DefaultDelay is how long a [Watcher] waits for a burst of events to settle.
const DefaultDelay = 100 * time.Millisecond

// Watcher watches a single file. The parent directory is watched, so files
// replaced by rename (as many editors save) keep being tracked.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	delay   time.Duration
}

// WatcherOpt is a functional option for configuring a [Watcher].
type WatcherOpt func(*Watcher)

// WithDelay sets the time to wait after the last event before calling the
// change function.
func WithDelay(d time.Duration) WatcherOpt {
	return func(w *Watcher) {
		w.delay = d
	}
}

// New creates a [Watcher] for path.
func New(path string, opts ...WatcherOpt) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("get absolute path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	err = fw.Add(filepath.Dir(abs))
	if err != nil {
		return nil, errors.Join(
			fmt.Errorf("add path to watcher: %w", err),
			fw.Close(),
		)
	}

	w := &Watcher{
		watcher: fw,
		path:    abs,
		delay:   DefaultDelay,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Run calls onChange after each change to the file, until ctx is canceled
// or onChange returns an error. Bursts of events within the delay are
// coalesced into one call. Run returns nil when ctx is canceled.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	logger := log.WithContext(ctx)

	timer := time.NewTimer(w.delay)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(evt.Name) != w.path {
				continue
			}
			// Ignore events that are not related to file content changes.
			if evt.Has(fsnotify.Chmod) {
				continue
			}

			logger.DebugContext(ctx, "file event", slog.String("event", evt.String()))
			timer.Reset(w.delay)

		case <-timer.C:
			err := onChange(ctx)
			if err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			logger.ErrorContext(ctx, "watch file", slog.String("path", w.path), slog.Any("error", err))
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	if err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}

	return nil
}

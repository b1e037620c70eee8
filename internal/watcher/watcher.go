// Package watcher reloads the embedding index when the record store changes
// on disk, so a finished offline pipeline run becomes visible to a running
// server without a restart.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ReloadFunc rebuilds the index snapshot and swaps it into the engine.
type ReloadFunc func(ctx context.Context) error

// Watcher watches the record-store database file and triggers a debounced
// reload after writes settle. It never mutates a snapshot in place.
type Watcher struct {
	path     string
	reload   ReloadFunc
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	done     chan struct{}
}

// New creates a watcher for the database at path.
func New(path string, reload ReloadFunc, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		path:     path,
		reload:   reload,
		debounce: debounce,
		watcher:  fw,
		logger:   logger,
		done:     make(chan struct{}),
	}, nil
}

// Start registers the watch and handles events on a background goroutine
// until Stop is called or ctx is done. The parent directory is watched so
// WAL sibling files (-wal, -shm) are seen too.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	go w.loop(ctx)
	return nil
}

// Stop stops event handling and closes the underlying watcher.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	base := filepath.Base(w.path)
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasPrefix(filepath.Base(ev.Name), base) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
		case <-timer.C:
			if err := w.reload(ctx); err != nil {
				w.logger.Error("index reload failed", zap.Error(err))
				continue
			}
			w.logger.Info("embedding index reloaded", zap.String("path", w.path))
		}
	}
}

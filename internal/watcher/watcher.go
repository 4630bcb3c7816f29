// Package watcher reports changes to a single file, coalescing bursts of
// filesystem events into one callback.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher watches one file. Editors often replace a file by renaming a
// temporary over it, so the parent directory is watched and events are
// filtered by name.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()
	fs       *fsnotify.Watcher
	log      zerolog.Logger

	mu    sync.Mutex
	timer *time.Timer

	done chan struct{}
	wg   sync.WaitGroup
}

// New creates a watcher for path. onChange runs on its own goroutine at
// most once per debounce window.
func New(path string, debounce time.Duration, onChange func(), log zerolog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve watch path: %w", err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		fs:       fs,
		log:      log.With().Str("component", "watcher").Str("path", abs).Logger(),
		done:     make(chan struct{}),
	}, nil
}

// Start begins delivering events
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.loop()
}

// Stop ends the watch and waits for the event loop to exit. A pending
// debounced callback is dropped.
func (w *Watcher) Stop() {
	select {
	case <-w.done:
		return
	default:
	}
	close(w.done)
	_ = w.fs.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.schedule()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	select {
	case <-w.done:
		return
	default:
	}
	w.log.Debug().Msg("file changed")
	w.onChange()
}

package bindings

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher reloads a binding file when it changes and re-applies it
// through a Binder. A file that fails to load leaves the previously
// applied set active.
type Watcher struct {
	watcher *fsnotify.Watcher
	binder  *Binder
	path    string
	log     zerolog.Logger

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatcherLogger sets the diagnostic logger. The default discards
// output.
func WithWatcherLogger(log zerolog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.log = log
	}
}

// Watch loads and applies a binding file, then watches it for changes.
// The containing directory is watched so editors that replace the file
// on save still trigger a reload.
func Watch(path string, binder *Binder, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving bindings path: %w", err)
	}

	set, err := Load(abs)
	if err != nil {
		return nil, err
	}
	binder.Apply(set)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		watcher: fw,
		binder:  binder,
		path:    abs,
		log:     zerolog.Nop(),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.watchLoop()
	return w, nil
}

// watchLoop reloads the binding file on write or create events.
func (w *Watcher) watchLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error().Err(err).Msg("bindings watcher error")
		}
	}
}

// reload re-applies the file, keeping the current set on failure.
func (w *Watcher) reload() {
	set, err := Load(w.path)
	if err != nil {
		w.log.Warn().Err(err).Str("path", w.path).Msg("bindings reload failed, keeping current set")
		return
	}
	w.binder.Apply(set)
	w.log.Info().Str("path", w.path).Int("bindings", set.Len()).Msg("bindings reloaded")
}

// Close stops watching. The applied bindings stay registered; use the
// binder to clear them.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

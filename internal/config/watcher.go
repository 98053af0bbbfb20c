package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watcherDebounce = 150 * time.Millisecond

// Watcher watches the settings file and reports reloaded settings after a
// short debounce, so editors that write in several steps trigger a single
// reload.
type Watcher struct {
	watcher    *fsnotify.Watcher
	configPath string
	onReload   func(UISettings)

	mu        sync.Mutex
	timer     *time.Timer
	closed    bool
	closeOnce sync.Once
}

// NewWatcher watches the directory containing configPath. onReload is
// called from a watcher goroutine with freshly loaded settings.
func NewWatcher(configPath string, onReload func(UISettings)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		watcher:    fw,
		configPath: filepath.Clean(configPath),
		onReload:   onReload,
	}
	// Watch the directory, not the file: editors often replace the file,
	// which would silently drop a file-level watch.
	if err := fw.Add(filepath.Dir(w.configPath)); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return w, nil
}

// Run processes watcher events until the watcher is closed.
func (w *Watcher) Run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.configPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Keep running; a transient error should not kill the watch.
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(watcherDebounce, func() {
		w.mu.Lock()
		closed := w.closed
		w.mu.Unlock()
		if closed || w.onReload == nil {
			return
		}
		w.onReload(LoadUISettings(w.configPath))
	})
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		if w.timer != nil {
			w.timer.Stop()
			w.timer = nil
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}

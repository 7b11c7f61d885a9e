package catalogfile

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const (
	debounceDelay   = 100 * time.Millisecond
	eventBufferSize = 8
)

// Watcher watches the directories containing catalog files and emits a
// single debounced event per burst of changes. Consumers reload the full
// catalog on each event; the watcher carries no payload.
type Watcher struct {
	watcher *fsnotify.Watcher
	events  chan struct{}
	log     zerolog.Logger

	mu       sync.Mutex
	debounce *time.Timer
	closed   bool

	wg sync.WaitGroup
}

// NewWatcher watches the parent directories of the given catalog paths.
func NewWatcher(paths []string, log zerolog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fsw,
		events:  make(chan struct{}, eventBufferSize),
		log:     log,
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Events returns the reload notification channel. It is closed by Close.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops watching and closes the event channel.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	close(w.events)
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("catalog watcher error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	ext := filepath.Ext(event.Name)
	if ext != ".yml" && ext != ".yaml" {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	// Editors produce bursts of writes; collapse them into one reload.
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.closed {
			return
		}
		select {
		case w.events <- struct{}{}:
		default: // consumer is behind; a pending event already forces a reload
		}
	})
}

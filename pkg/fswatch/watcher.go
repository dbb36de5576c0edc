package fswatch

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
)

const defaultDebounce = 150 * time.Millisecond

// listingOps change what a directory listing shows.
const listingOps = fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Watcher reports directories whose listing changed. Bursts of events for
// one directory are coalesced into a single call of onChange, which runs on
// a timer goroutine.
type Watcher struct {
	fw       *fsnotify.Watcher
	onChange func(dir string)
	debounce time.Duration
	logger   logr.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
	done   chan struct{}
}

type Option func(w *Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

func WithLogger(logger logr.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

var newFsnotifyWatcher = fsnotify.NewWatcher

func New(onChange func(dir string), options ...Option) (*Watcher, error) {
	fw, err := newFsnotifyWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fw:       fw,
		onChange: onChange,
		debounce: defaultDebounce,
		logger:   logr.Discard(),
		timers:   make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}
	for _, o := range options {
		o(w)
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Add(dir string) error {
	return w.fw.Add(dir)
}

// Remove stops watching dir. Directories that are not watched are ignored.
func (w *Watcher) Remove(dir string) error {
	err := w.fw.Remove(dir)
	if errors.Is(err, fsnotify.ErrNonExistentWatch) {
		return nil
	}
	return err
}

func (w *Watcher) WatchList() []string {
	return w.fw.WatchList()
}

func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for dir, t := range w.timers {
		t.Stop()
		delete(w.timers, dir)
	}
	w.mu.Unlock()
	err := w.fw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Op&listingOps == 0 {
				continue
			}
			w.schedule(filepath.Dir(event.Name))
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Error(err, "file system watcher failed")
		}
	}
}

func (w *Watcher) schedule(dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if t, ok := w.timers[dir]; ok {
		t.Reset(w.debounce)
		return
	}
	w.timers[dir] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, dir)
		closed := w.closed
		w.mu.Unlock()
		if !closed {
			w.logger.V(1).Info("directory changed", "dir", dir)
			w.onChange(dir)
		}
	})
}

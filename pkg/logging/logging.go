package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

var (
	osMkdirAll = os.MkdirAll
	osOpenFile = os.OpenFile
)

// New returns a logger writing one line per entry to w.
// Entries above verbosity are dropped.
func New(w io.Writer, verbosity int) logr.Logger {
	var mu sync.Mutex
	return funcr.New(func(prefix, args string) {
		mu.Lock()
		defer mu.Unlock()
		if prefix != "" {
			_, _ = fmt.Fprintf(w, "%s: %s\n", prefix, args)
		} else {
			_, _ = fmt.Fprintln(w, args)
		}
	}, funcr.Options{
		Verbosity:    verbosity,
		LogTimestamp: true,
	})
}

// Open creates a file logger. The terminal belongs to the UI, so with an
// empty path all entries are discarded.
func Open(path string, verbosity int) (logger logr.Logger, closeFunc func() error, err error) {
	noop := func() error { return nil }
	if path == "" {
		return logr.Discard(), noop, nil
	}
	if err = osMkdirAll(filepath.Dir(path), 0o755); err != nil {
		return logr.Discard(), noop, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := osOpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logr.Discard(), noop, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(f, verbosity).WithName("nfilej"), f.Close, nil
}

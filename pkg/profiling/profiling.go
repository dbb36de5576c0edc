// Package profiling writes CPU and heap profiles and serves net/http/pprof.
package profiling

import (
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof handlers
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/go-logr/logr"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile
	httpListenAndServe    = http.ListenAndServe
)

// DoCPUProfiling profiles the CPU into file until the returned func is called.
func DoCPUProfiling(file string) (stop func(), err error) {
	f, err := osCreate(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create CPU profile: %w", err)
	}
	if err = pprofStartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to start CPU profile: %w", err)
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}, nil
}

// DoMemProfiling returns a func that writes a heap profile to file,
// meant to be deferred until exit.
func DoMemProfiling(file string) func() error {
	return func() error {
		f, err := osCreate(file)
		if err != nil {
			return fmt.Errorf("failed to create memory profile: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		return writeHeap(f)
	}
}

func writeHeap(w io.Writer) error {
	if err := pprofWriteHeapProfile(w); err != nil {
		return fmt.Errorf("failed to write memory profile: %w", err)
	}
	return nil
}

// ServePprof starts the pprof HTTP server in the background.
func ServePprof(addr string, logger logr.Logger) {
	go func() {
		logger.Info("pprof server listening", "addr", addr)
		if err := httpListenAndServe(addr, nil); err != nil {
			logger.Error(err, "pprof server stopped", "addr", addr)
		}
	}()
}

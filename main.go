package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/nfilej/nfilej/pkg/logging"
	"github.com/nfilej/nfilej/pkg/nfconfig"
	"github.com/nfilej/nfilej/pkg/nfilej"
	"github.com/nfilej/nfilej/pkg/profiling"
	"github.com/rivo/tview"
)

var version = "dev"

var (
	osExit           = os.Exit
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	osExit(runMain(os.Args[1:]))
}

type application interface{ Run() error }

var newTviewApp = tview.NewApplication

var setupApp = nfilej.SetupApp

var run = func(app application) error {
	return app.Run()
}

func runMain(args []string) (exitCode int) {
	var cfg nfconfig.Config
	parser, err := kong.New(&cfg,
		kong.Name("nfilej"),
		kong.Description("Browse a directory tree and open files in your editor."),
		kong.Vars{"version": version},
		kong.Writers(stdout, stderr),
		kong.Exit(osExit),
	)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "nfilej: %v\n", err)
		return 1
	}
	if _, err = parser.Parse(args); err != nil {
		parser.Errorf("%s", err)
		return 1
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.Verbose)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "nfilej: %v\n", err)
		return 1
	}
	defer func() {
		_ = closeLog()
	}()

	if cfg.Pprof != "" {
		profiling.ServePprof(cfg.Pprof, logger)
	}
	if cfg.CPUProfile != "" {
		stopCPUProfiling, err := profiling.DoCPUProfiling(cfg.CPUProfile)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "nfilej: %v\n", err)
			return 1
		}
		defer stopCPUProfiling()
	}
	if cfg.MemProfile != "" {
		writeMemProfile := profiling.DoMemProfiling(cfg.MemProfile)
		defer func() {
			if err := writeMemProfile(); err != nil {
				logger.Error(err, "memory profile not written")
				_, _ = fmt.Fprintf(stderr, "nfilej: %v\n", err)
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error(fmt.Errorf("%v", r), "panic")
			_, _ = fmt.Fprintf(stderr, "Recovered from panic: %v\n", r)
			exitCode = 1
		}
	}()

	tvApp := newTviewApp()
	browser := setupApp(tvApp, &cfg, logger)
	defer func() {
		_ = browser.Close()
	}()

	if err = run(tvApp); err != nil {
		logger.Error(err, "application stopped with error")
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}

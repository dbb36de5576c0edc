package nfilej

import (
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/nfilej/nfilej/pkg/editor"
	"github.com/nfilej/nfilej/pkg/files/osfile"
	"github.com/nfilej/nfilej/pkg/fswatch"
	"github.com/nfilej/nfilej/pkg/gitutils"
	"github.com/nfilej/nfilej/pkg/nfconfig"
	"github.com/nfilej/nfilej/pkg/nfilej/uiapp"
	"github.com/rivo/tview"
)

var newFsWatcher = func(onChange func(dir string), logger logr.Logger) (DirWatcher, error) {
	return fswatch.New(onChange, fswatch.WithLogger(logger))
}

// SetupApp builds the browser described by cfg on top of app.
func SetupApp(app *tview.Application, cfg *nfconfig.Config, logger logr.Logger) *App {
	proxy := uiapp.NewApp(app)
	root := filepath.Clean(cfg.RootDir())
	o := Options{
		RootDir:    root,
		ViewOnly:   cfg.ViewOnly,
		ShowHidden: cfg.Hidden,
		Theme:      ParseTheme(cfg.Theme),
		Store:      osfile.NewStore(root),
		Logger:     logger,
	}
	if !cfg.ViewOnly {
		o.Launcher = editor.NewLauncher(cfg.EditorConfig(), proxy, editor.WithLogger(logger))
	}
	if cfg.Git {
		o.GitStatus = gitutils.DirStatus
	}
	if cfg.Watch {
		o.NewWatcher = func(onChange func(dir string)) (DirWatcher, error) {
			return newFsWatcher(onChange, logger)
		}
	}
	logger.V(1).Info("starting", "root", root, "viewOnly", cfg.ViewOnly, "theme", cfg.Theme)
	return NewApp(proxy, o)
}

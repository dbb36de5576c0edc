package nfilej

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/nfilej/nfilej/pkg/editor"
	"github.com/nfilej/nfilej/pkg/files"
	"github.com/nfilej/nfilej/pkg/fsutils"
	"github.com/nfilej/nfilej/pkg/nfilej/uiapp"
	"github.com/rivo/tview"
)

// Launcher opens a file in an external program while the UI is suspended.
type Launcher interface {
	Launch(targetPath string) *editor.Invocation
}

type Options struct {
	RootDir    string
	ViewOnly   bool
	ShowHidden bool
	Theme      Theme
	Store      files.Store
	// Launcher is not used in view only mode.
	Launcher Launcher
	// NewWatcher is optional, without it the tree is not refreshed on changes.
	NewWatcher func(onChange func(dir string)) (DirWatcher, error)
	GitStatus  GitStatusFunc
	Logger     logr.Logger
}

// App is the file browser. The theme belongs to the App and is
// applied to every primitive it owns.
type App struct {
	app    uiapp.App
	o      Options
	ctx    context.Context
	cancel context.CancelFunc

	layout  *tview.Flex
	tree    *Tree
	header  *header
	footer  *footer
	watcher DirWatcher

	theme Theme
}

func NewApp(app uiapp.App, o Options) *App {
	a := &App{
		app:   app,
		o:     o,
		theme: o.Theme,
	}
	a.ctx, a.cancel = context.WithCancel(context.Background())

	if o.NewWatcher != nil {
		watcher, err := o.NewWatcher(a.dirChanged)
		if err != nil {
			o.Logger.Error(err, "live refresh disabled")
		} else {
			a.watcher = watcher
		}
	}

	a.footer = newFooter(a.theme, a.menuItems())
	a.tree = newTree(a.ctx, app, o.Store, o.RootDir, treeOptions{
		showHidden: o.ShowHidden,
		theme:      a.theme,
		watcher:    a.watcher,
		gitStatus:  o.GitStatus,
		logger:     o.Logger,
	})
	a.tree.SetFileSelectedFunc(a.openFile)
	a.tree.searchChanged = a.footer.showSearch

	a.layout = tview.NewFlex().SetDirection(tview.FlexRow)
	if o.ViewOnly {
		a.tree.tv.SetBorder(true).
			SetTitle(" " + tview.Escape(fsutils.CollapseHome(o.RootDir)) + " ")
	} else {
		a.header = newHeader(a.theme)
		a.tree.nodeChanged = a.header.showNode
		a.header.showNode(refOf(a.tree.Root()))
		a.layout.AddItem(a.header, 1, 0, false)
	}
	a.layout.AddItem(a.tree.tv, 0, 1, true)
	a.layout.AddItem(a.footer, 1, 0, false)

	a.applyTheme()

	app.EnableMouse(true)
	app.SetInputCapture(a.inputCapture)
	app.SetRoot(a.layout, true)
	app.SetFocus(a.tree.tv)
	return a
}

func (a *App) menuItems() []menuItem {
	return []menuItem{
		{Region: "theme", HotKey: `^\`, Title: "Toggle dark mode", Action: a.ToggleTheme},
		{Region: "quit", HotKey: "q", Title: "Quit", Action: a.app.Stop},
		{Region: "find", HotKey: "/", Title: "Find", Action: a.startSearch},
	}
}

func (a *App) Tree() *Tree {
	return a.tree
}

func (a *App) Theme() Theme {
	return a.theme
}

func (a *App) Status() string {
	return a.footer.Status()
}

func (a *App) ToggleTheme() {
	a.theme = a.theme.Toggle()
	a.applyTheme()
}

func (a *App) applyTheme() {
	a.layout.SetBackgroundColor(a.theme.palette().Background)
	a.tree.SetTheme(a.theme)
	a.footer.SetTheme(a.theme)
	if a.header != nil {
		a.header.SetTheme(a.theme)
	}
}

func (a *App) startSearch() {
	a.app.SetFocus(a.tree.tv)
	a.tree.StartSearch()
}

func (a *App) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyCtrlBackslash:
		a.ToggleTheme()
		return nil
	case tcell.KeyRune:
		if event.Rune() == 'q' && !a.tree.Searching() {
			a.app.Stop()
			return nil
		}
	}
	return event
}

func (a *App) openFile(path string) {
	if a.o.ViewOnly || a.o.Launcher == nil {
		a.footer.SetStatus("Selected: " + fsutils.CollapseHome(path))
		return
	}
	inv := a.o.Launcher.Launch(path)
	if inv.Failed() {
		a.footer.SetError("Error opening editor: " + inv.Err.Error())
		return
	}
	a.footer.SetStatus(fmt.Sprintf("Closed %s (exit %d)", filepath.Base(path), inv.ExitStatus))
}

// dirChanged is called by the watcher from its own goroutine.
func (a *App) dirChanged(dir string) {
	a.app.QueueUpdateDraw(func() {
		a.tree.Reload(dir)
	})
}

// Close stops background work. The tview application is stopped by the caller.
func (a *App) Close() error {
	a.cancel()
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

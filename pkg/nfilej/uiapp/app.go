package uiapp

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// App is the part of *tview.Application the browser uses.
type App interface {
	Run() error
	Stop()
	QueueUpdateDraw(f func())
	SetFocus(p tview.Primitive)
	SetRoot(root tview.Primitive, fullscreen bool)
	EnableMouse(bool)
	SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey)
	// Suspend releases the terminal while f runs, see tview.Application.Suspend.
	Suspend(f func()) bool
}

type AppMethod func(a *appProxy)

type (
	UpdateDrawQueuer func(f func())
	Focuser          func(p tview.Primitive)
	RootSetter       func(root tview.Primitive, fullscreen bool)
	InputCapturer    func(capture func(event *tcell.EventKey) *tcell.EventKey)
	Suspender        func(f func()) bool
)

func NewApp(app *tview.Application, o ...AppMethod) App {
	a := &appProxy{}
	if app != nil {
		a.queueUpdateDraw = func(f func()) {
			_ = app.QueueUpdateDraw(f)
		}
		a.setFocus = func(p tview.Primitive) {
			_ = app.SetFocus(p)
		}
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			_ = app.SetRoot(root, fullscreen)
		}
		a.enableMouse = func(b bool) {
			_ = app.EnableMouse(b)
		}
		a.setInputCapture = func(capture func(event *tcell.EventKey) *tcell.EventKey) {
			_ = app.SetInputCapture(capture)
		}
		a.suspend = app.Suspend
		a.run = app.Run
		a.stop = app.Stop
	}
	for _, m := range o {
		m(a)
	}
	return a
}

func WithQueueUpdateDraw(queueUpdateDraw UpdateDrawQueuer) AppMethod {
	return func(a *appProxy) {
		a.queueUpdateDraw = queueUpdateDraw
	}
}

func WithSetFocus(setFocus Focuser) AppMethod {
	return func(a *appProxy) {
		a.setFocus = setFocus
	}
}

func WithSetRoot(setRoot RootSetter) AppMethod {
	return func(a *appProxy) {
		a.setRoot = setRoot
	}
}

func WithEnableMouse(enableMouse func(bool)) AppMethod {
	return func(a *appProxy) {
		a.enableMouse = enableMouse
	}
}

func WithSetInputCapture(setInputCapture InputCapturer) AppMethod {
	return func(a *appProxy) {
		a.setInputCapture = setInputCapture
	}
}

func WithSuspend(suspend Suspender) AppMethod {
	return func(a *appProxy) {
		a.suspend = suspend
	}
}

func WithRun(run func() error) AppMethod {
	return func(a *appProxy) {
		a.run = run
	}
}

func WithStop(stop func()) AppMethod {
	return func(a *appProxy) {
		a.stop = stop
	}
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	queueUpdateDraw UpdateDrawQueuer
	setFocus        Focuser
	setRoot         RootSetter
	enableMouse     func(bool)
	setInputCapture InputCapturer
	suspend         Suspender
	run             func() error
	stop            func()
}

func (a appProxy) EnableMouse(b bool) {
	a.enableMouse(b)
}

func (a appProxy) QueueUpdateDraw(f func()) {
	a.queueUpdateDraw(f)
}

func (a appProxy) SetFocus(p tview.Primitive) {
	a.setFocus(p)
}

func (a appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	a.setRoot(root, fullscreen)
}

func (a appProxy) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	a.setInputCapture(capture)
}

func (a appProxy) Suspend(f func()) bool {
	return a.suspend(f)
}

func (a appProxy) Run() error {
	return a.run()
}

func (a appProxy) Stop() {
	a.stop()
}

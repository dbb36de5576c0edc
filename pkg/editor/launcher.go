package editor

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/go-logr/logr"
)

// Suspender gives up the terminal for the duration of f.
// *tview.Application satisfies it.
type Suspender interface {
	Suspend(f func()) bool
}

var runCmd = func(cmd *exec.Cmd) (exitStatus int, err error) {
	err = cmd.Run()
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode(), err
	}
	return -1, err
}

type Launcher struct {
	cfg     Config
	display Suspender
	logger  logr.Logger
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	diag    io.Writer
}

type Option func(l *Launcher)

func WithLogger(logger logr.Logger) Option {
	return func(l *Launcher) {
		l.logger = logger
	}
}

// WithStdio overrides the standard streams handed to the child process.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(l *Launcher) {
		l.stdin = stdin
		l.stdout = stdout
		l.stderr = stderr
	}
}

// WithDiagnostics sets where failure messages are printed.
func WithDiagnostics(w io.Writer) Option {
	return func(l *Launcher) {
		l.diag = w
	}
}

func NewLauncher(cfg Config, display Suspender, options ...Option) *Launcher {
	l := &Launcher{
		cfg:     cfg,
		display: display,
		logger:  logr.Discard(),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		diag:    os.Stderr,
	}
	for _, o := range options {
		o(l)
	}
	return l
}

func (l *Launcher) Config() Config {
	return l.cfg
}

// Launch suspends the display, runs the editor for targetPath in the
// foreground and blocks until it exits. The display is resumed on every
// path. Failures are reported and recorded on the returned invocation,
// never returned as an error.
func (l *Launcher) Launch(targetPath string) *Invocation {
	inv := newInvocation(l.cfg, targetPath)
	logger := l.logger.WithValues("path", targetPath, "command", inv.Command.String())
	logger.V(1).Info("launching editor")

	if suspended := l.display.Suspend(func() { l.execute(inv) }); !suspended {
		inv.fail(ErrDisplayBusy)
		logger.Error(inv.Err, "editor not started")
		return inv
	}
	if inv.Failed() {
		logger.Error(inv.Err, "editor failed", "exitStatus", inv.ExitStatus)
	} else {
		logger.V(1).Info("editor exited", "exitStatus", inv.ExitStatus)
	}
	return inv
}

// execute runs while the terminal is released.
func (l *Launcher) execute(inv *Invocation) {
	defer func() {
		if r := recover(); r != nil {
			inv.fail(fmt.Errorf("editor launch panicked: %v", r))
		}
		if inv.Failed() {
			_, _ = fmt.Fprintf(l.diag, "Error opening editor: %v\n", inv.Err)
		}
	}()
	cmd := l.newCmd(inv.Command)
	exitStatus, err := runCmd(cmd)
	inv.ExitStatus = exitStatus
	if err != nil {
		inv.fail(err)
	}
}

func (l *Launcher) newCmd(c Command) *exec.Cmd {
	cmd := exec.Command(c.Name, c.Args...)
	if c.Shell != "" {
		setRawCmdLine(cmd, c)
	}
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr
	return cmd
}

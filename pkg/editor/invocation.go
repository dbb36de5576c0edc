package editor

import (
	"errors"
	"fmt"
)

// ErrDisplayBusy is reported when the terminal display is already suspended.
var ErrDisplayBusy = errors.New("terminal display is already suspended")

// Invocation is a single edit session. It lives from a file selection
// until the child process exits.
type Invocation struct {
	TargetPath string
	Command    Command
	// ExitStatus is -1 until the child exits, and stays -1 if it never ran.
	ExitStatus int
	// Err is nil on success, a *ChildProcessFailure otherwise.
	Err error
}

func newInvocation(cfg Config, targetPath string) *Invocation {
	return &Invocation{
		TargetPath: targetPath,
		Command:    Resolve(cfg, targetPath),
		ExitStatus: -1,
	}
}

func (inv *Invocation) Failed() bool {
	return inv.Err != nil
}

func (inv *Invocation) fail(err error) {
	inv.Err = &ChildProcessFailure{
		Command:    inv.Command,
		ExitStatus: inv.ExitStatus,
		Err:        err,
	}
}

// ChildProcessFailure covers a missing executable, a non-zero exit and
// OS level launch errors.
type ChildProcessFailure struct {
	Command    Command
	ExitStatus int
	Err        error
}

func (e *ChildProcessFailure) Error() string {
	return fmt.Sprintf("%s: %v", e.Command.String(), e.Err)
}

func (e *ChildProcessFailure) Unwrap() error {
	return e.Err
}

//go:build windows

package editor

import (
	"os/exec"
	"syscall"
)

// setRawCmdLine hands the shell line to cmd.exe untouched,
// exec.Command would otherwise escape the embedded quotes.
func setRawCmdLine(cmd *exec.Cmd, c Command) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: c.Name + " /C " + c.Shell,
	}
}

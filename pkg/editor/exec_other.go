//go:build !windows

package editor

import "os/exec"

func setRawCmdLine(*exec.Cmd, Command) {}

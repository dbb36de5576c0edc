package editor

import (
	"fmt"
	"strings"
)

// FallbackEditor is used on POSIX platforms when no editor is configured.
const FallbackEditor = "nano"

const windowsPlatform = "windows"

// Config is resolved once at startup and never re-reads the environment.
type Config struct {
	// Platform is a GOOS value, e.g. "linux" or "windows".
	Platform string
	// EditorOverride names the editor executable. Empty means unset.
	EditorOverride string
}

// Command is a resolved editor command.
// Shell is set when the command is a shell command line that must reach
// the OS verbatim.
type Command struct {
	Name  string
	Args  []string
	Shell string
}

func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Name)
	return append(argv, c.Args...)
}

func (c Command) String() string {
	if c.Shell != "" {
		return c.Shell
	}
	return strings.Join(c.Argv(), " ")
}

// Resolve builds the platform specific command that opens targetPath.
// The path is passed through as is, existence and permissions are left
// to the child process.
func Resolve(cfg Config, targetPath string) Command {
	if cfg.Platform == windowsPlatform {
		shell := fmt.Sprintf(`start /wait "" "%s"`, targetPath)
		return Command{
			Name:  "cmd",
			Args:  []string{"/C", shell},
			Shell: shell,
		}
	}
	name := cfg.EditorOverride
	if name == "" {
		name = FallbackEditor
	}
	return Command{
		Name: name,
		Args: []string{targetPath},
	}
}

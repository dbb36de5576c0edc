package nfconfig

import (
	"fmt"
	"runtime"

	"github.com/alecthomas/kong"
	"github.com/nfilej/nfilej/pkg/editor"
	"github.com/nfilej/nfilej/pkg/fsutils"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config is parsed once at startup from flags and environment.
type Config struct {
	Version kong.VersionFlag `help:"Show version information"`

	Root     string `help:"Directory shown as the tree root" default:"~" placeholder:"DIR"`
	Editor   string `help:"Editor used to open files on POSIX systems" env:"EDITOR" placeholder:"CMD"`
	Theme    string `help:"Initial theme" enum:"dark,light" default:"dark"`
	ViewOnly bool   `help:"Browse only, selecting a file shows its path instead of editing it"`
	Hidden   bool   `help:"Show dot-files" default:"true" negatable:""`
	Git      bool   `help:"Mark files changed in git work trees" default:"true" negatable:""`
	Watch    bool   `help:"Refresh expanded directories when they change on disk" default:"true" negatable:""`

	LogFile string `help:"Write logs to this file" env:"NFILEJ_LOG_FILE" type:"path"`
	Verbose int    `help:"Log verbosity" short:"v" type:"counter"`

	CPUProfile string `name:"cpuprofile" help:"Write cpu profile to file" type:"path"`
	MemProfile string `name:"memprofile" help:"Write memory profile to file" type:"path"`
	Pprof      string `help:"Start pprof http server on address (e.g. localhost:6060)"`
}

var goos = runtime.GOOS

// RootDir is the tree root with a leading ~ expanded.
func (c *Config) RootDir() string {
	return fsutils.ExpandHome(c.Root)
}

func (c *Config) Platform() string {
	return goos
}

func (c *Config) EditorConfig() editor.Config {
	return editor.Config{
		Platform:       c.Platform(),
		EditorOverride: c.Editor,
	}
}

// Validate is called by kong after parsing.
func (c *Config) Validate() error {
	root := c.RootDir()
	exists, err := fsutils.DirExists(root)
	if err != nil {
		return fmt.Errorf("failed to check root directory: %w", err)
	}
	if !exists {
		return fmt.Errorf("root directory does not exist: %s", root)
	}
	return nil
}

package files

import (
	"context"
	"os"
	"path/filepath"
)

// DirContext is a directory of a store together with its loaded children.
type DirContext struct {
	store    Store
	path     string
	children []os.DirEntry
	loaded   bool
	err      error
}

func NewDirContext(store Store, path string) *DirContext {
	return &DirContext{
		store: store,
		path:  path,
	}
}

func (c *DirContext) Store() Store {
	return c.store
}

func (c *DirContext) Path() string {
	return c.path
}

func (c *DirContext) String() string {
	return c.path
}

func (c *DirContext) Name() string {
	if c.path == "" {
		return ""
	}
	return filepath.Base(c.path)
}

// ChildPath joins name to the directory path.
func (c *DirContext) ChildPath(name string) string {
	return filepath.Join(c.path, name)
}

func (c *DirContext) Children() []os.DirEntry {
	return c.children
}

func (c *DirContext) Loaded() bool {
	return c.loaded
}

// Err is the error of the last Load.
func (c *DirContext) Err() error {
	return c.err
}

// Load reads and sorts the directory children.
// On error the previous children are dropped.
func (c *DirContext) Load(ctx context.Context) error {
	entries, err := c.store.ReadDir(ctx, c.path)
	c.loaded = true
	c.err = err
	if err != nil {
		c.children = nil
		return err
	}
	SortEntries(entries)
	c.children = entries
	return nil
}

package files

import (
	"io/fs"
	"os"
	"time"
)

var _ os.DirEntry = (*Entry)(nil)
var _ os.FileInfo = (*Entry)(nil)

// Entry is an in-memory directory entry, for stores that do not
// read from the local file system.
type Entry struct {
	name    string
	isDir   bool
	size    int64
	modTime time.Time
}

type EntryOption func(e *Entry)

func WithSize(size int64) EntryOption {
	return func(e *Entry) {
		e.size = size
	}
}

func WithModTime(t time.Time) EntryOption {
	return func(e *Entry) {
		e.modTime = t
	}
}

func NewEntry(name string, isDir bool, o ...EntryOption) *Entry {
	e := &Entry{name: name, isDir: isDir}
	for _, opt := range o {
		opt(e)
	}
	return e
}

func (e *Entry) Name() string { return e.name }
func (e *Entry) IsDir() bool  { return e.isDir }
func (e *Entry) Size() int64  { return e.size }
func (e *Entry) Sys() any     { return nil }

func (e *Entry) ModTime() time.Time { return e.modTime }

func (e *Entry) Type() fs.FileMode {
	if e.isDir {
		return fs.ModeDir
	}
	return 0
}

func (e *Entry) Mode() fs.FileMode {
	if e.isDir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}

func (e *Entry) Info() (fs.FileInfo, error) {
	return e, nil
}

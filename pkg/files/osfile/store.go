package osfile

import (
	"context"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/nfilej/nfilej/pkg/files"
)

var osReadDir = os.ReadDir
var osStat = os.Stat
var osHostname = os.Hostname

var _ files.Store = (*Store)(nil)

// Store lists directories of the local file system.
type Store struct {
	title string
	root  string
}

func (s Store) RootURL() url.URL {
	return url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(s.root),
	}
}

func (s Store) RootTitle() string {
	return s.title
}

// ReadDir lists name. Symlinks to directories are reported as directories
// so that they can be expanded in the tree.
func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := osReadDir(name)
	if err != nil {
		return entries, err
	}
	for i, entry := range entries {
		if entry.Type()&fs.ModeSymlink == 0 {
			continue
		}
		info, err := osStat(filepath.Join(name, entry.Name()))
		if err != nil || !info.IsDir() {
			continue
		}
		entries[i] = fs.FileInfoToDirEntry(info)
	}
	return entries, nil
}

func NewStore(root string) *Store {
	if root == "" {
		root = string(filepath.Separator)
	}
	store := Store{root: root}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	return &store
}

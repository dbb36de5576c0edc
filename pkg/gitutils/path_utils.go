package gitutils

import (
	"os"
	"path/filepath"
)

var osStat = os.Stat

// RepositoryRoot returns the work tree root containing dirPath,
// or an empty string when dirPath is not inside a git work tree.
func RepositoryRoot(dirPath string) string {
	dirPath, err := filepathAbs(dirPath)
	if err != nil {
		return ""
	}
	for {
		// .git is a file in linked work trees
		if _, err := osStat(filepath.Join(dirPath, ".git")); err == nil {
			return dirPath
		}
		parent := filepath.Dir(dirPath)
		if parent == dirPath {
			return ""
		}
		dirPath = parent
	}
}

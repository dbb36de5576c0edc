package gitutils

import (
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

var (
	filepathAbs = filepath.Abs
	filepathRel = filepath.Rel

	gitPlainOpen = git.PlainOpen

	repoWorktree = func(repo *git.Repository) (*git.Worktree, error) {
		return repo.Worktree()
	}
	worktreeStatus = func(wt *git.Worktree) (git.Status, error) {
		return wt.Status()
	}
)

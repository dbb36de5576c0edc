package gitutils

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5"
)

var repoLocks sync.Map

func getRepoLock(repoRoot string) *sync.Mutex {
	lock, _ := repoLocks.LoadOrStore(repoRoot, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// DirStatus returns the git status of every changed child of dir, keyed by
// child name. A child directory gets Untracked when everything changed
// below it is untracked and Modified otherwise.
// It returns nil when dir is not inside a work tree.
func DirStatus(ctx context.Context, dir string) (map[string]git.StatusCode, error) {
	repoRoot := RepositoryRoot(dir)
	if repoRoot == "" {
		return nil, nil
	}

	// go-git status walks the whole work tree, one scan per repo at a time
	lock := getRepoLock(repoRoot)
	lock.Lock()
	defer lock.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo, err := gitPlainOpen(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository %s: %w", repoRoot, err)
	}
	wt, err := repoWorktree(repo)
	if err != nil {
		return nil, fmt.Errorf("failed to get work tree of %s: %w", repoRoot, err)
	}
	status, err := worktreeStatus(wt)
	if err != nil {
		return nil, fmt.Errorf("failed to get git status of %s: %w", repoRoot, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absDir, err := filepathAbs(dir)
	if err != nil {
		return nil, err
	}
	rel, err := filepathRel(repoRoot, absDir)
	if err != nil {
		return nil, err
	}
	prefix := ""
	if rel = filepath.ToSlash(rel); rel != "." {
		prefix = rel + "/"
	}

	result := make(map[string]git.StatusCode)
	for filePath, fileStatus := range status {
		rest, ok := strings.CutPrefix(filePath, prefix)
		if !ok {
			continue
		}
		code := StatusCode(fileStatus)
		if code == git.Unmodified {
			continue
		}
		name, _, nested := strings.Cut(rest, "/")
		if !nested {
			result[name] = code
			continue
		}
		if prev, seen := result[name]; !seen || (prev == git.Untracked && code != git.Untracked) {
			if code != git.Untracked {
				code = git.Modified
			}
			result[name] = code
		}
	}
	return result, nil
}

// StatusCode folds the staging and work tree codes into one,
// preferring the work tree.
func StatusCode(s *git.FileStatus) git.StatusCode {
	if s == nil {
		return git.Unmodified
	}
	if s.Worktree != git.Unmodified {
		return s.Worktree
	}
	return s.Staging
}

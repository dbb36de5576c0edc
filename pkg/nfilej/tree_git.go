package nfilej

import (
	"github.com/go-git/go-git/v5"
	"github.com/rivo/tview"
)

func (t *Tree) refreshGitStatus(node *tview.TreeNode) {
	if t.gitStatus == nil {
		return
	}
	dir := refOf(node).path
	ctx := t.ctx
	t.goAsync(func() {
		status, err := t.gitStatus(ctx, dir)
		if err != nil {
			t.logger.V(1).Info("no git status", "dir", dir, "reason", err.Error())
			return
		}
		if status == nil {
			return
		}
		t.app.QueueUpdateDraw(func() {
			t.applyGitStatus(dir, status)
		})
	})
}

func (t *Tree) applyGitStatus(dir string, status map[string]git.StatusCode) {
	node, ok := t.dirNodes[dir]
	if !ok {
		return
	}
	for _, child := range node.GetChildren() {
		ref := refOf(child)
		if ref == nil {
			continue
		}
		if code := status[ref.name]; code != ref.git {
			ref.git = code
			t.render(child)
		}
	}
}

func gitMarker(code git.StatusCode) string {
	switch code {
	case git.Modified:
		return "[yellow]M[-]"
	case git.Added:
		return "[green]A[-]"
	case git.Deleted:
		return "[red]D[-]"
	case git.Renamed, git.Copied:
		return "[blue]R[-]"
	case git.Untracked:
		return "[green]?[-]"
	case git.UpdatedButUnmerged:
		return "[red]U[-]"
	default:
		return ""
	}
}

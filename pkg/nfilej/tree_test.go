package nfilej

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTree(t *testing.T) {
	t.Run("hidden_files_filtered", func(t *testing.T) {
		tr := newTestTree(sampleStore(), treeOptions{})
		root := tr.Root()
		assert.True(t, root.IsExpanded())
		assert.Equal(t, openDirEmoji+testRoot, root.GetText())
		assert.Equal(t, []string{"docs", "projects", "main.go", "notes.txt"}, childNames(root))
		assert.Same(t, root, tr.CurrentNode())
	})
	t.Run("hidden_files_shown", func(t *testing.T) {
		tr := newTestTree(sampleStore(), treeOptions{showHidden: true})
		names := childNames(tr.Root())
		assert.Len(t, names, 5)
		assert.Contains(t, names, ".profile")
		assert.Equal(t, []string{"docs", "projects"}, names[:2])
	})
}

func TestTree_render(t *testing.T) {
	tr := newTestTree(sampleStore(), treeOptions{})
	root := tr.Root()
	p := ThemeDark.palette()

	docs := childNode(root, "docs")
	assert.Equal(t, dirEmoji+"docs", docs.GetText())
	assert.Equal(t, p.DirColor, docs.GetColor())

	mainGo := childNode(root, "main.go")
	assert.Equal(t, "main.go", mainGo.GetText())
	assert.Equal(t, fileColor("main.go"), mainGo.GetColor())
	assert.Equal(t, int64(100), refOf(mainGo).size)

	tr.SetTheme(ThemeLight)
	light := ThemeLight.palette()
	assert.Equal(t, light.DirColor, docs.GetColor())
	assert.Equal(t, light.Foreground, mainGo.GetColor())
}

func TestTree_selected(t *testing.T) {
	store := sampleStore()
	tr := newTestTree(store, treeOptions{})
	root := tr.Root()

	var selectedPath string
	tr.SetFileSelectedFunc(func(path string) {
		selectedPath = path
	})

	t.Run("file", func(t *testing.T) {
		tr.selected(childNode(root, "main.go"))
		assert.Equal(t, testPath("main.go"), selectedPath)
	})

	t.Run("dir_toggles", func(t *testing.T) {
		selectedPath = ""
		docs := childNode(root, "docs")
		tr.selected(docs)
		assert.True(t, docs.IsExpanded())
		assert.Equal(t, openDirEmoji+"docs", docs.GetText())
		assert.Equal(t, []string{"readme.txt", "report.pdf"}, childNames(docs))

		tr.selected(docs)
		assert.False(t, docs.IsExpanded())
		assert.Equal(t, dirEmoji+"docs", docs.GetText())

		tr.selected(docs)
		assert.True(t, docs.IsExpanded())
		assert.Equal(t, 1, store.readCount(testPath("docs")), "children are loaded once")
		assert.Empty(t, selectedPath)
	})

	t.Run("no_func", func(t *testing.T) {
		tr.SetFileSelectedFunc(nil)
		assert.NotPanics(t, func() {
			tr.selected(childNode(root, "notes.txt"))
		})
	})
}

func TestTree_unreadableDir(t *testing.T) {
	store := sampleStore()
	store.fail(testPath("docs"), errors.New("permission denied"))
	tr := newTestTree(store, treeOptions{})
	docs := childNode(tr.Root(), "docs")

	tr.selected(docs)
	assert.Equal(t, dirEmoji+"docs: permission denied", docs.GetText())
	assert.Equal(t, ThemeDark.palette().ErrorColor, docs.GetColor())
	assert.Empty(t, docs.GetChildren())

	store.fail(testPath("docs"), nil)
	tr.Reload(testPath("docs"))
	assert.Equal(t, []string{"readme.txt", "report.pdf"}, childNames(docs))
	assert.Equal(t, openDirEmoji+"docs", docs.GetText())
}

func TestTree_unreadableRoot(t *testing.T) {
	store := newMemStore()
	store.fail(testRoot, errors.New("no access"))
	tr := newTestTree(store, treeOptions{})
	assert.Contains(t, tr.Root().GetText(), "no access")
	assert.Empty(t, tr.Root().GetChildren())
}

func TestTree_Reload(t *testing.T) {
	store := sampleStore()
	watcher := newFakeWatcher()
	tr := newTestTree(store, treeOptions{watcher: watcher})
	root := tr.Root()

	projects := childNode(root, "projects")
	tr.expand(projects)
	tr.expand(childNode(projects, "nfilej"))
	docs := childNode(root, "docs")
	tr.expand(docs)
	tr.tv.SetCurrentNode(childNode(docs, "readme.txt"))

	store.set(testRoot,
		dir("projects"),
		file("main.go", 100),
		file("new.txt", 5),
		file("notes.txt", 2048),
	)
	tr.Reload(testRoot)

	assert.Equal(t, []string{"projects", "main.go", "new.txt", "notes.txt"}, childNames(root))
	assert.Same(t, projects, childNode(root, "projects"), "surviving nodes are reused")
	assert.True(t, projects.IsExpanded())
	assert.True(t, childNode(projects, "nfilej").IsExpanded())

	assert.NotContains(t, tr.dirNodes, testPath("docs"))
	assert.False(t, watcher.watched[testPath("docs")])
	assert.True(t, watcher.watched[testPath("projects", "nfilej")])
	assert.Same(t, root, tr.CurrentNode(), "cursor on a removed node moves to the reloaded dir")

	t.Run("unknown_dir", func(t *testing.T) {
		assert.NotPanics(t, func() {
			tr.Reload(testPath("missing"))
		})
	})
}

func TestTree_watch(t *testing.T) {
	watcher := newFakeWatcher()
	tr := newTestTree(sampleStore(), treeOptions{watcher: watcher})
	root := tr.Root()
	assert.Equal(t, []string{testRoot}, watcher.added)

	projects := childNode(root, "projects")
	tr.expand(projects)
	tr.expand(childNode(projects, "nfilej"))
	assert.True(t, watcher.watched[testPath("projects", "nfilej")])

	tr.collapse(projects)
	assert.ElementsMatch(t, []string{testPath("projects"), testPath("projects", "nfilej")}, watcher.removed)
	assert.Equal(t, map[string]bool{testRoot: true}, watcher.watched)
}

func TestTree_gitStatus(t *testing.T) {
	tr := newTestTree(sampleStore(), treeOptions{})
	tr.goAsync = func(f func()) { f() }

	status := map[string]git.StatusCode{
		"main.go":   git.Modified,
		"notes.txt": git.Untracked,
		"projects":  git.Modified,
	}
	var statusErr error
	var requested []string
	tr.gitStatus = func(_ context.Context, dir string) (map[string]git.StatusCode, error) {
		requested = append(requested, dir)
		return status, statusErr
	}

	tr.Reload(testRoot)
	root := tr.Root()
	assert.Equal(t, []string{testRoot}, requested)
	assert.Equal(t, "main.go [yellow]M[-]", childNode(root, "main.go").GetText())
	assert.Equal(t, "notes.txt [green]?[-]", childNode(root, "notes.txt").GetText())
	assert.Equal(t, dirEmoji+"projects [yellow]M[-]", childNode(root, "projects").GetText())
	assert.Equal(t, dirEmoji+"docs", childNode(root, "docs").GetText())

	t.Run("cleared", func(t *testing.T) {
		status = map[string]git.StatusCode{}
		tr.Reload(testRoot)
		assert.Equal(t, "main.go", childNode(root, "main.go").GetText())
	})

	t.Run("error_ignored", func(t *testing.T) {
		status = map[string]git.StatusCode{"main.go": git.Added}
		statusErr = errors.New("broken index")
		tr.Reload(testRoot)
		assert.Equal(t, "main.go", childNode(root, "main.go").GetText())
	})

	t.Run("not_a_repo", func(t *testing.T) {
		status, statusErr = nil, nil
		assert.NotPanics(t, func() {
			tr.Reload(testRoot)
		})
	})
}

func TestGitMarker(t *testing.T) {
	tests := []struct {
		code     git.StatusCode
		expected string
	}{
		{git.Modified, "[yellow]M[-]"},
		{git.Added, "[green]A[-]"},
		{git.Deleted, "[red]D[-]"},
		{git.Renamed, "[blue]R[-]"},
		{git.Copied, "[blue]R[-]"},
		{git.Untracked, "[green]?[-]"},
		{git.UpdatedButUnmerged, "[red]U[-]"},
		{git.Unmodified, ""},
		{0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, gitMarker(tt.code), "code %q", tt.code)
	}
}

func TestTree_inputCapture_navigation(t *testing.T) {
	tr := newTestTree(sampleStore(), treeOptions{})
	root := tr.Root()

	var changed []string
	tr.nodeChanged = func(ref *nodeRef) {
		changed = append(changed, ref.name)
	}

	docs := childNode(root, "docs")
	tr.tv.SetCurrentNode(docs)

	require.Nil(t, tr.inputCapture(key(tcell.KeyRight)))
	assert.True(t, docs.IsExpanded())

	require.Nil(t, tr.inputCapture(key(tcell.KeyRight)))
	assert.Equal(t, "readme.txt", refOf(tr.CurrentNode()).name)

	assert.NotNil(t, tr.inputCapture(key(tcell.KeyRight)), "right on a file is not handled")

	require.Nil(t, tr.inputCapture(key(tcell.KeyLeft)))
	assert.Same(t, docs, tr.CurrentNode())

	require.Nil(t, tr.inputCapture(key(tcell.KeyLeft)))
	assert.False(t, docs.IsExpanded())
	assert.Same(t, docs, tr.CurrentNode())

	require.Nil(t, tr.inputCapture(key(tcell.KeyLeft)))
	assert.Same(t, root, tr.CurrentNode())

	assert.Equal(t, []string{"readme.txt", "docs", testRoot}, changed)

	down := key(tcell.KeyDown)
	assert.Same(t, down, tr.inputCapture(down))
}

package nfilej

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-logr/logr"
	"github.com/nfilej/nfilej/pkg/files"
	"github.com/nfilej/nfilej/pkg/fsutils"
	"github.com/rivo/tview"
)

const (
	dirEmoji     = "📁"
	openDirEmoji = "📂"
)

// nodeRef is the reference of every tree node.
type nodeRef struct {
	name   string
	path   string
	isDir  bool
	size   int64
	dir    *files.DirContext
	parent *tview.TreeNode
	git    git.StatusCode
}

func refOf(node *tview.TreeNode) *nodeRef {
	if node == nil {
		return nil
	}
	ref, _ := node.GetReference().(*nodeRef)
	return ref
}

// DirWatcher reports changes in the directories it was given.
type DirWatcher interface {
	Add(dir string) error
	Remove(dir string) error
	Close() error
}

// GitStatusFunc returns status codes of the entries of dir by name,
// nil when dir is not inside a work tree.
type GitStatusFunc func(ctx context.Context, dir string) (map[string]git.StatusCode, error)

// Tree lists a directory hierarchy. Directories are loaded lazily on first
// expansion. Selecting a file calls the file selected func.
type Tree struct {
	tv       *tview.TreeView
	rootNode *tview.TreeNode
	store    files.Store
	app      interface{ QueueUpdateDraw(f func()) }
	ctx      context.Context
	logger   logr.Logger

	showHidden bool
	theme      Theme

	watcher   DirWatcher
	gitStatus GitStatusFunc
	// goAsync runs background work, tests replace it to run inline
	goAsync func(f func())

	// dirNodes holds every loaded directory node by path
	dirNodes map[string]*tview.TreeNode

	searchActive  bool
	searchPattern string

	fileSelected  func(path string)
	nodeChanged   func(ref *nodeRef)
	searchChanged func(active bool, pattern string)
}

type treeOptions struct {
	showHidden bool
	theme      Theme
	watcher    DirWatcher
	gitStatus  GitStatusFunc
	logger     logr.Logger
}

func newTree(ctx context.Context, app interface{ QueueUpdateDraw(f func()) }, store files.Store, rootPath string, o treeOptions) *Tree {
	t := &Tree{
		tv:         tview.NewTreeView(),
		store:      store,
		app:        app,
		ctx:        ctx,
		logger:     o.logger,
		showHidden: o.showHidden,
		theme:      o.theme,
		watcher:    o.watcher,
		gitStatus:  o.gitStatus,
		goAsync:    func(f func()) { go f() },
		dirNodes:   make(map[string]*tview.TreeNode),
	}
	t.rootNode = tview.NewTreeNode(fsutils.CollapseHome(rootPath)).
		SetReference(&nodeRef{
			name:  rootPath,
			path:  rootPath,
			isDir: true,
			dir:   files.NewDirContext(store, rootPath),
		})
	t.tv.SetRoot(t.rootNode).SetCurrentNode(t.rootNode)
	t.tv.SetSelectedFunc(t.selected)
	t.tv.SetChangedFunc(t.changed)
	t.tv.SetInputCapture(t.inputCapture)
	t.expand(t.rootNode)
	return t
}

func (t *Tree) Root() *tview.TreeNode {
	return t.rootNode
}

func (t *Tree) Primitive() *tview.TreeView {
	return t.tv
}

func (t *Tree) CurrentNode() *tview.TreeNode {
	return t.tv.GetCurrentNode()
}

func (t *Tree) SetFileSelectedFunc(f func(path string)) {
	t.fileSelected = f
}

func (t *Tree) selected(node *tview.TreeNode) {
	ref := refOf(node)
	if ref == nil {
		return
	}
	if ref.isDir {
		t.toggle(node)
		return
	}
	if t.fileSelected != nil {
		t.fileSelected(ref.path)
	}
}

func (t *Tree) changed(node *tview.TreeNode) {
	if ref := refOf(node); ref != nil && t.nodeChanged != nil {
		t.nodeChanged(ref)
	}
}

func (t *Tree) toggle(node *tview.TreeNode) {
	if node.IsExpanded() {
		t.collapse(node)
	} else {
		t.expand(node)
	}
}

func (t *Tree) expand(node *tview.TreeNode) {
	ref := refOf(node)
	if ref == nil || !ref.isDir {
		return
	}
	if !ref.dir.Loaded() {
		t.load(node)
	}
	node.SetExpanded(true)
	t.render(node)
	t.watch(ref.path)
}

func (t *Tree) collapse(node *tview.TreeNode) {
	ref := refOf(node)
	if ref == nil || !ref.isDir {
		return
	}
	node.SetExpanded(false)
	t.render(node)
	t.unwatchExpanded(node)
}

func (t *Tree) load(node *tview.TreeNode) {
	ref := refOf(node)
	if err := ref.dir.Load(t.ctx); err != nil {
		t.logger.Error(err, "failed to read directory", "dir", ref.path)
		t.forgetChildren(node)
		node.ClearChildren()
		t.dirNodes[ref.path] = node
		return
	}
	t.setChildren(node, ref.dir.Children())
	t.dirNodes[ref.path] = node
	t.refreshGitStatus(node)
}

// setChildren rebuilds the children of node. Nodes of entries that are
// still present are reused so that their expansion survives a reload.
func (t *Tree) setChildren(node *tview.TreeNode, entries []os.DirEntry) {
	parent := refOf(node)
	existing := make(map[string]*tview.TreeNode)
	for _, child := range node.GetChildren() {
		if ref := refOf(child); ref != nil {
			existing[ref.name] = child
		}
	}
	children := make([]*tview.TreeNode, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !t.showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if child, ok := existing[name]; ok && refOf(child).isDir == entry.IsDir() {
			delete(existing, name)
			children = append(children, child)
			continue
		}
		children = append(children, t.newNode(node, parent.dir, entry))
	}
	for _, removed := range existing {
		t.forgetChildren(removed)
		if ref := refOf(removed); ref.isDir {
			delete(t.dirNodes, ref.path)
			t.unwatch(ref.path)
		}
	}
	node.SetChildren(children)
}

func (t *Tree) newNode(parent *tview.TreeNode, dir *files.DirContext, entry os.DirEntry) *tview.TreeNode {
	childPath := dir.ChildPath(entry.Name())
	ref := &nodeRef{
		name:   entry.Name(),
		path:   childPath,
		isDir:  entry.IsDir(),
		parent: parent,
	}
	if ref.isDir {
		ref.dir = files.NewDirContext(t.store, childPath)
	} else if info, err := entry.Info(); err == nil && info != nil {
		ref.size = info.Size()
	}
	node := tview.NewTreeNode("").
		SetReference(ref).
		SetSelectable(true)
	if ref.isDir {
		node.SetExpanded(false)
	}
	t.render(node)
	return node
}

// forgetChildren drops loaded descendants of node from the bookkeeping.
func (t *Tree) forgetChildren(node *tview.TreeNode) {
	for _, child := range node.GetChildren() {
		ref := refOf(child)
		if ref == nil || !ref.isDir {
			continue
		}
		if _, ok := t.dirNodes[ref.path]; ok {
			delete(t.dirNodes, ref.path)
			t.unwatch(ref.path)
		}
		t.forgetChildren(child)
	}
}

// Reload re-reads a loaded directory. Unknown paths are ignored.
func (t *Tree) Reload(dir string) {
	node, ok := t.dirNodes[dir]
	if !ok {
		return
	}
	t.load(node)
	t.render(node)
	if current := t.tv.GetCurrentNode(); current != nil && !t.isAttached(current) {
		t.tv.SetCurrentNode(node)
	}
}

func (t *Tree) isAttached(node *tview.TreeNode) bool {
	if node == t.rootNode {
		return true
	}
	ref := refOf(node)
	if ref == nil || ref.parent == nil {
		return false
	}
	for _, sibling := range ref.parent.GetChildren() {
		if sibling == node {
			return t.isAttached(ref.parent)
		}
	}
	return false
}

func (t *Tree) watch(dir string) {
	if t.watcher == nil {
		return
	}
	if err := t.watcher.Add(dir); err != nil {
		t.logger.V(1).Info("not watching directory", "dir", dir, "reason", err.Error())
	}
}

func (t *Tree) unwatch(dir string) {
	if t.watcher == nil {
		return
	}
	if err := t.watcher.Remove(dir); err != nil {
		t.logger.V(1).Info("failed to stop watching directory", "dir", dir, "reason", err.Error())
	}
}

// unwatchExpanded stops watching node and its expanded descendants.
func (t *Tree) unwatchExpanded(node *tview.TreeNode) {
	t.unwatch(refOf(node).path)
	for _, child := range node.GetChildren() {
		if ref := refOf(child); ref != nil && ref.isDir && child.IsExpanded() {
			t.unwatchExpanded(child)
		}
	}
}

func (t *Tree) SetTheme(theme Theme) {
	t.theme = theme
	p := theme.palette()
	t.tv.SetBackgroundColor(p.Background)
	t.tv.SetGraphicsColor(p.Graphics)
	t.tv.SetTitleColor(p.Foreground)
	t.tv.SetBorderColor(p.Graphics)
	t.rootNode.Walk(func(node, _ *tview.TreeNode) bool {
		t.render(node)
		return true
	})
}

// render sets the node text and colours from its reference, the theme and
// the find pattern.
func (t *Tree) render(node *tview.TreeNode) {
	ref := refOf(node)
	if ref == nil {
		return
	}
	p := t.theme.palette()
	node.SetSelectedTextStyle(p.SelectedText)

	name := highlightMatch(ref.name, t.searchPattern)
	if node == t.rootNode {
		name = tview.Escape(fsutils.CollapseHome(ref.path))
	}

	var text string
	var color = p.Foreground
	switch {
	case ref.isDir && ref.dir.Err() != nil:
		color = p.ErrorColor
		text = fmt.Sprintf("%s%s: %s", dirEmoji, name, tview.Escape(ref.dir.Err().Error()))
	case ref.isDir && node.IsExpanded():
		color = p.DirColor
		text = openDirEmoji + name
	case ref.isDir:
		color = p.DirColor
		text = dirEmoji + name
	default:
		if p.ColorFiles {
			color = fileColor(ref.name)
		}
		text = name
	}
	if marker := gitMarker(ref.git); marker != "" {
		text += " " + marker
	}
	node.SetText(text).SetColor(color)
}

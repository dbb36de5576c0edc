package nfilej

import (
	"strings"

	"github.com/rivo/tview"
)

type searchContext struct {
	pattern       string
	found         int
	firstContains *tview.TreeNode
	firstPrefixed *tview.TreeNode
}

func (t *Tree) Searching() bool {
	return t.searchActive
}

func (t *Tree) SearchPattern() string {
	return t.searchPattern
}

func (t *Tree) StartSearch() {
	t.searchActive = true
	t.SetSearch("")
}

func (t *Tree) EndSearch() {
	t.searchActive = false
	t.SetSearch("")
}

// SetSearch highlights visible nodes containing pattern and moves to the
// first one, preferring names that start with it. A pattern that matches
// nothing loses its last character.
func (t *Tree) SetSearch(pattern string) {
	t.searchPattern = strings.ToLower(pattern)
	searchCtx := &searchContext{pattern: t.searchPattern}
	t.rootNode.Walk(func(node, _ *tview.TreeNode) bool {
		t.render(node)
		if searchCtx.pattern != "" && node != t.rootNode {
			matchNode(node, searchCtx)
		}
		return node.IsExpanded()
	})
	switch {
	case searchCtx.firstPrefixed != nil:
		t.setCurrent(searchCtx.firstPrefixed)
	case searchCtx.firstContains != nil:
		t.setCurrent(searchCtx.firstContains)
	case t.searchPattern != "":
		runes := []rune(t.searchPattern)
		t.SetSearch(string(runes[:len(runes)-1]))
		return
	}
	if t.searchChanged != nil {
		t.searchChanged(t.searchActive, t.searchPattern)
	}
}

func matchNode(node *tview.TreeNode, searchCtx *searchContext) {
	ref := refOf(node)
	if ref == nil {
		return
	}
	lowerName := strings.ToLower(ref.name)
	if !strings.Contains(lowerName, searchCtx.pattern) {
		return
	}
	searchCtx.found++
	if searchCtx.firstContains == nil {
		searchCtx.firstContains = node
	}
	if searchCtx.firstPrefixed == nil && strings.HasPrefix(lowerName, searchCtx.pattern) {
		searchCtx.firstPrefixed = node
	}
}

// highlightMatch escapes name and marks the first case-insensitive
// occurrence of pattern.
func highlightMatch(name, pattern string) string {
	if pattern == "" {
		return tview.Escape(name)
	}
	lowerName := strings.ToLower(name)
	i := strings.Index(lowerName, pattern)
	if i < 0 || len(lowerName) != len(name) {
		return tview.Escape(name)
	}
	end := i + len(pattern)
	return tview.Escape(name[:i]) +
		"[black:lightgreen]" + tview.Escape(name[i:end]) + "[-:-]" +
		tview.Escape(name[end:])
}

package nfilej

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (t *Tree) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	if t.searchActive {
		return t.searchInputCapture(event)
	}
	switch event.Key() {
	case tcell.KeyRune:
		if event.Rune() == '/' {
			t.StartSearch()
			return nil
		}
		return event
	case tcell.KeyLeft:
		current := t.tv.GetCurrentNode()
		ref := refOf(current)
		if ref == nil {
			return event
		}
		if ref.isDir && current.IsExpanded() && current != t.rootNode {
			t.collapse(current)
			return nil
		}
		if ref.parent != nil {
			t.setCurrent(ref.parent)
		}
		return nil
	case tcell.KeyRight:
		current := t.tv.GetCurrentNode()
		ref := refOf(current)
		if ref == nil || !ref.isDir {
			return event
		}
		if !current.IsExpanded() {
			t.expand(current)
		} else if children := current.GetChildren(); len(children) > 0 {
			t.setCurrent(children[0])
		}
		return nil
	default:
		return event
	}
}

func (t *Tree) searchInputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		t.EndSearch()
		return nil
	case tcell.KeyEnter:
		t.searchActive = false
		t.searchPattern = ""
		t.rootNode.Walk(func(node, _ *tview.TreeNode) bool {
			t.render(node)
			return true
		})
		if t.searchChanged != nil {
			t.searchChanged(false, "")
		}
		return event
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if t.searchPattern == "" {
			t.EndSearch()
			return nil
		}
		runes := []rune(t.searchPattern)
		t.SetSearch(string(runes[:len(runes)-1]))
		return nil
	case tcell.KeyRune:
		t.SetSearch(t.searchPattern + strings.ToLower(string(event.Rune())))
		return nil
	default:
		return event
	}
}

// setCurrent moves the cursor, SetCurrentNode alone does not fire the
// changed func.
func (t *Tree) setCurrent(node *tview.TreeNode) {
	if t.tv.GetCurrentNode() == node {
		return
	}
	t.tv.SetCurrentNode(node)
	t.changed(node)
}

package nfilej

import (
	"fmt"
	"strings"

	"github.com/nfilej/nfilej/pkg/fsutils"
	"github.com/rivo/tview"
)

const appTitle = "nfilej"

type header struct {
	*tview.TextView
	theme Theme
}

func newHeader(theme Theme) *header {
	h := &header{
		TextView: tview.NewTextView().SetDynamicColors(true),
	}
	h.SetTheme(theme)
	return h
}

func (h *header) SetTheme(theme Theme) {
	h.theme = theme
	p := theme.palette()
	h.SetBackgroundColor(p.HeaderBackground)
	h.SetTextColor(p.HeaderForeground)
}

// showNode puts the path of the current node next to the title,
// with the size for files.
func (h *header) showNode(ref *nodeRef) {
	var sb strings.Builder
	sb.WriteString("[::b]" + appTitle + "[::-]  ")
	sb.WriteString(tview.Escape(fsutils.CollapseHome(ref.path)))
	if !ref.isDir {
		_, _ = fmt.Fprintf(&sb, "  (%s)", fsutils.ShortSize(ref.size))
	}
	h.SetText(sb.String())
}

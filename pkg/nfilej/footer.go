package nfilej

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

type menuItem struct {
	Region string
	HotKey string
	Title  string
	Action func()
}

type footer struct {
	*tview.Flex
	hints  *tview.TextView
	status *tview.TextView

	items []menuItem
	theme Theme

	// statusText is plain text, coloured on render so that a theme
	// toggle restyles it
	statusText    string
	statusIsError bool
	searching     bool
	searchPattern string
}

func newFooter(theme Theme, items []menuItem) *footer {
	f := &footer{
		Flex: tview.NewFlex(),
		hints: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true),
		status: tview.NewTextView().
			SetDynamicColors(true).
			SetTextAlign(tview.AlignRight),
		items: items,
	}
	f.hints.SetHighlightedFunc(f.highlighted)
	f.AddItem(f.hints, 0, 1, false)
	f.AddItem(f.status, 0, 1, false)
	f.SetTheme(theme)
	return f
}

func (f *footer) SetTheme(theme Theme) {
	f.theme = theme
	p := theme.palette()
	for _, tv := range []*tview.TextView{f.hints, f.status} {
		tv.SetBackgroundColor(p.FooterBackground)
		tv.SetTextColor(p.FooterForeground)
	}
	f.SetBackgroundColor(p.FooterBackground)
	f.render()
	f.renderStatus()
}

func (f *footer) render() {
	const separator = " ┊ "
	hotkeyColor := f.theme.palette().HotkeyColor
	texts := make([]string, 0, len(f.items))
	for _, mi := range f.items {
		texts = append(texts, fmt.Sprintf(`["%s"][%s]%s[-] %s[""]`,
			mi.Region, hotkeyColor, tview.Escape(mi.HotKey), mi.Title))
	}
	f.hints.SetText(strings.Join(texts, separator))
}

// highlighted runs the action of a clicked region.
func (f *footer) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	region := added[0]
	// cleared so that the next click on the same region fires again
	f.hints.Highlight()
	for _, mi := range f.items {
		if mi.Region == region && mi.Action != nil {
			mi.Action()
			return
		}
	}
}

func (f *footer) SetStatus(text string) {
	f.statusText = text
	f.statusIsError = false
	f.renderStatus()
}

func (f *footer) SetError(text string) {
	f.statusText = text
	f.statusIsError = true
	f.renderStatus()
}

func (f *footer) Status() string {
	return f.statusText
}

func (f *footer) showSearch(active bool, pattern string) {
	f.searching = active
	f.searchPattern = pattern
	f.renderStatus()
}

func (f *footer) renderStatus() {
	switch {
	case f.searching:
		f.status.SetText("Find: " + tview.Escape(f.searchPattern))
	case f.statusIsError:
		f.status.SetText(fmt.Sprintf("[%s]%s[-]",
			f.theme.palette().ErrorColor.String(), tview.Escape(f.statusText)))
	default:
		f.status.SetText(tview.Escape(f.statusText))
	}
}

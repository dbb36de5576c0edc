package nfilej

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/nfilej/nfilej/pkg/files"
	"github.com/nfilej/nfilej/pkg/nfilej/uiapp"
	"github.com/rivo/tview"
)

var testRoot = filepath.FromSlash("/srv/nfilej")

func testPath(elem ...string) string {
	return filepath.Join(append([]string{testRoot}, elem...)...)
}

// memStore serves directory listings from memory.
type memStore struct {
	mu      sync.Mutex
	entries map[string][]os.DirEntry
	errs    map[string]error
	reads   map[string]int
}

func newMemStore() *memStore {
	return &memStore{
		entries: make(map[string][]os.DirEntry),
		errs:    make(map[string]error),
		reads:   make(map[string]int),
	}
}

func (s *memStore) set(dir string, entries ...os.DirEntry) *memStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[dir] = entries
	return s
}

func (s *memStore) fail(dir string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[dir] = err
}

func (s *memStore) readCount(dir string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads[dir]
}

func (s *memStore) RootTitle() string { return "mem" }
func (s *memStore) RootURL() url.URL  { return url.URL{Scheme: "mem", Path: "/"} }

func (s *memStore) ReadDir(_ context.Context, name string) ([]os.DirEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads[name]++
	if err := s.errs[name]; err != nil {
		return nil, err
	}
	return append([]os.DirEntry(nil), s.entries[name]...), nil
}

func dir(name string) os.DirEntry {
	return files.NewEntry(name, true)
}

func file(name string, size int64) os.DirEntry {
	return files.NewEntry(name, false, files.WithSize(size))
}

// sampleStore has a root with two directories, a dot-file and two files.
func sampleStore() *memStore {
	s := newMemStore()
	s.set(testRoot,
		file("notes.txt", 2048),
		dir("projects"),
		file(".profile", 10),
		dir("docs"),
		file("main.go", 100),
	)
	s.set(testPath("projects"),
		dir("nfilej"),
		file("README.md", 1),
	)
	s.set(testPath("projects", "nfilej"),
		file("go.mod", 1),
	)
	s.set(testPath("docs"),
		file("report.pdf", 1),
		file("readme.txt", 1),
	)
	return s
}

type inlineQueue struct{}

func (inlineQueue) QueueUpdateDraw(f func()) {
	f()
}

type fakeWatcher struct {
	watched map[string]bool
	added   []string
	removed []string
	closed  bool
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{watched: make(map[string]bool)}
}

func (w *fakeWatcher) Add(dir string) error {
	w.watched[dir] = true
	w.added = append(w.added, dir)
	return nil
}

func (w *fakeWatcher) Remove(dir string) error {
	delete(w.watched, dir)
	w.removed = append(w.removed, dir)
	return nil
}

func (w *fakeWatcher) Close() error {
	w.closed = true
	return nil
}

func newTestTree(store files.Store, o treeOptions) *Tree {
	if o.logger.GetSink() == nil {
		o.logger = logr.Discard()
	}
	return newTree(context.Background(), inlineQueue{}, store, testRoot, o)
}

func childNames(node *tview.TreeNode) []string {
	children := node.GetChildren()
	names := make([]string, len(children))
	for i, child := range children {
		names[i] = refOf(child).name
	}
	return names
}

func childNode(node *tview.TreeNode, name string) *tview.TreeNode {
	for _, child := range node.GetChildren() {
		if refOf(child).name == name {
			return child
		}
	}
	return nil
}

// testUI records the calls the browser makes to the tview application.
type testUI struct {
	uiapp.App
	root         tview.Primitive
	focused      tview.Primitive
	inputCapture func(event *tcell.EventKey) *tcell.EventKey
	mouse        bool
	stopped      int
	events       []string
	suspendOK    bool
}

func newTestUI() *testUI {
	ui := &testUI{suspendOK: true}
	ui.App = uiapp.NewApp(nil,
		uiapp.WithQueueUpdateDraw(func(f func()) { f() }),
		uiapp.WithSetFocus(func(p tview.Primitive) { ui.focused = p }),
		uiapp.WithSetRoot(func(root tview.Primitive, _ bool) { ui.root = root }),
		uiapp.WithEnableMouse(func(b bool) { ui.mouse = b }),
		uiapp.WithSetInputCapture(func(capture func(event *tcell.EventKey) *tcell.EventKey) {
			ui.inputCapture = capture
		}),
		uiapp.WithSuspend(func(f func()) bool {
			if !ui.suspendOK {
				return false
			}
			ui.events = append(ui.events, "suspend")
			defer func() { ui.events = append(ui.events, "resume") }()
			f()
			return true
		}),
		uiapp.WithStop(func() { ui.stopped++ }),
		uiapp.WithRun(func() error { return nil }),
	)
	return ui
}

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func newSimScreen(t *testing.T, width, height int) tcell.Screen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(width, height)
	return s
}

func readLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

package tmux

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/tmux-pane-mover/internal/testutil"
	"github.com/atomicstack/tmux-pane-mover/internal/zone"
)

func TestGatewayIntegration(t *testing.T) {
	socket, cleanup, logDir := testutil.StartTmuxServer(t)
	defer cleanup()
	t.Cleanup(func() {
		testutil.AssertNoServerCrash(t, logDir)
		Shutdown()
	})
	t.Setenv("TMUX_TMPDIR", filepath.Dir(socket))

	first := testutil.PaneID(t, socket, testutil.SessionName)
	second := testutil.SplitPane(t, socket, first, nil, "sleep", "600")

	g := New(socket, first)
	l, err := g.QueryLayout()
	if err != nil {
		t.Fatalf("QueryLayout failed: %v", err)
	}
	if len(l.Panes) != 2 {
		t.Fatalf("expected two panes, got %#v", l.Panes)
	}
	self, ok := l.Pane(first)
	if !ok || !self.Self {
		t.Fatalf("expected %s to be marked self in %#v", first, l.Panes)
	}
	if _, ok := l.Pane(second); !ok {
		t.Fatalf("expected %s in %#v", second, l.Panes)
	}

	if err := g.Swap(first, second); err != nil {
		t.Fatalf("Swap failed: %v", err)
	}
	swapped, err := g.QueryLayout()
	if err != nil {
		t.Fatalf("QueryLayout after swap failed: %v", err)
	}
	if swapped.Panes[0].ID != second {
		t.Fatalf("expected %s on the left after swap, got %#v", second, swapped.Panes)
	}

	if err := g.SplitFull(zone.Above, first, second); err != nil {
		t.Fatalf("SplitFull failed: %v", err)
	}
	stacked, err := g.QueryLayout()
	if err != nil {
		t.Fatalf("QueryLayout after split failed: %v", err)
	}
	top, _ := stacked.Pane(first)
	if top.Rect.Y != 0 || top.Rect.Width != stacked.Screen.Width {
		t.Fatalf("expected %s to span the top row, got %#v", first, top)
	}
	if stacked.Signature == l.Signature {
		t.Fatalf("signature should change with the layout")
	}

	if err := g.SetPaneTitle(first, "tmux-pane-mover"); err != nil {
		t.Fatalf("SetPaneTitle failed: %v", err)
	}
	if title, err := g.PaneTitle(first); err != nil || strings.TrimSpace(title) != "tmux-pane-mover" {
		t.Fatalf("PaneTitle = %q, %v", title, err)
	}
	if got := testutil.PaneTitle(t, socket, first); got != "tmux-pane-mover" {
		t.Fatalf("tmux reports title %q", got)
	}

	if err := g.Swap(first, first+"999"); err == nil {
		t.Fatalf("expected swap with an unknown pane to fail")
	}
}

package layout

import "testing"

func sideBySide() Layout {
	return Layout{
		Window: "@1",
		Screen: Rect{Width: 80, Height: 24},
		Panes: []Pane{
			{ID: "%1", Rect: Rect{X: 0, Y: 0, Width: 39, Height: 24}, Active: true},
			{ID: "%2", Rect: Rect{X: 40, Y: 0, Width: 40, Height: 24}},
		},
	}
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{2, 3}, true},
		{Point{5, 4}, true},
		{Point{6, 4}, false},
		{Point{5, 5}, false},
		{Point{1, 3}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Fatalf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestPaneAtReturnsContainingPane(t *testing.T) {
	l := sideBySide()
	pane, ok := l.PaneAt(Point{X: 10, Y: 10})
	if !ok || pane.ID != "%1" {
		t.Fatalf("expected %%1, got %#v (ok=%v)", pane, ok)
	}
	pane, ok = l.PaneAt(Point{X: 79, Y: 23})
	if !ok || pane.ID != "%2" {
		t.Fatalf("expected %%2, got %#v (ok=%v)", pane, ok)
	}
}

func TestPaneAtOutsideAllPanes(t *testing.T) {
	l := sideBySide()
	// column 39 is the tmux border between the panes
	if pane, ok := l.PaneAt(Point{X: 39, Y: 5}); ok {
		t.Fatalf("expected no pane on border, got %#v", pane)
	}
	if _, ok := l.PaneAt(Point{X: -1, Y: 0}); ok {
		t.Fatalf("expected no pane for negative coordinate")
	}
	if _, ok := (Layout{}).PaneAt(Point{}); ok {
		t.Fatalf("expected no pane in empty layout")
	}
}

func TestPaneLookup(t *testing.T) {
	l := sideBySide()
	if _, ok := l.Pane(""); ok {
		t.Fatalf("empty id must not match")
	}
	if pane, ok := l.Pane("%2"); !ok || pane.Rect.X != 40 {
		t.Fatalf("unexpected lookup result %#v", pane)
	}
}

func TestProjectIdentityAbsorbsBorders(t *testing.T) {
	got := sideBySide().Project(80, 24)
	if got.Screen != (Rect{Width: 80, Height: 24}) {
		t.Fatalf("unexpected screen %#v", got.Screen)
	}
	want := []Rect{
		{X: 0, Y: 0, Width: 40, Height: 24},
		{X: 40, Y: 0, Width: 40, Height: 24},
	}
	for i, pane := range got.Panes {
		if pane.Rect != want[i] {
			t.Fatalf("pane %d: got %#v want %#v", i, pane.Rect, want[i])
		}
	}
	if !got.Panes[0].Active || got.Panes[0].ID != "%1" {
		t.Fatalf("expected pane attributes preserved, got %#v", got.Panes[0])
	}
}

func TestProjectHalfScaleTilesViewport(t *testing.T) {
	l := Layout{
		Screen: Rect{Width: 80, Height: 24},
		Panes: []Pane{
			{ID: "%1", Rect: Rect{X: 0, Y: 0, Width: 39, Height: 24}},
			{ID: "%2", Rect: Rect{X: 40, Y: 0, Width: 40, Height: 11}},
			{ID: "%3", Rect: Rect{X: 40, Y: 12, Width: 40, Height: 12}},
		},
	}
	got := l.Project(40, 12)
	for y := 0; y < 12; y++ {
		for x := 0; x < 40; x++ {
			hits := 0
			for _, pane := range got.Panes {
				if pane.Rect.Contains(Point{X: x, Y: y}) {
					hits++
				}
			}
			if hits != 1 {
				t.Fatalf("cell (%d,%d) covered by %d panes: %#v", x, y, hits, got.Panes)
			}
		}
	}
}

func TestProjectEmptyLayout(t *testing.T) {
	got := (Layout{Window: "@3"}).Project(10, 5)
	if !got.Empty() || got.Window != "@3" {
		t.Fatalf("unexpected projection %#v", got)
	}
}

func TestCentered(t *testing.T) {
	r := Centered(Point{X: 10, Y: 10}, 6, 4)
	if r != (Rect{X: 7, Y: 8, Width: 6, Height: 4}) {
		t.Fatalf("unexpected rect %#v", r)
	}
}

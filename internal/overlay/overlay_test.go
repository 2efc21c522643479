package overlay

import (
	"strings"
	"testing"

	"github.com/atomicstack/tmux-pane-mover/internal/drag"
	"github.com/atomicstack/tmux-pane-mover/internal/layout"
	"github.com/atomicstack/tmux-pane-mover/internal/zone"
	"github.com/charmbracelet/x/ansi"
)

func sideBySide() layout.Layout {
	return layout.Layout{
		Screen: layout.Rect{Width: 80, Height: 24},
		Panes: []layout.Pane{
			{ID: "%A", Title: "vim", Active: true, Rect: layout.Rect{X: 0, Y: 0, Width: 40, Height: 24}},
			{ID: "%B", Title: "shell", Rect: layout.Rect{X: 40, Y: 0, Width: 40, Height: 24}},
		},
	}
}

func byShape(prims []Primitive, shape Shape) []Primitive {
	var out []Primitive
	for _, p := range prims {
		if p.Shape == shape {
			out = append(out, p)
		}
	}
	return out
}

func TestRenderIdleHover(t *testing.T) {
	st := drag.State{Phase: drag.Idle, Tracking: true, Pointer: layout.Point{X: 60, Y: 10}}
	prims := Render(sideBySide(), st, zone.DefaultConfig())
	if len(prims) != 2 {
		t.Fatalf("idle frame should only contain pane boxes, got %#v", prims)
	}
	if prims[0].Role != RoleActive || prims[1].Role != RoleHover {
		t.Fatalf("unexpected roles %v %v", prims[0].Role, prims[1].Role)
	}
	if prims[0].Text != "%A vim" {
		t.Fatalf("unexpected box text %q", prims[0].Text)
	}
}

func TestRenderWithoutPointerHasNoHover(t *testing.T) {
	prims := Render(sideBySide(), drag.State{}, zone.DefaultConfig())
	for _, p := range prims {
		if p.Role == RoleHover {
			t.Fatalf("no hover expected before the first pointer event: %#v", p)
		}
	}
}

func TestRenderSelfPane(t *testing.T) {
	l := sideBySide()
	l.Panes[1].Self = true
	prims := Render(l, drag.State{}, zone.DefaultConfig())
	if prims[1].Role != RoleSelf {
		t.Fatalf("expected self role, got %v", prims[1].Role)
	}
}

func TestRenderDraggingSwap(t *testing.T) {
	st := drag.State{
		Phase:    drag.Dragging,
		Dragged:  "%A",
		Zone:     zone.Swap("%B"),
		Pointer:  layout.Point{X: 60, Y: 12},
		Tracking: true,
	}
	prims := Render(sideBySide(), st, zone.DefaultConfig())
	boxes := byShape(prims, ShapeBox)
	if boxes[0].Role != RoleDragged || boxes[1].Role != RoleTarget || boxes[1].HasEdge {
		t.Fatalf("unexpected boxes %#v", boxes)
	}
	strips := byShape(prims, ShapeStrip)
	if len(strips) != 4 {
		t.Fatalf("expected four strips, got %d", len(strips))
	}
	for _, s := range strips {
		if s.Lit {
			t.Fatalf("no strip should be lit for a swap: %#v", s)
		}
	}
	ghosts := byShape(prims, ShapeGhost)
	if len(ghosts) != 1 {
		t.Fatalf("expected one ghost, got %d", len(ghosts))
	}
	if want := (layout.Rect{X: 40, Y: 0, Width: 40, Height: 24}); ghosts[0].Rect != want {
		t.Fatalf("ghost rect = %v, want %v", ghosts[0].Rect, want)
	}
	labels := byShape(prims, ShapeLabel)
	if len(labels) != 1 || labels[0].Text != " ⇄ swap " {
		t.Fatalf("unexpected labels %#v", labels)
	}
	if labels[0].Rect.X != 41 || labels[0].Rect.Y != 1 {
		t.Fatalf("label should sit inside the ghost, got %v", labels[0].Rect)
	}
}

func TestRenderDraggingEdgeLightsTargetEdge(t *testing.T) {
	st := drag.State{Phase: drag.Dragging, Dragged: "%A", Zone: zone.EdgeSplit("%B", zone.Below), Pointer: layout.Point{X: 60, Y: 22}}
	boxes := byShape(Render(sideBySide(), st, zone.DefaultConfig()), ShapeBox)
	if !boxes[1].HasEdge || boxes[1].Edge != zone.Below {
		t.Fatalf("expected lit bottom edge on target, got %#v", boxes[1])
	}
}

func TestRenderScreenSplitLightsStripLast(t *testing.T) {
	st := drag.State{Phase: drag.Dragging, Dragged: "%A", Zone: zone.ScreenSplit(zone.Left), Pointer: layout.Point{X: 0, Y: 12}}
	prims := Render(sideBySide(), st, zone.DefaultConfig())
	strips := byShape(prims, ShapeStrip)
	lit := strips[len(strips)-1]
	if !lit.Lit || lit.Edge != zone.Left || lit.Glyph != '◀' {
		t.Fatalf("expected lit left strip last, got %#v", lit)
	}
	if lit.Rect != (layout.Rect{X: 0, Y: 0, Width: 2, Height: 24}) {
		t.Fatalf("unexpected strip rect %v", lit.Rect)
	}
	for _, b := range byShape(prims, ShapeBox) {
		if b.Role == RoleTarget {
			t.Fatalf("screen split must not mark a target pane: %#v", b)
		}
	}
}

func TestRenderDraggingNoneHasNoLabel(t *testing.T) {
	st := drag.State{Phase: drag.Dragging, Dragged: "%A", Zone: zone.None(), Pointer: layout.Point{X: 20, Y: 12}}
	if labels := byShape(Render(sideBySide(), st, zone.DefaultConfig()), ShapeLabel); len(labels) != 0 {
		t.Fatalf("unexpected label %#v", labels)
	}
}

func TestRenderIsPure(t *testing.T) {
	st := drag.State{Phase: drag.Dragging, Dragged: "%A", Zone: zone.Swap("%B"), Pointer: layout.Point{X: 60, Y: 12}}
	l := sideBySide()
	first := Render(l, st, zone.DefaultConfig())
	second := Render(l, st, zone.DefaultConfig())
	if len(first) != len(second) {
		t.Fatalf("frames differ in length")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("frame %d differs: %#v vs %#v", i, first[i], second[i])
		}
	}
}

func TestLabelFor(t *testing.T) {
	cases := map[zone.Zone]string{
		zone.None():                     "",
		zone.Swap("%1"):                 "⇄ swap",
		zone.EdgeSplit("%1", zone.Left): "╞ split left",
		zone.ScreenSplit(zone.Left):     "◀ split left (full column)",
		zone.ScreenSplit(zone.Above):    "▲ split above (full row)",
	}
	for z, want := range cases {
		if got := LabelFor(z); got != want {
			t.Fatalf("LabelFor(%v) = %q, want %q", z, got, want)
		}
	}
}

func TestPaintDimensions(t *testing.T) {
	out := Paint(Render(sideBySide(), drag.State{}, zone.DefaultConfig()), 80, 24, nil)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 24 {
		t.Fatalf("expected 24 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 80 {
			t.Fatalf("line %d has width %d", i, w)
		}
	}
	if !strings.HasPrefix(lines[0], "╭─ %A vim ─") {
		t.Fatalf("unexpected top line %q", lines[0])
	}
	if lines[23][0:len("╰")] != "╰" {
		t.Fatalf("unexpected bottom line %q", lines[23])
	}
}

func TestPaintClipsGhost(t *testing.T) {
	st := drag.State{Phase: drag.Dragging, Dragged: "%A", Zone: zone.ScreenSplit(zone.Right), Pointer: layout.Point{X: 79, Y: 23}}
	out := ansi.Strip(Paint(Render(sideBySide(), st, zone.DefaultConfig()), 80, 24, nil))
	lines := strings.Split(out, "\n")
	if len(lines) != 24 {
		t.Fatalf("expected 24 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 80 {
			t.Fatalf("line %d has width %d", i, w)
		}
	}
	if !strings.Contains(out, "⠿ %A vim") {
		t.Fatalf("ghost title missing from frame:\n%s", out)
	}
}

func TestPaintStripGlyphs(t *testing.T) {
	st := drag.State{Phase: drag.Dragging, Dragged: "%A", Zone: zone.ScreenSplit(zone.Below), Pointer: layout.Point{X: 60, Y: 23}}
	out := ansi.Strip(Paint(Render(sideBySide(), st, zone.DefaultConfig()), 80, 24, nil))
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[23], "▼▼▼▼") {
		t.Fatalf("expected lit bottom strip, got %q", lines[23])
	}
	if !strings.HasPrefix(lines[10], "◀◀") {
		t.Fatalf("expected left strip, got %q", lines[10])
	}
}

func TestPaintEmptyViewport(t *testing.T) {
	if out := Paint(nil, 0, 10, nil); out != "" {
		t.Fatalf("expected empty frame, got %q", out)
	}
}

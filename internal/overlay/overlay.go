// Package overlay turns a layout and a drag state into drawing primitives and
// rasterises them. Render is pure: every frame is rebuilt from its inputs.
package overlay

import (
	"fmt"

	"github.com/atomicstack/tmux-pane-mover/internal/drag"
	"github.com/atomicstack/tmux-pane-mover/internal/layout"
	"github.com/atomicstack/tmux-pane-mover/internal/zone"
)

type Shape int

const (
	ShapeBox Shape = iota + 1
	ShapeStrip
	ShapeGhost
	ShapeLabel
)

// Role selects the emphasis a primitive is drawn with.
type Role int

const (
	RoleNormal Role = iota
	RoleActive
	RoleSelf
	RoleHover
	RoleTarget
	RoleDragged
)

func (r Role) String() string {
	switch r {
	case RoleNormal:
		return "normal"
	case RoleActive:
		return "active"
	case RoleSelf:
		return "self"
	case RoleHover:
		return "hover"
	case RoleTarget:
		return "target"
	case RoleDragged:
		return "dragged"
	}
	return "unknown"
}

// Primitive is one drawable element in viewport coordinates. Edge is only
// meaningful when HasEdge is set; Glyph fills strips.
type Primitive struct {
	Shape   Shape
	Rect    layout.Rect
	Role    Role
	Text    string
	Lit     bool
	HasEdge bool
	Edge    zone.Direction
	Glyph   rune
	Pane    string
}

const ghostMark = "⠿"

// Render describes one frame, back to front: pane boxes, then the screen
// strips, the drag ghost and the action label while a drag is in progress.
// l must already be projected onto the viewport.
func Render(l layout.Layout, st drag.State, cfg zone.Config) []Primitive {
	prims := make([]Primitive, 0, len(l.Panes)+6)
	dragging := st.Phase == drag.Dragging

	hover := ""
	if !dragging && st.Tracking {
		if pane, ok := l.PaneAt(st.Pointer); ok {
			hover = pane.ID
		}
	}

	for _, pane := range l.Panes {
		box := Primitive{
			Shape: ShapeBox,
			Rect:  pane.Rect,
			Role:  paneRole(pane),
			Text:  fmt.Sprintf("%s %s", pane.ID, pane.Title),
			Pane:  pane.ID,
		}
		switch {
		case dragging && pane.ID == st.Dragged:
			box.Role = RoleDragged
		case dragging && pane.ID == st.Zone.Target && st.Zone.Kind != zone.KindScreenSplit:
			box.Role = RoleTarget
			if st.Zone.Kind == zone.KindEdgeSplit {
				box.HasEdge = true
				box.Edge = st.Zone.Direction
			}
		case pane.ID == hover:
			box.Role = RoleHover
		}
		prims = append(prims, box)
	}

	if !dragging {
		return prims
	}

	prims = append(prims, strips(l.Screen, cfg, st.Zone)...)

	dragged, ok := l.Pane(st.Dragged)
	if !ok {
		return prims
	}
	ghost := layout.Centered(st.Pointer, dragged.Rect.Width, dragged.Rect.Height)
	prims = append(prims, Primitive{
		Shape: ShapeGhost,
		Rect:  ghost,
		Role:  RoleDragged,
		Text:  fmt.Sprintf("%s %s %s", ghostMark, dragged.ID, dragged.Title),
		Pane:  dragged.ID,
	})
	if label := LabelFor(st.Zone); label != "" {
		text := " " + label + " "
		prims = append(prims, Primitive{
			Shape: ShapeLabel,
			Rect:  layout.Rect{X: ghost.X + 1, Y: ghost.Y + 1, Width: len([]rune(text)), Height: 1},
			Role:  RoleTarget,
			Text:  text,
		})
	}
	return prims
}

func paneRole(p layout.Pane) Role {
	switch {
	case p.Self:
		return RoleSelf
	case p.Active:
		return RoleActive
	}
	return RoleNormal
}

// strips returns the four screen-edge drop strips with the lit one last so
// it is never overdrawn at the corners.
func strips(screen layout.Rect, cfg zone.Config, z zone.Zone) []Primitive {
	cols, rows := cfg.ScreenEdgeCols, cfg.ScreenEdgeRows
	all := []Primitive{
		{Rect: layout.Rect{X: screen.X, Y: screen.Y, Width: cols, Height: screen.Height}, Edge: zone.Left, Glyph: '◀'},
		{Rect: layout.Rect{X: screen.Right() - cols, Y: screen.Y, Width: cols, Height: screen.Height}, Edge: zone.Right, Glyph: '▶'},
		{Rect: layout.Rect{X: screen.X, Y: screen.Y, Width: screen.Width, Height: rows}, Edge: zone.Above, Glyph: '▲'},
		{Rect: layout.Rect{X: screen.X, Y: screen.Bottom() - rows, Width: screen.Width, Height: rows}, Edge: zone.Below, Glyph: '▼'},
	}
	out := make([]Primitive, 0, len(all))
	var lit *Primitive
	for i := range all {
		s := all[i]
		if s.Rect.Empty() {
			continue
		}
		s.Shape = ShapeStrip
		s.HasEdge = true
		if z.Kind == zone.KindScreenSplit && z.Direction == s.Edge {
			s.Lit = true
			lit = &s
			continue
		}
		out = append(out, s)
	}
	if lit != nil {
		out = append(out, *lit)
	}
	return out
}

// LabelFor names the action a drop on z would perform, or "" for none.
func LabelFor(z zone.Zone) string {
	switch z.Kind {
	case zone.KindSwap:
		return "⇄ swap"
	case zone.KindEdgeSplit:
		icons := map[zone.Direction]string{zone.Left: "╞", zone.Right: "╡", zone.Above: "╥", zone.Below: "╨"}
		return fmt.Sprintf("%s split %s", icons[z.Direction], z.Direction)
	case zone.KindScreenSplit:
		icons := map[zone.Direction]string{zone.Left: "◀", zone.Right: "▶", zone.Above: "▲", zone.Below: "▼"}
		span := "full row"
		if z.Direction.Horizontal() {
			span = "full column"
		}
		return fmt.Sprintf("%s split %s (%s)", icons[z.Direction], z.Direction, span)
	}
	return ""
}

// Package layout holds immutable snapshots of the panes in one tmux window.
package layout

// Point is a cell coordinate.
type Point struct {
	X int
	Y int
}

// Rect is a rectangle in character cells. Contains is half-open on both axes.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Centered returns a rect of the given size centred on p.
func Centered(p Point, width, height int) Rect {
	return Rect{X: p.X - width/2, Y: p.Y - height/2, Width: width, Height: height}
}

type Pane struct {
	ID     string
	Rect   Rect
	Title  string
	Active bool
	// Self marks the pane hosting the overlay.
	Self bool
}

// Layout is one window's panes. Panes are assumed to tile Screen.
type Layout struct {
	Window    string
	Signature string
	Screen    Rect
	Panes     []Pane
}

// PaneAt returns the first pane containing p.
func (l Layout) PaneAt(p Point) (Pane, bool) {
	for _, pane := range l.Panes {
		if pane.Rect.Contains(p) {
			return pane, true
		}
	}
	return Pane{}, false
}

func (l Layout) Pane(id string) (Pane, bool) {
	if id == "" {
		return Pane{}, false
	}
	for _, pane := range l.Panes {
		if pane.ID == id {
			return pane, true
		}
	}
	return Pane{}, false
}

func (l Layout) Empty() bool {
	return len(l.Panes) == 0
}

// Project scales the layout onto a width x height viewport anchored at the
// origin. Each pane first absorbs the tmux border to its right and below so
// the panes tile the window, then both edges are scaled independently; panes
// sharing a boundary in the window still share it in the viewport.
func (l Layout) Project(width, height int) Layout {
	out := Layout{
		Window:    l.Window,
		Signature: l.Signature,
		Screen:    Rect{Width: max(width, 0), Height: max(height, 0)},
	}
	if len(l.Panes) == 0 {
		return out
	}
	src := l.Screen
	if src.Empty() {
		src = bounds(l.Panes)
	}
	out.Panes = make([]Pane, 0, len(l.Panes))
	for _, pane := range l.Panes {
		r := pane.Rect
		x0 := r.X - src.X
		y0 := r.Y - src.Y
		x1 := min(r.Right()+1-src.X, src.Width)
		y1 := min(r.Bottom()+1-src.Y, src.Height)
		sx0 := scale(x0, width, src.Width)
		sy0 := scale(y0, height, src.Height)
		projected := pane
		projected.Rect = Rect{
			X:      sx0,
			Y:      sy0,
			Width:  scale(x1, width, src.Width) - sx0,
			Height: scale(y1, height, src.Height) - sy0,
		}
		out.Panes = append(out.Panes, projected)
	}
	return out
}

func scale(v, to, from int) int {
	if from <= 0 {
		return 0
	}
	return (v*to + from/2) / from
}

func bounds(panes []Pane) Rect {
	var r Rect
	for i, pane := range panes {
		if i == 0 {
			r = pane.Rect
			continue
		}
		x0 := min(r.X, pane.Rect.X)
		y0 := min(r.Y, pane.Rect.Y)
		x1 := max(r.Right(), pane.Rect.Right())
		y1 := max(r.Bottom(), pane.Rect.Bottom())
		r = Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
	}
	return r
}

package overlay

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/atomicstack/tmux-pane-mover/internal/theme"
	"github.com/atomicstack/tmux-pane-mover/internal/zone"
	"github.com/charmbracelet/x/ansi"
)

const (
	boxTopLeft     = '╭'
	boxTopRight    = '╮'
	boxBottomLeft  = '╰'
	boxBottomRight = '╯'
	boxHorizontal  = '─'
	boxVertical    = '│'
)

type cell struct {
	r     rune
	style *lipgloss.Style
}

type canvas struct {
	width, height int
	cells         [][]cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height, cells: make([][]cell, height)}
	for y := range c.cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) set(x, y int, r rune, style *lipgloss.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = cell{r: r, style: style}
}

func (c *canvas) text(x, y int, s string, style *lipgloss.Style) {
	for _, r := range s {
		c.set(x, y, r, style)
		x++
	}
}

// Paint rasterises prims into width x height cells, clipping anything that
// falls outside. The result has exactly height lines.
func Paint(prims []Primitive, width, height int, styles *theme.Styles) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if styles == nil {
		styles = theme.Default()
	}
	c := newCanvas(width, height)
	for _, p := range prims {
		switch p.Shape {
		case ShapeBox, ShapeGhost:
			paintBox(c, p, styles)
		case ShapeStrip:
			style := styles.Strip
			if p.Lit {
				style = styles.StripLit
			}
			for y := p.Rect.Y; y < p.Rect.Bottom(); y++ {
				for x := p.Rect.X; x < p.Rect.Right(); x++ {
					c.set(x, y, p.Glyph, style)
				}
			}
		case ShapeLabel:
			c.text(p.Rect.X, p.Rect.Y, p.Text, styles.Label)
		}
	}
	return c.render()
}

func paintBox(c *canvas, p Primitive, styles *theme.Styles) {
	border, fill := roleStyles(p.Role, styles)
	r := p.Rect
	if r.Empty() {
		return
	}
	last := func(v, n int) bool { return v == n-1 }
	for dy := 0; dy < r.Height; dy++ {
		for dx := 0; dx < r.Width; dx++ {
			top, bottom := dy == 0, last(dy, r.Height)
			left, right := dx == 0, last(dx, r.Width)
			style := border
			if p.HasEdge && litSide(p.Edge, top, bottom, left, right) {
				style = styles.EdgeLit
			}
			var ch rune
			switch {
			case top && left:
				ch = boxTopLeft
			case top && right:
				ch = boxTopRight
			case bottom && left:
				ch = boxBottomLeft
			case bottom && right:
				ch = boxBottomRight
			case top || bottom:
				ch = boxHorizontal
			case left || right:
				ch = boxVertical
			default:
				ch, style = ' ', fill
			}
			c.set(r.X+dx, r.Y+dy, ch, style)
		}
	}
	if r.Width > 5 && p.Text != "" {
		c.text(r.X+2, r.Y, " "+ansi.Truncate(p.Text, r.Width-5, "")+" ", border)
	}
}

func litSide(d zone.Direction, top, bottom, left, right bool) bool {
	switch d {
	case zone.Left:
		return left
	case zone.Right:
		return right
	case zone.Above:
		return top
	case zone.Below:
		return bottom
	}
	return false
}

func roleStyles(role Role, s *theme.Styles) (border, fill *lipgloss.Style) {
	switch role {
	case RoleActive:
		return s.BorderActive, s.FillActive
	case RoleSelf:
		return s.BorderSelf, s.FillSelf
	case RoleHover, RoleTarget:
		return s.BorderHover, s.FillHover
	case RoleDragged:
		return s.BorderDragged, s.FillDragged
	}
	return s.Border, s.Fill
}

// render joins runs of equally styled cells so each run is styled once.
func (c *canvas) render() string {
	var out strings.Builder
	var run strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			out.WriteByte('\n')
		}
		var current *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == nil {
				out.WriteString(run.String())
			} else {
				out.WriteString(current.Render(run.String()))
			}
			run.Reset()
		}
		for x, cl := range row {
			if x > 0 && cl.style != current {
				flush()
			}
			current = cl.style
			run.WriteRune(cl.r)
		}
		flush()
	}
	return out.String()
}

// Package zone classifies a pointer position into a drop zone.
//
// Zones partition the screen in three layers evaluated outermost first: the
// screen-edge strip, the border band of each pane, and the pane centre. Every
// point of the screen therefore maps to exactly one zone, and a point on a
// corner resolves by the fixed priority left > right > above > below.
package zone

import (
	"math"

	"github.com/atomicstack/tmux-pane-mover/internal/layout"
)

type Kind int

const (
	KindNone Kind = iota
	KindSwap
	KindEdgeSplit
	KindScreenSplit
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSwap:
		return "swap"
	case KindEdgeSplit:
		return "edge-split"
	case KindScreenSplit:
		return "screen-split"
	}
	return "unknown"
}

// Direction is a side of a pane or of the screen. The declaration order is
// the tie-break priority.
type Direction int

const (
	Left Direction = iota
	Right
	Above
	Below
)

var directions = [...]Direction{Left, Right, Above, Below}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Above:
		return "above"
	case Below:
		return "below"
	}
	return "unknown"
}

// Horizontal reports whether d splits side by side.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Before reports whether the inserted pane goes before the target.
func (d Direction) Before() bool {
	return d == Left || d == Above
}

// Zone is a classification result. Target is set for KindSwap and
// KindEdgeSplit; Direction for KindEdgeSplit and KindScreenSplit.
type Zone struct {
	Kind      Kind
	Target    string
	Direction Direction
}

func None() Zone { return Zone{} }

func Swap(target string) Zone { return Zone{Kind: KindSwap, Target: target} }

func EdgeSplit(target string, dir Direction) Zone {
	return Zone{Kind: KindEdgeSplit, Target: target, Direction: dir}
}

func ScreenSplit(dir Direction) Zone {
	return Zone{Kind: KindScreenSplit, Direction: dir}
}

func (z Zone) IsNone() bool { return z.Kind == KindNone }

func (z Zone) String() string {
	switch z.Kind {
	case KindSwap:
		return "swap " + z.Target
	case KindEdgeSplit:
		return "split " + z.Direction.String() + " of " + z.Target
	case KindScreenSplit:
		return "screen split " + z.Direction.String()
	}
	return "none"
}

// Config sets zone thicknesses in cells.
type Config struct {
	ScreenEdgeCols int
	ScreenEdgeRows int
	EdgeBand       int
	// EdgeFraction, when positive, sizes the pane band as a fraction of the
	// pane's dimension on each axis instead of EdgeBand.
	EdgeFraction float64
}

const (
	DefaultScreenEdgeCols = 2
	DefaultScreenEdgeRows = 1
	DefaultEdgeBand       = 3
)

func DefaultConfig() Config {
	return Config{
		ScreenEdgeCols: DefaultScreenEdgeCols,
		ScreenEdgeRows: DefaultScreenEdgeRows,
		EdgeBand:       DefaultEdgeBand,
	}
}

// Classify maps p to a zone relative to l, ignoring the pane named exclude.
func Classify(cfg Config, l layout.Layout, p layout.Point, exclude string) Zone {
	if !l.Screen.Contains(p) {
		return None()
	}
	if dir, ok := nearestEdge(l.Screen, p, cfg.ScreenEdgeCols, cfg.ScreenEdgeRows); ok {
		return ScreenSplit(dir)
	}
	pane, ok := l.PaneAt(p)
	if !ok || pane.ID == exclude {
		return None()
	}
	cols, rows := cfg.paneBand(pane.Rect)
	if dir, ok := nearestEdge(pane.Rect, p, cols, rows); ok {
		return EdgeSplit(pane.ID, dir)
	}
	return Swap(pane.ID)
}

func (cfg Config) paneBand(r layout.Rect) (cols, rows int) {
	if cfg.EdgeFraction > 0 {
		cols = max(1, int(math.Round(float64(r.Width)*cfg.EdgeFraction)))
		rows = max(1, int(math.Round(float64(r.Height)*cfg.EdgeFraction)))
		return cols, rows
	}
	return cfg.EdgeBand, cfg.EdgeBand
}

// nearestEdge returns the side of r closest to p among those whose offset is
// below the band for its axis.
func nearestEdge(r layout.Rect, p layout.Point, cols, rows int) (Direction, bool) {
	offsets := [...]int{
		Left:  p.X - r.X,
		Right: r.Right() - 1 - p.X,
		Above: p.Y - r.Y,
		Below: r.Bottom() - 1 - p.Y,
	}
	best, found := Left, false
	for _, dir := range directions {
		band := rows
		if dir.Horizontal() {
			band = cols
		}
		if offsets[dir] >= band {
			continue
		}
		if !found || offsets[dir] < offsets[best] {
			best, found = dir, true
		}
	}
	return best, found
}

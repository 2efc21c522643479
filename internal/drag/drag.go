// Package drag implements the lifecycle of a single pointer drag gesture.
package drag

import (
	"errors"

	"github.com/atomicstack/tmux-pane-mover/internal/layout"
	"github.com/atomicstack/tmux-pane-mover/internal/zone"
	"github.com/google/uuid"
)

// ErrNoPaneUnderPointer is returned by Press when the pointer is not over a pane.
var ErrNoPaneUnderPointer = errors.New("no pane under pointer")

type Phase int

const (
	Idle Phase = iota
	Armed
	Dragging
	// Dropped and Cancelled are only reported in an Outcome; the machine is
	// back in Idle by the time the caller sees them.
	Dropped
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	case Dragging:
		return "dragging"
	case Dropped:
		return "dropped"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

const DefaultThreshold = 2

type Config struct {
	// Threshold is the pointer travel, in cells, that turns a press into a drag.
	Threshold int
	Zones     zone.Config
}

func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold, Zones: zone.DefaultConfig()}
}

// State is a value snapshot of the machine for rendering.
type State struct {
	Phase   Phase
	Gesture string
	Pressed string
	Dragged string
	Zone    zone.Zone
	Origin  layout.Point
	Pointer layout.Point
	// Tracking is false until the first pointer event arrives.
	Tracking bool
}

// Outcome reports how a gesture ended. Phase is Dropped, Cancelled or Idle
// (a release before the drag threshold, or nothing to end).
type Outcome struct {
	Phase   Phase
	Gesture string
	Dragged string
	Zone    zone.Zone
}

// Machine is not safe for concurrent use; it belongs to the event loop.
type Machine struct {
	cfg   Config
	state State
}

func New(cfg Config) *Machine {
	return &Machine{cfg: cfg}
}

func (m *Machine) Config() Config { return m.cfg }

func (m *Machine) State() State { return m.state }

func (m *Machine) Phase() Phase { return m.state.Phase }

// Active reports whether a gesture is in progress.
func (m *Machine) Active() bool {
	return m.state.Phase == Armed || m.state.Phase == Dragging
}

// Press starts a new gesture at p. Any gesture already in progress is
// discarded first.
func (m *Machine) Press(l layout.Layout, p layout.Point) error {
	m.reset()
	m.track(p)
	pane, ok := l.PaneAt(p)
	if !ok {
		return ErrNoPaneUnderPointer
	}
	m.state.Phase = Armed
	m.state.Gesture = uuid.NewString()
	m.state.Pressed = pane.ID
	m.state.Origin = p
	return nil
}

// Move records pointer motion. It reports true when the gesture crossed the
// drag threshold on this event.
func (m *Machine) Move(l layout.Layout, p layout.Point) bool {
	m.track(p)
	switch m.state.Phase {
	case Armed:
		if distance(m.state.Origin, p) < m.cfg.Threshold {
			return false
		}
		m.state.Phase = Dragging
		m.state.Dragged = m.state.Pressed
		m.state.Zone = zone.Classify(m.cfg.Zones, l, p, m.state.Dragged)
		return true
	case Dragging:
		m.state.Zone = zone.Classify(m.cfg.Zones, l, p, m.state.Dragged)
	}
	return false
}

// Release ends the gesture at p. A drag is reclassified at the release point
// rather than reusing the last hover zone.
func (m *Machine) Release(l layout.Layout, p layout.Point) Outcome {
	m.track(p)
	out := Outcome{Phase: Idle, Gesture: m.state.Gesture}
	if m.state.Phase == Dragging {
		out.Phase = Dropped
		out.Dragged = m.state.Dragged
		out.Zone = zone.Classify(m.cfg.Zones, l, p, m.state.Dragged)
	}
	m.reset()
	return out
}

// Cancel aborts any gesture in progress. Events that still belong to the
// aborted gesture are ignored until the next Press.
func (m *Machine) Cancel() Outcome {
	if !m.Active() {
		return Outcome{Phase: Idle}
	}
	out := Outcome{Phase: Cancelled, Gesture: m.state.Gesture, Dragged: m.state.Dragged}
	m.reset()
	return out
}

func (m *Machine) reset() {
	m.state = State{Pointer: m.state.Pointer, Tracking: m.state.Tracking}
}

func (m *Machine) track(p layout.Point) {
	m.state.Pointer = p
	m.state.Tracking = true
}

// distance is the Chebyshev distance in cells.
func distance(a, b layout.Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

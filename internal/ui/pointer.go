package ui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/tmux-pane-mover/internal/drag"
	"github.com/atomicstack/tmux-pane-mover/internal/layout"
	"github.com/atomicstack/tmux-pane-mover/internal/logging"
	"github.com/atomicstack/tmux-pane-mover/internal/logging/events"
	"github.com/atomicstack/tmux-pane-mover/internal/move"
	"github.com/atomicstack/tmux-pane-mover/internal/overlay"
	"github.com/atomicstack/tmux-pane-mover/internal/zone"
)

func pointFrom(mouse tea.Mouse) layout.Point {
	return layout.Point{X: mouse.X, Y: mouse.Y}
}

// handleMouseClickMsg starts a gesture. The layout is re-queried first so a
// press never picks up a pane from a stale snapshot.
func (m *Model) handleMouseClickMsg(msg tea.Msg) tea.Cmd {
	click, ok := msg.(tea.MouseClickMsg)
	if !ok {
		return nil
	}
	mouse := click.Mouse()
	if mouse.Button != tea.MouseLeft {
		return nil
	}
	m.cancelDrag("press")
	if err := m.reload("press"); err != nil {
		return m.refreshFailed(err)
	}
	p := pointFrom(mouse)
	if err := m.machine.Press(m.view, p); err != nil {
		return nil
	}
	st := m.machine.State()
	events.Drag.Press(st.Gesture, st.Pressed, p.X, p.Y)
	return nil
}

func (m *Model) handleMouseMotionMsg(msg tea.Msg) tea.Cmd {
	motion, ok := msg.(tea.MouseMotionMsg)
	if !ok {
		return nil
	}
	p := pointFrom(motion.Mouse())
	if m.machine.Move(m.view, p) {
		st := m.machine.State()
		events.Drag.Start(st.Gesture, st.Dragged, p.X, p.Y)
		m.lastZone = zone.None()
	}
	if m.machine.Phase() != drag.Dragging {
		return nil
	}
	st := m.machine.State()
	if st.Zone != m.lastZone {
		m.lastZone = st.Zone
		events.Drag.Zone(st.Gesture, st.Zone.String())
	}
	return nil
}

func (m *Model) handleMouseReleaseMsg(msg tea.Msg) tea.Cmd {
	release, ok := msg.(tea.MouseReleaseMsg)
	if !ok {
		return nil
	}
	pressed := m.machine.State().Pressed
	out := m.machine.Release(m.view, pointFrom(release.Mouse()))
	m.lastZone = zone.None()
	switch out.Phase {
	case drag.Dropped:
		return m.drop(out)
	case drag.Idle:
		if out.Gesture != "" {
			events.Drag.Click(out.Gesture, pressed)
			m.metrics.RecordGesture(context.Background(), "click")
		}
	}
	return nil
}

// drop issues the command for a finished drag and re-queries the layout,
// whatever the command's result.
func (m *Model) drop(out drag.Outcome) tea.Cmd {
	ctx, span := m.telemetry.Start(context.Background(), "gesture.drop")
	defer span.End()

	events.Drag.Drop(out.Gesture, out.Dragged, out.Zone.String())
	command, ok := move.Translate(m.view, out.Dragged, out.Zone)
	if !ok {
		events.Command.Skip(out.Gesture, out.Zone.String())
		m.metrics.RecordGesture(ctx, "noop")
		return nil
	}
	m.metrics.RecordGesture(ctx, "drop")

	kind := command.Kind.String()
	events.Command.Issue(out.Gesture, kind, command.String())
	err := m.execute(ctx, command)
	events.Command.Result(out.Gesture, kind, err)
	m.metrics.RecordCommand(ctx, kind, err)

	var status tea.Cmd
	if err != nil {
		span.RecordError(err)
		logging.Error(err)
		status = m.setError(err)
	} else {
		status = m.setStatus(fmt.Sprintf("%s: %s", overlay.LabelFor(out.Zone), command))
	}
	if err := m.reload("command"); err != nil {
		return tea.Batch(status, m.refreshFailed(err))
	}
	return status
}

func (m *Model) execute(ctx context.Context, c move.Command) error {
	_, span := m.telemetry.Start(ctx, "tmux."+c.Kind.String())
	defer span.End()
	switch c.Kind {
	case move.KindSwap:
		return m.gateway.Swap(c.Source, c.Target)
	case move.KindSplit:
		return m.gateway.Split(c.Target, c.Direction, c.Source)
	case move.KindSplitFull:
		return m.gateway.SplitFull(c.Direction, c.Source, c.Target)
	}
	return fmt.Errorf("unsupported command %s", c.Kind)
}

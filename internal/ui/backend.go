package ui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/tmux-pane-mover/internal/backend"
	"github.com/atomicstack/tmux-pane-mover/internal/layout"
	"github.com/atomicstack/tmux-pane-mover/internal/logging/events"
	"github.com/atomicstack/tmux-pane-mover/internal/tmux"
	"github.com/atomicstack/tmux-pane-mover/internal/zone"
)

// Gateway is the slice of the tmux gateway the event loop needs.
type Gateway interface {
	QueryLayout() (layout.Layout, error)
	Swap(source, target string) error
	Split(target string, dir zone.Direction, source string) error
	SplitFull(dir zone.Direction, source, anchor string) error
}

// Watcher reports external layout changes. *backend.Watcher implements it.
type Watcher interface {
	Events() <-chan backend.Event
	Sync(signature string)
	Poke()
}

func waitForBackendEvent(w Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.quitting {
		return cmd
	}
	if m.watcher != nil {
		return tea.Batch(cmd, waitForBackendEvent(m.watcher))
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if evt.Err != nil {
		events.Layout.Error("watch", evt.Err)
		if tmux.IsSessionGone(evt.Err) {
			return m.quitSessionGone(evt.Err)
		}
		return m.setError(evt.Err)
	}
	if evt.Signature == m.layout.Signature {
		return nil
	}
	events.Layout.Change(evt.Signature)
	m.cancelDrag("layout-change")
	return m.refresh("change")
}

// syncWatcher tells the watcher about a signature the Model has applied.
func (m *Model) syncWatcher(signature string) {
	if m.watcher != nil && signature != "" {
		m.watcher.Sync(signature)
	}
}

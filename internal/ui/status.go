package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

type statusExpiredMsg struct {
	seq int
}

// statusTick schedules status expiry; tests replace it.
var statusTick = tea.Tick

func (m *Model) setStatus(text string) tea.Cmd {
	return m.showStatus(text, false)
}

func (m *Model) setError(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return m.showStatus(err.Error(), true)
}

// showStatus replaces the status row. Only the most recent message expires
// the row; older timers are ignored.
func (m *Model) showStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusErr = isErr
	m.statusSeq++
	seq := m.statusSeq
	return statusTick(m.statusTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

func (m *Model) handleStatusExpiredMsg(msg tea.Msg) tea.Cmd {
	expired, ok := msg.(statusExpiredMsg)
	if !ok || expired.seq != m.statusSeq {
		return nil
	}
	m.status = ""
	m.statusErr = false
	return nil
}

package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/tmux-pane-mover/internal/drag"
	"github.com/atomicstack/tmux-pane-mover/internal/overlay"
	"github.com/charmbracelet/x/ansi"
)

const emptyWindowText = "no panes in this window (r to refresh)"

// View renders the overlay. Mouse reporting covers all motion so hover works
// without a button held, and focus reports let a blur cancel a drag.
func (m *Model) View() tea.View {
	var view tea.View
	view.SetContent(m.render())
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true
	return view
}

func (m *Model) render() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}
	rows := make([]string, 0, 2)
	if h := m.canvasHeight(); h > 0 {
		rows = append(rows, m.canvas(h))
	}
	if m.showFooter {
		rows = append(rows, m.footer())
	}
	return strings.Join(rows, "\n")
}

func (m *Model) canvas(height int) string {
	if m.view.Empty() {
		lines := make([]string, height)
		lines[height/2] = ansi.Truncate(centre(emptyWindowText, m.width), m.width, "")
		return strings.Join(lines, "\n")
	}
	st := m.machine.State()
	prims := overlay.Render(m.view, st, m.machine.Config().Zones)
	return overlay.Paint(prims, m.width, height, m.styles)
}

// footer shows, in order of precedence: the status message, the action under
// the pointer during a drag, or the key help.
func (m *Model) footer() string {
	if m.status != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.Error
		}
		return style.Render(ansi.Truncate(m.status, m.width, "…"))
	}
	if st := m.machine.State(); st.Phase == drag.Dragging {
		text := fmt.Sprintf("moving %s", st.Dragged)
		if label := overlay.LabelFor(st.Zone); label != "" {
			text = fmt.Sprintf("%s: %s", text, label)
			if st.Zone.Target != "" {
				text = fmt.Sprintf("%s %s", text, st.Zone.Target)
			}
		}
		return m.styles.Footer.Render(ansi.Truncate(text, m.width, "…"))
	}
	return ansi.Truncate(m.help.View(m.keys), m.width, "")
}

func centre(s string, width int) string {
	pad := (width - ansi.StringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

package events

import "github.com/atomicstack/tmux-pane-mover/internal/logging"

type LayoutTracer struct{}

var Layout = LayoutTracer{}

func (LayoutTracer) Refresh(reason, window string, panes int) {
	logging.Trace("layout.refresh", map[string]interface{}{"reason": reason, "window": window, "panes": panes})
}

func (LayoutTracer) Change(signature string) {
	logging.Trace("layout.change", map[string]interface{}{"signature": signature})
}

func (LayoutTracer) Error(reason string, err error) {
	if err == nil {
		return
	}
	logging.Trace("layout.error", map[string]interface{}{"reason": reason, "error": err.Error()})
}

package events

import "github.com/atomicstack/tmux-pane-mover/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Title(pane, previous, title string) {
	logging.Trace("app.title", map[string]interface{}{"pane": pane, "previous": previous, "title": title})
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}

package events

import "github.com/atomicstack/tmux-pane-mover/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Issue(gesture, kind, label string) {
	logging.Trace("command.issue", map[string]interface{}{"gesture": gesture, "kind": kind, "label": label})
}

func (CommandTracer) Skip(gesture, zone string) {
	logging.Trace("command.skip", map[string]interface{}{"gesture": gesture, "zone": zone})
}

func (CommandTracer) Result(gesture, kind string, err error) {
	payload := map[string]interface{}{"gesture": gesture, "kind": kind, "ok": err == nil}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}

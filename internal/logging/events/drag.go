package events

import "github.com/atomicstack/tmux-pane-mover/internal/logging"

type DragTracer struct{}

var Drag = DragTracer{}

func (DragTracer) Press(gesture, pane string, x, y int) {
	logging.Trace("drag.press", map[string]interface{}{"gesture": gesture, "pane": pane, "x": x, "y": y})
}

func (DragTracer) Start(gesture, pane string, x, y int) {
	logging.Trace("drag.start", map[string]interface{}{"gesture": gesture, "pane": pane, "x": x, "y": y})
}

// Zone is emitted only when the classification under the pointer changes.
func (DragTracer) Zone(gesture, zone string) {
	logging.Trace("drag.zone", map[string]interface{}{"gesture": gesture, "zone": zone})
}

func (DragTracer) Drop(gesture, pane, zone string) {
	logging.Trace("drag.drop", map[string]interface{}{"gesture": gesture, "pane": pane, "zone": zone})
}

func (DragTracer) Cancel(gesture, reason string) {
	logging.Trace("drag.cancel", map[string]interface{}{"gesture": gesture, "reason": reason})
}

func (DragTracer) Click(gesture, pane string) {
	logging.Trace("drag.click", map[string]interface{}{"gesture": gesture, "pane": pane})
}

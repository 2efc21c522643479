// Package move turns a drop into the tmux operation it stands for.
package move

import (
	"fmt"

	"github.com/atomicstack/tmux-pane-mover/internal/layout"
	"github.com/atomicstack/tmux-pane-mover/internal/zone"
)

type Kind int

const (
	KindSwap Kind = iota + 1
	KindSplit
	KindSplitFull
)

func (k Kind) String() string {
	switch k {
	case KindSwap:
		return "swap"
	case KindSplit:
		return "split"
	case KindSplitFull:
		return "split-full"
	}
	return "unknown"
}

// Command is one tmux mutation. For KindSplitFull, Target is an anchor pane
// in the same window; the split spans the whole window regardless of it.
type Command struct {
	Kind      Kind
	Source    string
	Target    string
	Direction zone.Direction
}

func (c Command) String() string {
	switch c.Kind {
	case KindSwap:
		return fmt.Sprintf("swap %s with %s", c.Source, c.Target)
	case KindSplit:
		return fmt.Sprintf("move %s %s %s", c.Source, c.Direction, c.Target)
	case KindSplitFull:
		return fmt.Sprintf("move %s to full %s", c.Source, c.Direction)
	}
	return "noop"
}

// Translate maps a drop of dragged onto z. It returns false when there is
// nothing to send, including the self-target that a stale layout can produce.
func Translate(l layout.Layout, dragged string, z zone.Zone) (Command, bool) {
	if dragged == "" {
		return Command{}, false
	}
	switch z.Kind {
	case zone.KindNone:
		return Command{}, false
	case zone.KindSwap:
		if z.Target == "" || z.Target == dragged {
			return Command{}, false
		}
		return Command{Kind: KindSwap, Source: dragged, Target: z.Target}, true
	case zone.KindEdgeSplit:
		if z.Target == "" || z.Target == dragged {
			return Command{}, false
		}
		return Command{Kind: KindSplit, Source: dragged, Target: z.Target, Direction: z.Direction}, true
	case zone.KindScreenSplit:
		anchor, ok := anchorPane(l, dragged)
		if !ok {
			return Command{}, false
		}
		return Command{Kind: KindSplitFull, Source: dragged, Target: anchor, Direction: z.Direction}, true
	}
	return Command{}, false
}

func anchorPane(l layout.Layout, dragged string) (string, bool) {
	for _, pane := range l.Panes {
		if pane.ID != dragged {
			return pane.ID, true
		}
	}
	return "", false
}

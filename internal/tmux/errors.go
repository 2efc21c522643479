package tmux

import (
	"errors"
	"fmt"
	"strings"
)

// QueryError reports a failed read of server state. SessionGone is set when
// the server or the window being edited no longer exists.
type QueryError struct {
	Op          string
	Err         error
	SessionGone bool
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("tmux %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// CommandError reports a rejected mutation, with whatever tmux printed.
type CommandError struct {
	Args   []string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	cmd := strings.Join(e.Args, " ")
	if e.Output != "" {
		return fmt.Sprintf("tmux %s: %s", cmd, e.Output)
	}
	return fmt.Sprintf("tmux %s: %v", cmd, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// IsSessionGone reports whether err is a QueryError for a vanished server,
// session or window.
func IsSessionGone(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.SessionGone
}

var goneMarkers = []string{
	"no server running",
	"server exited",
	"lost server",
	"error connecting to",
	"can't find session",
	"can't find window",
	"can't find pane",
	"no current session",
}

func newQueryError(op string, err error) *QueryError {
	msg := strings.ToLower(err.Error())
	gone := false
	for _, marker := range goneMarkers {
		if strings.Contains(msg, marker) {
			gone = true
			break
		}
	}
	return &QueryError{Op: op, Err: err, SessionGone: gone}
}

package tmux

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/tmux-pane-mover/internal/layout"
	"github.com/atomicstack/tmux-pane-mover/internal/zone"
	"github.com/charmbracelet/x/ansi"
)

const (
	windowFormat    = "#{window_id}\t#{window_width}\t#{window_height}\t#{window_layout}"
	signatureFormat = "#{window_id}:#{window_layout}"
	paneFormat      = "#{pane_id}\t#{pane_left}\t#{pane_top}\t#{pane_width}\t#{pane_height}\t#{pane_active}\t#{pane_title}"

	titleWidth = 24
)

// Gateway reads and edits the window that contains the overlay pane. Queries
// go through the shared control-mode connection with an exec fallback;
// mutations always run the tmux binary so their output can be reported.
type Gateway struct {
	socket string
	self   string
}

// New returns a gateway for the server at socketPath. selfPane is the pane
// hosting the overlay ($TMUX_PANE) and selects the window to operate on.
func New(socketPath, selfPane string) *Gateway {
	return &Gateway{socket: socketPath, self: strings.TrimSpace(selfPane)}
}

// QueryLayout snapshots the current window and its panes.
func (g *Gateway) QueryLayout() (layout.Layout, error) {
	raw, err := g.display(g.self, windowFormat)
	if err != nil {
		return layout.Layout{}, newQueryError("display-message", err)
	}
	l, err := parseWindow(raw)
	if err != nil {
		return layout.Layout{}, &QueryError{Op: "display-message", Err: err}
	}
	lines, err := g.listPanes(l.Window)
	if err != nil {
		return layout.Layout{}, newQueryError("list-panes", err)
	}
	for _, line := range lines {
		pane, ok := parsePane(line)
		if !ok {
			continue
		}
		pane.Self = pane.ID == g.self
		l.Panes = append(l.Panes, pane)
	}
	if len(l.Panes) == 0 {
		return layout.Layout{}, newQueryError("list-panes", fmt.Errorf("can't find pane in window %s", l.Window))
	}
	return l, nil
}

// LayoutSignature returns a string that changes whenever the window's pane
// geometry changes or a different window becomes current.
func (g *Gateway) LayoutSignature() (string, error) {
	sig, err := g.display(g.self, signatureFormat)
	if err != nil {
		return "", newQueryError("display-message", err)
	}
	return sig, nil
}

func (g *Gateway) PaneTitle(pane string) (string, error) {
	title, err := g.display(pane, "#{pane_title}")
	if err != nil {
		return "", newQueryError("display-message", err)
	}
	return title, nil
}

func (g *Gateway) SetPaneTitle(pane, title string) error {
	args := []string{"select-pane", "-T", title}
	if pane != "" {
		args = []string{"select-pane", "-t", pane, "-T", title}
	}
	return g.run(args...)
}

// Swap exchanges the contents of two panes.
func (g *Gateway) Swap(source, target string) error {
	return g.run("swap-pane", "-s", source, "-t", target)
}

// Split moves source next to target on the dir side.
func (g *Gateway) Split(target string, dir zone.Direction, source string) error {
	return g.run(joinArgs(dir, false, source, target)...)
}

// SplitFull moves source to a full-width or full-height slot on the dir side
// of the window. anchor is any other pane of the same window.
func (g *Gateway) SplitFull(dir zone.Direction, source, anchor string) error {
	return g.run(joinArgs(dir, true, source, anchor)...)
}

func joinArgs(dir zone.Direction, full bool, source, target string) []string {
	args := []string{"join-pane", "-d"}
	if dir.Horizontal() {
		args = append(args, "-h")
	} else {
		args = append(args, "-v")
	}
	if dir.Before() {
		args = append(args, "-b")
	}
	if full {
		args = append(args, "-f")
	}
	return append(args, "-s", source, "-t", target)
}

func (g *Gateway) run(parts ...string) error {
	args := append(baseArgs(g.socket), parts...)
	out, err := runExecCommand("tmux", args...).CombinedOutput()
	if err != nil {
		return &CommandError{Args: parts, Output: strings.TrimSpace(string(out)), Err: err}
	}
	return nil
}

func (g *Gateway) display(target, format string) (string, error) {
	client, err := controlClient(g.socket)
	if err == nil {
		out, cerr := client.DisplayMessage(target, format)
		if cerr == nil && strings.TrimSpace(out) != "" {
			return strings.TrimRight(out, "\r\n"), nil
		}
		if cerr != nil {
			dropClient(client)
		}
	}
	args := append(baseArgs(g.socket), "display-message", "-p")
	if target != "" {
		args = append(args, "-t", target)
	}
	args = append(args, format)
	out, xerr := runExecCommand("tmux", args...).CombinedOutput()
	if xerr != nil {
		return "", execError(xerr, out)
	}
	return strings.TrimRight(string(out), "\r\n"), nil
}

func (g *Gateway) listPanes(window string) ([]string, error) {
	filter := fmt.Sprintf("#{==:#{window_id},%s}", window)
	client, err := controlClient(g.socket)
	if err == nil {
		lines, cerr := client.ListPanesFormat(window, filter, paneFormat)
		if cerr == nil && len(lines) > 0 {
			return lines, nil
		}
		if cerr != nil {
			dropClient(client)
		}
	}
	args := append(baseArgs(g.socket), "list-panes", "-t", window, "-F", paneFormat)
	out, xerr := runExecCommand("tmux", args...).CombinedOutput()
	if xerr != nil {
		return nil, execError(xerr, out)
	}
	text := strings.TrimSpace(string(out))
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

func execError(err error, out []byte) error {
	msg := strings.TrimSpace(string(out))
	if msg == "" {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func parseWindow(raw string) (layout.Layout, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), "\t", 4)
	if len(parts) < 4 {
		return layout.Layout{}, fmt.Errorf("unexpected window description %q", raw)
	}
	width, werr := strconv.Atoi(strings.TrimSpace(parts[1]))
	height, herr := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err := errors.Join(werr, herr); err != nil {
		return layout.Layout{}, fmt.Errorf("window size %q: %w", raw, err)
	}
	window := strings.TrimSpace(parts[0])
	return layout.Layout{
		Window:    window,
		Signature: window + ":" + strings.TrimSpace(parts[3]),
		Screen:    layout.Rect{Width: width, Height: height},
	}, nil
}

func parsePane(line string) (layout.Pane, bool) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.SplitN(line, "\t", 7)
	if len(parts) < 7 {
		return layout.Pane{}, false
	}
	nums := make([]int, 4)
	for i := range nums {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i+1]))
		if err != nil {
			return layout.Pane{}, false
		}
		nums[i] = n
	}
	id := strings.TrimSpace(parts[0])
	if id == "" {
		return layout.Pane{}, false
	}
	title := strings.TrimSpace(parts[6])
	if title == "" {
		title = id
	}
	return layout.Pane{
		ID:     id,
		Rect:   layout.Rect{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]},
		Active: strings.TrimSpace(parts[5]) == "1",
		Title:  ansi.Truncate(title, titleWidth, ""),
	}, true
}

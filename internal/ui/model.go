package ui

import (
	"context"
	"reflect"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/tmux-pane-mover/internal/drag"
	"github.com/atomicstack/tmux-pane-mover/internal/layout"
	"github.com/atomicstack/tmux-pane-mover/internal/logging/events"
	"github.com/atomicstack/tmux-pane-mover/internal/telemetry"
	"github.com/atomicstack/tmux-pane-mover/internal/theme"
	"github.com/atomicstack/tmux-pane-mover/internal/tmux"
	"github.com/atomicstack/tmux-pane-mover/internal/zone"
)

const defaultStatusTimeout = 3 * time.Second

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model. Gateway is required; everything else has a
// usable zero value.
type Options struct {
	Gateway Gateway
	Watcher Watcher
	// Initial is the layout queried at startup, in tmux coordinates.
	Initial       layout.Layout
	Drag          drag.Config
	ShowFooter    bool
	StatusTimeout time.Duration
	Telemetry     *telemetry.Telemetry
	Styles        *theme.Styles
}

// Model implements the Bubble Tea model for the pane overlay.
type Model struct {
	gateway   Gateway
	watcher   Watcher
	telemetry *telemetry.Telemetry
	metrics   *telemetry.Metrics
	styles    *theme.Styles

	layout   layout.Layout
	view     layout.Layout
	machine  *drag.Machine
	lastZone zone.Zone

	width      int
	height     int
	showFooter bool
	keys       keyMap
	help       help.Model

	status        string
	statusErr     bool
	statusSeq     int
	statusTimeout time.Duration

	quitting    bool
	sessionGone error

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the overlay model around opts.Gateway.
func NewModel(opts Options) *Model {
	dragCfg := opts.Drag
	if dragCfg == (drag.Config{}) {
		dragCfg = drag.DefaultConfig()
	}
	if dragCfg.Threshold < 1 {
		dragCfg.Threshold = drag.DefaultThreshold
	}
	statusTimeout := opts.StatusTimeout
	if statusTimeout <= 0 {
		statusTimeout = defaultStatusTimeout
	}
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	m := &Model{
		gateway:       opts.Gateway,
		watcher:       opts.Watcher,
		telemetry:     opts.Telemetry,
		styles:        styles,
		layout:        opts.Initial,
		machine:       drag.New(dragCfg),
		showFooter:    opts.ShowFooter,
		keys:          defaultKeyMap(),
		help:          help.New(),
		statusTimeout: statusTimeout,
	}
	if opts.Telemetry != nil {
		m.metrics = opts.Telemetry.Metrics
	}
	m.reproject()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForBackendEvent(m.watcher)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):     m.handleKeyMsg,
		reflect.TypeOf(tea.MouseClickMsg{}):   m.handleMouseClickMsg,
		reflect.TypeOf(tea.MouseMotionMsg{}):  m.handleMouseMotionMsg,
		reflect.TypeOf(tea.MouseReleaseMsg{}): m.handleMouseReleaseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(tea.FocusMsg{}):        m.handleFocusMsg,
		reflect.TypeOf(tea.BlurMsg{}):         m.handleBlurMsg,
		reflect.TypeOf(backendEventMsg{}):     m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):      m.handleBackendDoneMsg,
		reflect.TypeOf(statusExpiredMsg{}):    m.handleStatusExpiredMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.cancelDrag("quit")
		m.quitting = true
		events.App.Exit("key")
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Refresh):
		m.cancelDrag("refresh")
		return m.refresh("key")
	case key.Matches(keyMsg, m.keys.Cancel):
		m.cancelDrag("escape")
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	// Project the current layout now; the query below may fail.
	m.reproject()
	// Coordinates held by an in-flight gesture no longer match the viewport.
	m.cancelDrag("resize")
	return m.refresh("resize")
}

func (m *Model) handleFocusMsg(tea.Msg) tea.Cmd {
	if m.watcher != nil {
		m.watcher.Poke()
	}
	return nil
}

func (m *Model) handleBlurMsg(tea.Msg) tea.Cmd {
	m.cancelDrag("blur")
	return nil
}

// reload queries tmux and replaces both layouts. On error the previous
// layout is kept.
func (m *Model) reload(reason string) error {
	ctx, span := m.telemetry.Start(context.Background(), "layout.refresh")
	defer span.End()
	l, err := m.gateway.QueryLayout()
	m.metrics.RecordRefresh(ctx, reason, err)
	if err != nil {
		span.RecordError(err)
		events.Layout.Error(reason, err)
		return err
	}
	m.layout = l
	m.reproject()
	m.syncWatcher(l.Signature)
	events.Layout.Refresh(reason, l.Window, len(l.Panes))
	return nil
}

func (m *Model) refresh(reason string) tea.Cmd {
	if err := m.reload(reason); err != nil {
		return m.refreshFailed(err)
	}
	return nil
}

func (m *Model) refreshFailed(err error) tea.Cmd {
	if tmux.IsSessionGone(err) {
		return m.quitSessionGone(err)
	}
	return m.setError(err)
}

func (m *Model) quitSessionGone(err error) tea.Cmd {
	m.cancelDrag("session-gone")
	m.quitting = true
	m.sessionGone = err
	events.App.Exit("session-gone")
	return tea.Quit
}

func (m *Model) reproject() {
	m.view = m.layout.Project(m.width, m.canvasHeight())
}

func (m *Model) canvasHeight() int {
	h := m.height
	if m.showFooter {
		h--
	}
	return max(h, 0)
}

func (m *Model) cancelDrag(reason string) {
	out := m.machine.Cancel()
	if out.Phase != drag.Cancelled {
		return
	}
	m.lastZone = zone.None()
	events.Drag.Cancel(out.Gesture, reason)
	m.metrics.RecordGesture(context.Background(), "cancel")
}

// Layout returns the last layout queried from tmux.
func (m *Model) Layout() layout.Layout { return m.layout }

// Viewport returns the layout projected onto the drawing area.
func (m *Model) Viewport() layout.Layout { return m.view }

// DragState returns a snapshot of the gesture in progress.
func (m *Model) DragState() drag.State { return m.machine.State() }

// Status returns the status row text and whether it reports an error.
func (m *Model) Status() (string, bool) { return m.status, m.statusErr }

// SessionGone returns the error that ended the program because the tmux
// session went away, or nil.
func (m *Model) SessionGone() error { return m.sessionGone }

package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/tmux-pane-mover/internal/backend"
	"github.com/atomicstack/tmux-pane-mover/internal/drag"
	"github.com/atomicstack/tmux-pane-mover/internal/logging"
	"github.com/atomicstack/tmux-pane-mover/internal/logging/events"
	"github.com/atomicstack/tmux-pane-mover/internal/telemetry"
	"github.com/atomicstack/tmux-pane-mover/internal/tmux"
	"github.com/atomicstack/tmux-pane-mover/internal/ui"
)

// ErrNoSession is returned when there is no tmux session to attach the
// overlay to.
var ErrNoSession = errors.New("not running inside a tmux session")

// OverlayTitle is the title the hosting pane carries while the overlay runs.
const OverlayTitle = "tmux-pane-mover"

const (
	defaultPollInterval = 500 * time.Millisecond
	shutdownTimeout     = 5 * time.Second
)

// Config describes user-provided application options.
type Config struct {
	SocketPath    string
	ShowFooter    bool
	Drag          drag.Config
	PollInterval  time.Duration
	StatusTimeout time.Duration
	Telemetry     Telemetry
}

// Telemetry holds the OTLP exporter settings. An empty Endpoint disables
// export.
type Telemetry struct {
	Endpoint string
	Headers  string
}

type gateway interface {
	ui.Gateway
	backend.Source
	PaneTitle(pane string) (string, error)
	SetPaneTitle(pane, title string) error
}

var (
	getenv     = os.Getenv
	newGateway = func(socketPath, selfPane string) gateway {
		return tmux.New(socketPath, selfPane)
	}
	runProgram = func(model *ui.Model) error {
		_, err := tea.NewProgram(model).Run()
		return err
	}
)

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	if getenv("TMUX") == "" && cfg.SocketPath == "" {
		return ErrNoSession
	}
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	self := strings.TrimSpace(getenv("TMUX_PANE"))
	gw := newGateway(socketPath, self)
	defer tmux.Shutdown()

	previous, err := gw.PaneTitle(self)
	if err != nil {
		if tmux.IsSessionGone(err) {
			return fmt.Errorf("%w: %v", ErrNoSession, err)
		}
		return fmt.Errorf("read pane title: %w", err)
	}
	initial, err := gw.QueryLayout()
	if err != nil {
		return fmt.Errorf("query layout: %w", err)
	}

	if err := gw.SetPaneTitle(self, OverlayTitle); err != nil {
		logging.Error(err)
	} else {
		events.App.Title(self, previous, OverlayTitle)
		defer restoreTitle(gw, self, previous)
	}

	tel, err := telemetry.Init(context.Background(), telemetry.Config{
		Endpoint: cfg.Telemetry.Endpoint,
		Headers:  cfg.Telemetry.Headers,
	})
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		tel.Shutdown(ctx)
	}()

	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	watcher := backend.NewWatcher(gw, interval, initial.Signature)
	defer watcher.Stop()

	model := ui.NewModel(ui.Options{
		Gateway:       gw,
		Watcher:       watcher,
		Initial:       initial,
		Drag:          cfg.Drag,
		ShowFooter:    cfg.ShowFooter,
		StatusTimeout: cfg.StatusTimeout,
		Telemetry:     tel,
	})
	err = runProgram(model)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func restoreTitle(gw gateway, pane, title string) {
	if err := gw.SetPaneTitle(pane, title); err != nil {
		logging.Error(fmt.Errorf("restore pane title: %w", err))
		return
	}
	events.App.Title(pane, OverlayTitle, title)
}

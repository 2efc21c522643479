package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/tmux-pane-mover/internal/app"
	"github.com/atomicstack/tmux-pane-mover/internal/config"
	"github.com/atomicstack/tmux-pane-mover/internal/logging"
	"github.com/atomicstack/tmux-pane-mover/internal/logging/events"
	"github.com/atomicstack/tmux-pane-mover/internal/telemetry"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

const (
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ()))
}

// run executes the root command and returns the process exit code.
func run(args, environ []string) int {
	code := exitConfig
	cmd := newRootCmd(args, environ, &code)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return code
	}
	return 0
}

func newRootCmd(args, environ []string, code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tmux-pane-mover",
		Short: "Rearrange tmux panes by dragging them with the mouse",
		Long: `tmux-pane-mover draws every pane of the current tmux window and lets you
pick one up with the mouse. Dropping it on another pane's centre swaps the
two, dropping it on a pane's border band moves it next to that pane, and
dropping it on the outer screen strip gives it a full-width or full-height
slot.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts := config.Register(cmd.Flags(), environ)
	cmd.RunE = func(*cobra.Command, []string) error {
		cfg := opts.Config(args)
		if err := config.Validate(cfg); err != nil {
			*code = exitConfig
			return fmt.Errorf("configuration error: %w", err)
		}
		logging.Configure(cfg.Logging.FilePath)
		logging.SetTraceEnabled(cfg.Logging.Trace)
		telemetry.Version = version

		traceStartup(cfg)

		*code = exitRuntime
		err := app.Run(cfg.App)
		if err != nil && !errors.Is(err, app.ErrNoSession) {
			logging.Error(err)
		}
		return err
	}
	return cmd
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"version": version,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tmux"] = os.Getenv("TMUX")
	payload["tmuxPane"] = os.Getenv("TMUX_PANE")
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and
// dimensions. Mouse reporting only works when one of them is a terminal.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}

package config

import (
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/tmux-pane-mover/internal/drag"
	"github.com/atomicstack/tmux-pane-mover/internal/zone"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Drag != drag.DefaultConfig() {
		t.Fatalf("unexpected drag config %#v", cfg.App.Drag)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("footer should default on")
	}
	if cfg.App.PollInterval != DefaultPollInterval || cfg.App.StatusTimeout != DefaultStatusTimeout {
		t.Fatalf("unexpected intervals %v %v", cfg.App.PollInterval, cfg.App.StatusTimeout)
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("unexpected logging %#v", cfg.Logging)
	}
}

func TestLoadArgsEnvironment(t *testing.T) {
	environ := []string{
		"TMUX_PANE_MOVER_SOCKET=/tmp/env.sock",
		"TMUX_PANE_MOVER_TRACE=1",
		"TMUX_PANE_MOVER_SCREEN_EDGE_COLS=4",
		"TMUX_PANE_MOVER_SCREEN_EDGE_ROWS=2",
		"TMUX_PANE_MOVER_EDGE_FRACTION=0.28",
		"TMUX_PANE_MOVER_POLL_INTERVAL=1s",
		"TMUX_PANE_MOVER_FOOTER=false",
		"OTEL_EXPORTER_OTLP_ENDPOINT=http://collector:4318",
		"MALFORMED",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	want := zone.Config{ScreenEdgeCols: 4, ScreenEdgeRows: 2, EdgeBand: zone.DefaultEdgeBand, EdgeFraction: 0.28}
	if cfg.App.Drag.Zones != want {
		t.Fatalf("zones = %#v, want %#v", cfg.App.Drag.Zones, want)
	}
	if cfg.App.SocketPath != "/tmp/env.sock" || !cfg.Logging.Trace || cfg.App.ShowFooter {
		t.Fatalf("unexpected config %#v", cfg)
	}
	if cfg.App.PollInterval != time.Second {
		t.Fatalf("unexpected poll interval %v", cfg.App.PollInterval)
	}
	if cfg.App.Telemetry.Endpoint != "http://collector:4318" {
		t.Fatalf("expected standard OTEL endpoint fallback, got %q", cfg.App.Telemetry.Endpoint)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{"TMUX_PANE_MOVER_EDGE_BAND=5", "TMUX_PANE_MOVER_OTEL_ENDPOINT=http://a", "OTEL_EXPORTER_OTLP_ENDPOINT=http://b"}
	cfg, err := LoadArgs([]string{"--edge-band", "1", "--drag-threshold=4", "--trace"}, environ)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Drag.Zones.EdgeBand != 1 || cfg.App.Drag.Threshold != 4 || !cfg.Logging.Trace {
		t.Fatalf("flags not applied: %#v", cfg)
	}
	if cfg.App.Telemetry.Endpoint != "http://a" {
		t.Fatalf("tool-specific endpoint should win, got %q", cfg.App.Telemetry.Endpoint)
	}
	if cfg.Flags["edgeBand"] != "1" || cfg.Flags["dragThreshold"] != "4" {
		t.Fatalf("unexpected flag record %#v", cfg.Flags)
	}
	if strings.Join(cfg.Args, " ") != "--edge-band 1 --drag-threshold=4 --trace" {
		t.Fatalf("unexpected args %v", cfg.Args)
	}
}

func TestLoadArgsInvalidEnvironmentFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"TMUX_PANE_MOVER_EDGE_BAND=wide", "TMUX_PANE_MOVER_POLL_INTERVAL=soon"})
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Drag.Zones.EdgeBand != zone.DefaultEdgeBand || cfg.App.PollInterval != DefaultPollInterval {
		t.Fatalf("expected defaults, got %#v", cfg.App)
	}
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	cases := map[string][]string{
		"negative band":      {"--edge-band", "-1"},
		"negative strip":     {"--screen-edge-cols=-2"},
		"zero threshold":     {"--drag-threshold", "0"},
		"fraction too large": {"--edge-fraction", "0.5"},
		"negative fraction":  {"--edge-fraction", "-0.1"},
		"zero poll":          {"--poll-interval", "0s"},
		"zero status":        {"--status-timeout", "0s"},
		"unknown flag":       {"--width", "80"},
		"positional":         {"extra"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadArgs(args, nil); err == nil {
				t.Fatalf("expected error for %v", args)
			}
		})
	}
}

package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tmux-pane-mover/internal/app"
	"github.com/atomicstack/tmux-pane-mover/internal/drag"
	"github.com/atomicstack/tmux-pane-mover/internal/zone"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSocketPath     = "TMUX_PANE_MOVER_SOCKET"
	envShowFooter     = "TMUX_PANE_MOVER_FOOTER"
	envTrace          = "TMUX_PANE_MOVER_TRACE"
	envLogFile        = "TMUX_PANE_MOVER_LOG_FILE"
	envScreenEdgeCols = "TMUX_PANE_MOVER_SCREEN_EDGE_COLS"
	envScreenEdgeRows = "TMUX_PANE_MOVER_SCREEN_EDGE_ROWS"
	envEdgeBand       = "TMUX_PANE_MOVER_EDGE_BAND"
	envEdgeFraction   = "TMUX_PANE_MOVER_EDGE_FRACTION"
	envDragThreshold  = "TMUX_PANE_MOVER_DRAG_THRESHOLD"
	envPollInterval   = "TMUX_PANE_MOVER_POLL_INTERVAL"
	envStatusTimeout  = "TMUX_PANE_MOVER_STATUS_TIMEOUT"
	envOTELEndpoint   = "TMUX_PANE_MOVER_OTEL_ENDPOINT"
	envOTELHeaders    = "TMUX_PANE_MOVER_OTEL_HEADERS"

	// standard OpenTelemetry variables, used when the tool-specific ones are unset
	envStdOTELEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envStdOTELHeaders  = "OTEL_EXPORTER_OTLP_HEADERS"

	DefaultPollInterval  = 500 * time.Millisecond
	DefaultStatusTimeout = 3 * time.Second
)

// Options holds the flag destinations bound by Register.
type Options struct {
	fs   *pflag.FlagSet
	args []string

	socket         string
	footer         bool
	trace          bool
	logFile        string
	screenEdgeCols int
	screenEdgeRows int
	edgeBand       int
	edgeFraction   float64
	dragThreshold  int
	pollInterval   time.Duration
	statusTimeout  time.Duration
	otelEndpoint   string
	otelHeaders    string
}

// Register binds every option to fs. Defaults come from environ so that an
// explicit flag always wins over the environment.
func Register(fs *pflag.FlagSet, environ []string) *Options {
	env := parseEnv(environ)
	zones := zone.DefaultConfig()
	o := &Options{fs: fs}

	fs.StringVar(&o.socket, "socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	fs.BoolVar(&o.footer, "footer", envOrBool(env, envShowFooter, true), "show the key hint and status row")
	fs.BoolVar(&o.trace, "trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	fs.StringVar(&o.logFile, "log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	fs.IntVar(&o.screenEdgeCols, "screen-edge-cols", envOrInt(env, envScreenEdgeCols, zones.ScreenEdgeCols), "width in cells of the left/right full-height split strips")
	fs.IntVar(&o.screenEdgeRows, "screen-edge-rows", envOrInt(env, envScreenEdgeRows, zones.ScreenEdgeRows), "height in cells of the top/bottom full-width split strips")
	fs.IntVar(&o.edgeBand, "edge-band", envOrInt(env, envEdgeBand, zones.EdgeBand), "thickness in cells of a pane's edge split band")
	fs.Float64Var(&o.edgeFraction, "edge-fraction", envOrFloat(env, envEdgeFraction, zones.EdgeFraction), "edge band as a fraction of the pane size (overrides --edge-band when > 0)")
	fs.IntVar(&o.dragThreshold, "drag-threshold", envOrInt(env, envDragThreshold, drag.DefaultThreshold), "pointer travel in cells before a press becomes a drag")
	fs.DurationVar(&o.pollInterval, "poll-interval", envOrDuration(env, envPollInterval, DefaultPollInterval), "how often to check the window for external layout changes")
	fs.DurationVar(&o.statusTimeout, "status-timeout", envOrDuration(env, envStatusTimeout, DefaultStatusTimeout), "how long status messages stay visible")
	fs.StringVar(&o.otelEndpoint, "otel-endpoint", envOrDefault(env, envOTELEndpoint, envOrDefault(env, envStdOTELEndpoint, "")), "OTLP/HTTP base URL for traces and metrics (disabled when empty)")
	fs.StringVar(&o.otelHeaders, "otel-headers", envOrDefault(env, envOTELHeaders, envOrDefault(env, envStdOTELHeaders, "")), "comma-separated key=value headers for the OTLP exporter")

	return o
}

// Config assembles the parsed flag values. args is the raw argument list
// recorded for tracing.
func (o *Options) Config(args []string) Config {
	return Config{
		App: app.Config{
			SocketPath: o.socket,
			ShowFooter: o.footer,
			Drag: drag.Config{
				Threshold: o.dragThreshold,
				Zones: zone.Config{
					ScreenEdgeCols: o.screenEdgeCols,
					ScreenEdgeRows: o.screenEdgeRows,
					EdgeBand:       o.edgeBand,
					EdgeFraction:   o.edgeFraction,
				},
			},
			PollInterval:  o.pollInterval,
			StatusTimeout: o.statusTimeout,
			Telemetry: app.Telemetry{
				Endpoint: o.otelEndpoint,
				Headers:  o.otelHeaders,
			},
		},
		Logging: Logging{
			FilePath: o.logFile,
			Trace:    o.trace,
		},
		Flags: map[string]string{
			"socket":         o.socket,
			"footer":         strconv.FormatBool(o.footer),
			"trace":          strconv.FormatBool(o.trace),
			"logFile":        o.logFile,
			"screenEdgeCols": strconv.Itoa(o.screenEdgeCols),
			"screenEdgeRows": strconv.Itoa(o.screenEdgeRows),
			"edgeBand":       strconv.Itoa(o.edgeBand),
			"edgeFraction":   strconv.FormatFloat(o.edgeFraction, 'g', -1, 64),
			"dragThreshold":  strconv.Itoa(o.dragThreshold),
			"pollInterval":   o.pollInterval.String(),
			"statusTimeout":  o.statusTimeout.String(),
			"otelEndpoint":   o.otelEndpoint,
		},
		Args: append([]string(nil), args...),
	}
}

// LoadArgs parses args against a fresh flag set and validates the result.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("tmux-pane-mover", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := Register(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	cfg := opts.Config(args)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects option combinations the classifier and poller cannot use.
func Validate(cfg Config) error {
	a := cfg.App
	z := a.Drag.Zones
	checks := []struct {
		name  string
		value int
		min   int
	}{
		{"screen-edge-cols", z.ScreenEdgeCols, 0},
		{"screen-edge-rows", z.ScreenEdgeRows, 0},
		{"edge-band", z.EdgeBand, 0},
		{"drag-threshold", a.Drag.Threshold, 1},
	}
	for _, c := range checks {
		if c.value < c.min {
			return fmt.Errorf("%s must be >= %d (got %d)", c.name, c.min, c.value)
		}
	}
	if z.EdgeFraction < 0 || z.EdgeFraction >= 0.5 {
		return fmt.Errorf("edge-fraction must be in [0, 0.5) (got %g)", z.EdgeFraction)
	}
	if a.PollInterval <= 0 {
		return fmt.Errorf("poll-interval must be positive (got %s)", a.PollInterval)
	}
	if a.StatusTimeout <= 0 {
		return fmt.Errorf("status-timeout must be positive (got %s)", a.StatusTimeout)
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && v != "" {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

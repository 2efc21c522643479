package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "tmux-pane-mover"

// Metrics holds the metric instruments. All counters are cumulative.
type Metrics struct {
	// Gestures partitioned by outcome: drop, click, cancel.
	Gestures metric.Int64Counter
	// Commands partitioned by kind and result.
	Commands metric.Int64Counter
	// Refreshes partitioned by reason and result.
	Refreshes metric.Int64Counter
}

// NewMetrics creates all instruments against the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.Gestures, err = meter.Int64Counter("gestures",
		metric.WithDescription("Pointer gestures partitioned by outcome"))
	if err != nil {
		return nil, err
	}

	m.Commands, err = meter.Int64Counter("commands",
		metric.WithDescription("tmux commands issued on drop, by kind and result"))
	if err != nil {
		return nil, err
	}

	m.Refreshes, err = meter.Int64Counter("layout.refreshes",
		metric.WithDescription("Layout queries by reason and result"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Metrics) RecordGesture(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.Gestures.Add(ctx, 1, metric.WithAttributes(attribute.String("gesture.outcome", outcome)))
}

func (m *Metrics) RecordCommand(ctx context.Context, kind string, err error) {
	if m == nil {
		return
	}
	m.Commands.Add(ctx, 1, metric.WithAttributes(
		attribute.String("command.kind", kind),
		attribute.String("command.result", result(err)),
	))
}

func (m *Metrics) RecordRefresh(ctx context.Context, reason string, err error) {
	if m == nil {
		return
	}
	m.Refreshes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("refresh.reason", reason),
		attribute.String("refresh.result", result(err)),
	))
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

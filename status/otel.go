package status

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/arena-fighter/status"

// Meter returns the package meter from the global provider
// The global provider is a no-op unless the process installs one
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Bridge exports the registry as OpenTelemetry observable gauges
// Every Ints and Floats entry is observed under its key attribute at collection time
type Bridge struct {
	reg    metric.Registration
	ints   metric.Int64ObservableGauge
	floats metric.Float64ObservableGauge
}

// NewBridge registers the gauges and the collection callback on m
func NewBridge(r *Registry, m metric.Meter) (*Bridge, error) {
	b := &Bridge{}

	var err error
	b.ints, err = m.Int64ObservableGauge(
		"arena.status.int",
		metric.WithDescription("Integer simulation counters keyed by metric name"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating int gauge: %w", err)
	}

	b.floats, err = m.Float64ObservableGauge(
		"arena.status.float",
		metric.WithDescription("Float simulation gauges keyed by metric name"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating float gauge: %w", err)
	}

	b.reg, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			for key, n := range r.Ints.All() {
				o.ObserveInt64(b.ints, n.Load(), metric.WithAttributes(attribute.String("key", key)))
			}
			for key, g := range r.Floats.All() {
				o.ObserveFloat64(b.floats, g.Load(), metric.WithAttributes(attribute.String("key", key)))
			}
			return nil
		},
		b.ints, b.floats,
	)
	if err != nil {
		return nil, fmt.Errorf("registering status callback: %w", err)
	}
	return b, nil
}

// Close unregisters the collection callback
func (b *Bridge) Close() error {
	if b.reg == nil {
		return nil
	}
	return b.reg.Unregister()
}

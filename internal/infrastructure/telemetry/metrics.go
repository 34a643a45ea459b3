// Package telemetry holds the OpenTelemetry meter provider of the process.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"portfolio/internal/ports/output"
)

var _ output.CounterReader = (*Metrics)(nil)

// Metrics is an in-process meter provider whose counters can be read back
// through a manual reader.
type Metrics struct {
	provider *sdkmetric.MeterProvider
	reader   *sdkmetric.ManualReader
}

// NewMetrics creates a meter provider backed by a manual reader.
func NewMetrics(opts ...sdkmetric.Option) *Metrics {
	reader := sdkmetric.NewManualReader()
	opts = append(opts, sdkmetric.WithReader(reader))
	return &Metrics{
		provider: sdkmetric.NewMeterProvider(opts...),
		reader:   reader,
	}
}

// Meter returns the named meter.
func (m *Metrics) Meter(name string) metric.Meter {
	return m.provider.Meter(name)
}

// CounterTotals collects the int64 counter name and sums its data points
// by the value of the attribute key. Points without the attribute are
// summed under "".
func (m *Metrics) CounterTotals(ctx context.Context, name, key string) (map[string]int64, error) {
	var rm metricdata.ResourceMetrics
	if err := m.reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("collect metrics: %w", err)
	}

	totals := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, mt := range sm.Metrics {
			if mt.Name != name {
				continue
			}
			sum, ok := mt.Data.(metricdata.Sum[int64])
			if !ok {
				return nil, fmt.Errorf("metric %s is %T, not an int64 sum", name, mt.Data)
			}
			for _, dp := range sum.DataPoints {
				label := ""
				if v, ok := dp.Attributes.Value(attribute.Key(key)); ok {
					label = v.Emit()
				}
				totals[label] += dp.Value
			}
		}
	}
	return totals, nil
}

// Shutdown flushes and stops the provider.
func (m *Metrics) Shutdown(ctx context.Context) error {
	return m.provider.Shutdown(ctx)
}

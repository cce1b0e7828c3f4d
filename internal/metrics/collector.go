// Package metrics provides the allocation engine's metrics collectors.
package metrics

import "allocation-engine-backend/internal/allocation"

// Collector is everything the services report
type Collector interface {
	allocation.MetricsCollector
	RecordQAAllocation(accepted, rejected int)
}

var (
	_ Collector = (*NopMetrics)(nil)
	_ Collector = (*PrometheusCollector)(nil)
)

package metrics

import "allocation-engine-backend/internal/allocation"

// NopMetrics discards every observation. Used when METRICS_ENABLED=false and in tests.
type NopMetrics struct{}

var _ allocation.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordRequest discards the request observation.
func (n *NopMetrics) RecordRequest(_ /* mode */, _ /* outcome */ string, _ /* seconds */ float64) {
	// No-op
}

// RecordBatch discards the batch observation.
func (n *NopMetrics) RecordBatch(_ /* result */ string) {
	// No-op
}

// RecordQAAllocation discards the QA allocation observation.
func (n *NopMetrics) RecordQAAllocation(_ /* accepted */, _ /* rejected */ int) {
	// No-op
}

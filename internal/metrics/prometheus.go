package metrics

import (
	"sync"

	"allocation-engine-backend/internal/allocation"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name
const DefaultNamespace = "allocation"

// PrometheusCollector records allocation engine activity in Prometheus.
// Collectors are created and registered on first use.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	batches         *prometheus.CounterVec
	qaTestCases     *prometheus.CounterVec
}

var _ allocation.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a collector registering into reg (prometheus.DefaultRegisterer if nil)
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "requests_total",
			Help:      "Allocation service requests by mode and outcome (success|failure).",
		}, []string{"mode", "outcome"})

		p.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Name:      "request_duration_seconds",
			Help:      "Latency of allocation service requests in seconds by mode.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 14), // 5ms .. ~41s
		}, []string{"mode"})

		p.batches = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "batches_total",
			Help:      "Allocation batches by result (complete|partial|failed|cancelled).",
		}, []string{"result"})

		p.qaTestCases = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "qa_test_cases_total",
			Help:      "Test cases offered for QA allocation by result (accepted|rejected).",
		}, []string{"result"})

		p.reg.MustRegister(p.requests)
		p.reg.MustRegister(p.requestDuration)
		p.reg.MustRegister(p.batches)
		p.reg.MustRegister(p.qaTestCases)
	})
}

// RecordRequest counts one allocation service request and observes its latency
func (p *PrometheusCollector) RecordRequest(mode, outcome string, seconds float64) {
	p.ensureRegistered()
	p.requests.WithLabelValues(mode, outcome).Inc()
	p.requestDuration.WithLabelValues(mode).Observe(seconds)
}

// RecordBatch counts one finished batch
func (p *PrometheusCollector) RecordBatch(result string) {
	p.ensureRegistered()
	p.batches.WithLabelValues(result).Inc()
}

// RecordQAAllocation counts accepted and rejected test cases of a QA allocation
func (p *PrometheusCollector) RecordQAAllocation(accepted, rejected int) {
	p.ensureRegistered()
	p.qaTestCases.WithLabelValues("accepted").Add(float64(accepted))
	p.qaTestCases.WithLabelValues("rejected").Add(float64(rejected))
}

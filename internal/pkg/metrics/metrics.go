package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors exposed on /metrics.
type Metrics struct {
	httpRequestsTotal *prometheus.CounterVec
	statsComputed     prometheus.Counter
	payrollComputed   prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		statsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "monthly_stats_computed_total",
			Help: "Total number of monthly stats aggregations",
		}),
		payrollComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "payroll_records_computed_total",
			Help: "Total number of salary records computed and persisted",
		}),
	}
	reg.MustRegister(m.httpRequestsTotal, m.statsComputed, m.payrollComputed)
	return m
}

func (m *Metrics) ObserveRequest(method, path, status string) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
}

func (m *Metrics) IncStatsComputed() {
	if m == nil {
		return
	}
	m.statsComputed.Inc()
}

func (m *Metrics) IncPayrollComputed() {
	if m == nil {
		return
	}
	m.payrollComputed.Inc()
}

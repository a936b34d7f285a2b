package health

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vietddude/nftplatform/internal/core/domain"
)

type probeMetrics struct {
	// probes tracks probe outcomes by result
	probes *prometheus.CounterVec

	// latency tracks ledger info query latency
	latency prometheus.Histogram

	// lastLedgerVersion tracks the most recent ledger version seen
	lastLedgerVersion prometheus.Gauge
}

func newProbeMetrics(reg prometheus.Registerer) *probeMetrics {
	factory := promauto.With(reg)
	return &probeMetrics{
		probes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nftplatform_probe_total",
				Help: "Total number of node connectivity probes",
			},
			[]string{"result"},
		),
		latency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nftplatform_probe_duration_seconds",
				Help:    "Ledger info query latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		lastLedgerVersion: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "nftplatform_ledger_version",
				Help: "Latest ledger version reported by the node",
			},
		),
	}
}

func (m *probeMetrics) observe(r domain.ConnectionResult) {
	m.latency.Observe(r.Latency.Seconds())
	if !r.Connected() {
		m.probes.WithLabelValues("unreachable").Inc()
		return
	}
	m.probes.WithLabelValues("reachable").Inc()
	if r.Ledger != nil {
		m.lastLedgerVersion.Set(float64(r.Ledger.LedgerVersion))
	}
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus implements shared.Metrics. It registers on the given registerer
// so tests can use a fresh registry.
type Prometheus struct {
	autoReleases prometheus.Counter
	scanFailures prometheus.Counter
	scanDuration prometheus.Histogram
	transitions  *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Prometheus {
	m := &Prometheus{
		autoReleases: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fieldservice_auto_releases_total",
			Help: "Assigned bookings released after the response window elapsed.",
		}),
		scanFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fieldservice_expiry_scan_failures_total",
			Help: "Per-booking failures during expiry scans.",
		}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fieldservice_expiry_scan_duration_seconds",
			Help:    "Duration of a full expiry scan.",
			Buckets: prometheus.DefBuckets,
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fieldservice_booking_transitions_total",
			Help: "Committed booking state transitions.",
		}, []string{"transition"}),
	}
	reg.MustRegister(m.autoReleases, m.scanFailures, m.scanDuration, m.transitions)
	return m
}

func (m *Prometheus) BookingTransition(transition string) {
	m.transitions.WithLabelValues(transition).Inc()
}

func (m *Prometheus) AutoReleased() { m.autoReleases.Inc() }
func (m *Prometheus) ScanFailed()   { m.scanFailures.Inc() }

func (m *Prometheus) ScanDuration(d time.Duration) {
	m.scanDuration.Observe(d.Seconds())
}

package session

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts refresh outcomes, queued requests and forced logouts.
// A logout the user asked for is not counted.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	refreshes     *prometheus.CounterVec
	queued        prometheus.Counter
	forcedLogouts prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mentorly",
			Subsystem: "session",
			Name:      "refresh_total",
			Help:      "Token refresh calls by outcome.",
		}, []string{"outcome"}),
		queued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mentorly",
			Subsystem: "session",
			Name:      "queued_requests_total",
			Help:      "Requests parked while a refresh was in flight.",
		}),
		forcedLogouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mentorly",
			Subsystem: "session",
			Name:      "forced_logouts_total",
			Help:      "Sessions cleared because the token could not be renewed.",
		}),
	}
	reg.MustRegister(m.refreshes, m.queued, m.forcedLogouts)
	return m
}

func (m *Metrics) refreshed(ok bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.refreshes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) parked() {
	if m == nil {
		return
	}
	m.queued.Inc()
}

func (m *Metrics) loggedOut() {
	if m == nil {
		return
	}
	m.forcedLogouts.Inc()
}

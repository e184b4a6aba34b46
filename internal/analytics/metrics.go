package analytics

import "github.com/prometheus/client_golang/prometheus"

var (
	eventsEmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_events_emitted_total",
			Help: "Total number of analytics events pushed to the queue",
		},
		[]string{"event"},
	)

	eventsSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_events_skipped_total",
			Help: "Total number of analytics emissions skipped before queuing",
		},
		[]string{"event", "reason"},
	)
)

func init() {
	prometheus.MustRegister(eventsEmitted, eventsSkipped)
}

package textanalytics

import "github.com/prometheus/client_golang/prometheus"

// Outcome label values for upstream collectors.
const (
	outcomeSuccess        = "success"
	outcomeHTTPError      = "http_error"
	outcomeMalformed      = "malformed"
	outcomeTransportError = "transport_error"
	outcomeConfigError    = "config_error"
)

var (
	// upstreamReqs counts sentiment calls by outcome.
	upstreamReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_upstream_requests_total",
			Help: "Total number of calls to the sentiment provider, by outcome.",
		},
		[]string{"outcome"},
	)

	// upstreamLat records provider round-trip time in seconds.
	upstreamLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sentiment_upstream_request_duration_seconds",
			Help:    "Duration of calls to the sentiment provider in seconds.",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"outcome"},
	)

	// documentsTotal counts documents forwarded, including failed batches.
	documentsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_documents_total",
			Help: "Total number of documents forwarded to the sentiment provider.",
		},
	)
)

func init() {
	prometheus.MustRegister(upstreamReqs, upstreamLat, documentsTotal)
}

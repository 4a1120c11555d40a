package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for AnalysesTotal.
const (
	OutcomeSuccess          = "success"
	OutcomeUnexpectedStatus = "unexpected_status"
	OutcomeTransportError   = "transport_error"
	OutcomeMalformed        = "malformed_response"
	OutcomeMissingInput     = "missing_input"
)

var (
	// AnalysesTotal tracks sentiment analyses by backend and outcome
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_analyses_total",
			Help: "Total sentiment analyses by backend and outcome",
		},
		[]string{"backend", "outcome"},
	)

	// AnalysisDuration tracks backend latency in seconds
	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sentiment_analysis_duration_seconds",
			Help:    "Sentiment backend call duration in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"backend"},
	)
)

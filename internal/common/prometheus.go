package common

import "github.com/prometheus/client_golang/prometheus"

const (
	HTTPRequestTotal           = "http_requests_total"
	HTTPRequestDurationSeconds = "http_request_duration_seconds"
	PicksCheckedTotal          = "picks_checked_total"
	DrawsIngestedTotal         = "draws_ingested_total"
	DrawIngestionFailure       = "draw_ingestion_failure"
)

var (
	PromCounters = map[string]*prometheus.CounterVec{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: HTTPRequestTotal,
			Help: "Count of all HTTP requests",
		}, []string{"path", "code"}),
		PicksCheckedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: PicksCheckedTotal,
			Help: "Count of checked picks",
		}, []string{"game_type", "prize_worthy"}),
		DrawsIngestedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: DrawsIngestedTotal,
			Help: "Count of draws fetched from the results API",
		}, []string{"game_type"}),
		DrawIngestionFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: DrawIngestionFailure,
			Help: "Count of failures while fetching draws",
		}, []string{"game_type"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: HTTPRequestDurationSeconds,
			Help: "Duration of all HTTP requests",
		}, []string{"path", "code"}),
	}
)

func IncCounter(name string, labels ...string) {
	if counter, ok := PromCounters[name]; ok {
		counter.WithLabelValues(labels...).Inc()
	}
}

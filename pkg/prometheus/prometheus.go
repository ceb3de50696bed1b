package prometheus

import (
	"net/http"

	"github.com/loterias-lab/backend/internal/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHandler serves the runtime metrics and every metric declared in
// common.PromCounters and common.PromHistograms from a private registry.
func NewHandler() http.Handler {
	metrics := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	}
	for _, c := range common.PromCounters {
		metrics = append(metrics, c)
	}
	for _, h := range common.PromHistograms {
		metrics = append(metrics, h)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(metrics...)

	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

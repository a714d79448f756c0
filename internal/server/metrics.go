package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	// HTTP request metrics
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	// preview selection metrics
	selectionsTotal *prometheus.CounterVec
	selectedScore   *prometheus.HistogramVec
	layoutFailures  *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "viewfinder_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "viewfinder_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		selectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "viewfinder_preview_selections_total",
				Help: "Total number of preview size selections",
			},
			[]string{"strategy"},
		),
		selectedScore: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "viewfinder_selected_preview_score",
				Help:    "Score of the selected preview size",
				Buckets: []float64{0, .01, .05, .1, .25, .5, .75, .9, 1},
			},
			[]string{"strategy"},
		),
		layoutFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "viewfinder_layout_failures_total",
				Help: "Total number of layouts that could not be framed",
			},
			[]string{"strategy"},
		),
	}
}

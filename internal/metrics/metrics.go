// Package metrics holds the Prometheus collectors exported on /metrics
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "decomap_http_requests_total",
		Help: "Total HTTP requests by route pattern and status",
	}, []string{"route", "status"})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "decomap_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route"})
	RefreshTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "decomap_pin_refresh_total",
		Help: "Pin set rebuilds by result",
	}, []string{"result"})
	FavoriteTogglesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "decomap_favorite_toggles_total",
		Help: "Favorite toggles by result",
	}, []string{"result"})
	PinsLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "decomap_pins_loaded",
		Help: "Number of pins in the current catalog",
	})
	FavoritesCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "decomap_favorites_cache_hits_total",
		Help: "Favorite lookups answered from the local cache",
	})
	FavoritesCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "decomap_favorites_cache_misses_total",
		Help: "Favorite lookups that went to the backing store",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(RefreshTotal)
	prometheus.MustRegister(FavoriteTogglesTotal)
	prometheus.MustRegister(PinsLoaded)
	prometheus.MustRegister(FavoritesCacheHitsTotal)
	prometheus.MustRegister(FavoritesCacheMissesTotal)
}

// Handler exposes the default registry
func Handler() http.Handler { return promhttp.Handler() }

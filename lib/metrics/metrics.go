package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LoginAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hacview_login_attempts_total",
		Help: "Login requests received by the web UI.",
	})
	LoginFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hacview_login_failures_total",
		Help: "Failed login requests, partitioned by failure kind.",
	}, []string{"kind"})
	ScrapeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hacview_scrape_duration_seconds",
		Help:    "Wall time of a full login+scrape pipeline.",
		Buckets: prometheus.DefBuckets,
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}

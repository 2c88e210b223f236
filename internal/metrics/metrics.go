package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	PointsSampled  prometheus.Counter
	Lookups        *prometheus.CounterVec
	APIErrors      prometheus.Counter
	RequestSeconds *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		PointsSampled: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "trackplace_points_sampled_total",
			Help: "Total number of track points selected for geocoding.",
		}),
		Lookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "trackplace_lookups_total",
			Help: "Total number of reverse-geocoding lookups by outcome.",
		}, []string{"status"}),
		APIErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "trackplace_provider_api_errors_total",
			Help: "Total number of errors received from the geocoding provider API.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trackplace_provider_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
	}
}

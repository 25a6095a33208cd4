package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	CheckInsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guestgate_checkins_total",
			Help: "Check-in attempts by outcome",
		},
		[]string{"result"},
	)

	ConsumptionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guestgate_consumptions_total",
			Help: "Amenity consumption attempts by outcome",
		},
		[]string{"result"},
	)

	StockRejectionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "guestgate_stock_rejections_total",
			Help: "Reservations rejected because the ledger ran out",
		},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "guestgate_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guestgate_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)
)

func MustRegister() {
	prometheus.MustRegister(
		CheckInsTotal,
		ConsumptionsTotal,
		StockRejectionsTotal,
		httpRequestDuration,
		httpRequestsTotal,
	)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Instrument wraps a handler with request counting and latency tracking.
func Instrument(name string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		httpRequestDuration.WithLabelValues(name, r.Method).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(name, r.Method, strconv.Itoa(rec.status)).Inc()
	}
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "technoshop",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	RequestDurationMS = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "technoshop",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"method", "path"})

	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "technoshop",
		Name:      "orders_created_total",
		Help:      "Total number of successfully created orders.",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDurationMS, OrdersCreated)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

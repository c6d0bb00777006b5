package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "foodie",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"path", "status"})

	latencyMS = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "foodie",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"path"})

	// OrdersPlaced counts successful checkouts.
	OrdersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "foodie",
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed.",
	})

	// StatusTransitions counts order status changes by resulting status.
	StatusTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "foodie",
		Name:      "order_status_transitions_total",
		Help:      "Total number of order status transitions.",
	}, []string{"to"})
)

func init() {
	prometheus.MustRegister(requests, latencyMS, OrdersPlaced, StatusTransitions)
}

// Middleware records per-request count and latency under the route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		requests.WithLabelValues(path, strconv.Itoa(c.Writer.Status())).Inc()
		latencyMS.WithLabelValues(path).Observe(float64(time.Since(start).Milliseconds()))
	}
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

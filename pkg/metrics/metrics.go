package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Pricing API metrics
	PricingRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_api_requests_total",
			Help: "Total number of pricing API requests by outcome",
		},
		[]string{"outcome"},
	)

	PricingRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pricing_api_request_duration_seconds",
			Help:    "Pricing API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Business metrics
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cab_searches_total",
			Help: "Total number of rendered cab searches",
		},
		[]string{"trip_type", "placeholder"},
	)

	ReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cab_reservations_total",
			Help: "Total number of reservation hand-offs",
		},
		[]string{"category", "status"},
	)

	LandingViewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_page_views_total",
			Help: "Total number of city landing page views",
		},
		[]string{"city"},
	)

	WebSocketConnectionsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "websocket_connections_total",
			Help: "Current number of active WebSocket connections",
		},
		[]string{"service"},
	)

	RabbitMQMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rabbitmq_messages_published_total",
			Help: "Total number of messages published to RabbitMQ",
		},
		[]string{"service", "exchange", "status"},
	)
)

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, status).Observe(duration.Seconds())
}

// RecordPricingRequest records one pricing API call. outcome is "success" or an error class.
func RecordPricingRequest(outcome string, duration time.Duration) {
	PricingRequestsTotal.WithLabelValues(outcome).Inc()
	PricingRequestDuration.Observe(duration.Seconds())
}

// RecordSearch records a rendered search
func RecordSearch(tripType string, placeholder bool) {
	SearchesTotal.WithLabelValues(tripType, strconv.FormatBool(placeholder)).Inc()
}

// RecordLandingView records a rendered city landing page
func RecordLandingView(city string) {
	LandingViewsTotal.WithLabelValues(city).Inc()
}

// RecordReservation records a reservation hand-off attempt
func RecordReservation(category string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ReservationsTotal.WithLabelValues(category, status).Inc()
}

// RecordRabbitMQPublish records RabbitMQ publish metrics
func RecordRabbitMQPublish(service, exchange string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	RabbitMQMessagesPublished.WithLabelValues(service, exchange, status).Inc()
}

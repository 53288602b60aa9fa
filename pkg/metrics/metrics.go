package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBOpenConns     prometheus.Gauge
	DBIdleConns     prometheus.Gauge

	// Бизнес-метрики
	AppointmentsBookedTotal     prometheus.Counter
	AppointmentsCancelledTotal  prometheus.Counter
	LeadsCapturedTotal          prometheus.Counter
	ChatbotMessagesTotal        *prometheus.CounterVec
	ABImpressionsTotal          *prometheus.CounterVec
	ABConversionsTotal          *prometheus.CounterVec
	NotificationsDispatchTotal  *prometheus.CounterVec
	StripeWebhookEventsTotal    *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),

		DBOpenConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}),

		DBIdleConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}),

		AppointmentsBookedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "appointments_booked_total",
			Help:        "Total number of booked appointments",
			ConstLabels: constLabels,
		}),

		AppointmentsCancelledTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "appointments_cancelled_total",
			Help:        "Total number of cancelled appointments",
			ConstLabels: constLabels,
		}),

		LeadsCapturedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "leads_captured_total",
			Help:        "Total number of captured leads",
			ConstLabels: constLabels,
		}),

		ChatbotMessagesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "chatbot_messages_total",
			Help:        "Total number of chatbot messages by matched intent",
			ConstLabels: constLabels,
		}, []string{"intent"}),

		ABImpressionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "abtest_impressions_total",
			Help:        "Total number of A/B test variant impressions",
			ConstLabels: constLabels,
		}, []string{"test", "variant"}),

		ABConversionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "abtest_conversions_total",
			Help:        "Total number of A/B test conversions",
			ConstLabels: constLabels,
		}, []string{"test", "variant"}),

		NotificationsDispatchTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_dispatch_total",
			Help:        "Total number of dispatched notifications",
			ConstLabels: constLabels,
		}, []string{"channel", "status"}),

		StripeWebhookEventsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "stripe_webhook_events_total",
			Help:        "Total number of received Stripe webhook events",
			ConstLabels: constLabels,
		}, []string{"type", "status"}),
	}
}

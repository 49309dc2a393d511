package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	storageOpsTotal     *prometheus.CounterVec
	storageOpDuration   *prometheus.HistogramVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		storageOpsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "storage_operations_total",
			Help:        "Total number of key-value storage operations",
			ConstLabels: constLabels,
		}, []string{"op", "key", "result"}),

		storageOpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "storage_operation_duration_seconds",
			Help:        "Key-value storage operation duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"op", "key"}),
	}
}

// ObserveHTTPRequest фиксирует выполненный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveStorageOp фиксирует операцию с key-value хранилищем
func (m *Metrics) ObserveStorageOp(op, key, result string, duration time.Duration) {
	m.storageOpsTotal.WithLabelValues(op, key, result).Inc()
	m.storageOpDuration.WithLabelValues(op, key).Observe(duration.Seconds())
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalculationCalls счетчик вызовов расчетов
	CalculationCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_calls_total",
			Help: "Общее количество вызовов расчетов",
		},
		[]string{"operation", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"operation", "error_type"},
	)

	// CalculationDuration длительность расчетов
	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "calculation_duration_seconds",
			Help:    "Длительность расчетов",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
		},
		[]string{"operation"},
	)

	// CacheLookups обращения к кэшу результатов
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Обращения к кэшу результатов",
		},
		[]string{"operation", "result"},
	)

	// HTTPRequests счетчик HTTP-запросов
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP-запросы к API",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration длительность HTTP-запросов
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Длительность HTTP-запросов",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Статусы вызовов
const (
	StatusSuccess         = "success"
	StatusValidationError = "validation_error"
	StatusError           = "error"
)

// Результаты обращения к кэшу
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

package metrics

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - счетчики и гистограммы HTTP запросов к коллекции
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New регистрирует метрики в reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studentdash",
			Name:      "http_requests_total",
			Help:      "Количество HTTP запросов по операциям и статусам.",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "studentdash",
			Name:      "http_request_duration_seconds",
			Help:      "Длительность обработки HTTP запросов.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

// Middleware считает запросы; путь берется из шаблона операции, а не из URL
func (m *Metrics) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		next(ctx)

		path := ctx.URL().Path
		if op := ctx.Operation(); op != nil && op.Path != "" {
			path = op.Path
		}

		m.requests.WithLabelValues(ctx.Method(), path, strconv.Itoa(ctx.Status())).Inc()
		m.duration.WithLabelValues(ctx.Method(), path).Observe(time.Since(start).Seconds())
	}
}

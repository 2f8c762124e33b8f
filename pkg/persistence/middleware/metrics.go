package middleware

import (
	"context"
	"time"

	"github.com/aretw0/hangman/pkg/domain"
	"github.com/aretw0/hangman/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

type metricsMiddleware struct {
	next     ports.WordStore
	duration *prometheus.HistogramVec
}

// NewMetricsMiddleware records the latency of store operations in
// hangman_store_operation_duration_seconds{op, result}.
func NewMetricsMiddleware(reg prometheus.Registerer) (Middleware, error) {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hangman_store_operation_duration_seconds",
		Help:    "Latency of word store operations.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op", "result"})
	if err := reg.Register(duration); err != nil {
		return nil, err
	}

	return func(next ports.WordStore) ports.WordStore {
		return &metricsMiddleware{next: next, duration: duration}
	}, nil
}

func (m *metricsMiddleware) observe(op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.duration.WithLabelValues(op, result).Observe(time.Since(start).Seconds())
}

func (m *metricsMiddleware) Load(ctx context.Context) ([]domain.WordEntry, error) {
	start := time.Now()
	entries, err := m.next.Load(ctx)
	m.observe("load", start, err)
	return entries, err
}

func (m *metricsMiddleware) Append(ctx context.Context, entry domain.WordEntry) error {
	start := time.Now()
	err := m.next.Append(ctx, entry)
	m.observe("append", start, err)
	return err
}

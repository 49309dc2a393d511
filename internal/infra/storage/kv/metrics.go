package kv

import (
	"context"
	"time"

	"github.com/kazilop/CarCleanTGApp2/pkg/metrics"
)

// MetricsStore декоратор, снимающий метрики операций с хранилищем
type MetricsStore struct {
	next      Store
	collector *metrics.Metrics
}

// WithMetrics оборачивает хранилище сбором метрик
func WithMetrics(next Store, collector *metrics.Metrics) *MetricsStore {
	return &MetricsStore{next: next, collector: collector}
}

// Get читает значение, фиксируя длительность и результат операции
func (s *MetricsStore) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	val, ok, err := s.next.Get(ctx, key)
	s.collector.ObserveStorageOp("get", key, resultLabel(err), time.Since(start))
	return val, ok, err
}

// Set записывает значение, фиксируя длительность и результат операции
func (s *MetricsStore) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := s.next.Set(ctx, key, value)
	s.collector.ObserveStorageOp("set", key, resultLabel(err), time.Since(start))
	return err
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

package outbox

import (
	"context"
	"time"
)

// MetricsCollector defines the interface for collecting outbox metrics
type MetricsCollector interface {
	RecordEventProcessed(eventType string, success bool, duration time.Duration)
	RecordBatchProcessed(count int, duration time.Duration)
	RecordOutboxLag(lag int)
	RecordPublishAttempt(eventType string, attempt int, success bool)
}

// NoOpMetricsCollector is a no-op implementation for when metrics aren't needed
type NoOpMetricsCollector struct{}

func (n *NoOpMetricsCollector) RecordEventProcessed(eventType string, success bool, duration time.Duration) {}
func (n *NoOpMetricsCollector) RecordBatchProcessed(count int, duration time.Duration)                    {}
func (n *NoOpMetricsCollector) RecordOutboxLag(lag int)                                                   {}
func (n *NoOpMetricsCollector) RecordPublishAttempt(eventType string, attempt int, success bool)          {}

// MetricPublisher wraps an EventPublisher with metrics collection
type MetricPublisher struct {
	publisher EventPublisher
	metrics   MetricsCollector
}

func NewMetricPublisher(publisher EventPublisher, metrics MetricsCollector) *MetricPublisher {
	return &MetricPublisher{
		publisher: publisher,
		metrics:   metrics,
	}
}

func (p *MetricPublisher) Publish(ctx context.Context, event Event) error {
	start := time.Now()

	err := p.publisher.Publish(ctx, event)
	
	duration := time.Since(start)
	p.metrics.RecordEventProcessed(event.EventType, err == nil, duration)

	return err
}

// PrometheusMetrics implements MetricsCollector using Prometheus
// This is a stub - actual implementation would use prometheus client library
type PrometheusMetrics struct {
	// TODO: Add prometheus metric collectors
	// eventCounter       *prometheus.CounterVec
	// eventDuration      *prometheus.HistogramVec
	// batchSize          prometheus.Histogram
	// batchDuration      prometheus.Histogram
	// outboxLag          prometheus.Gauge
	// publishAttempts    *prometheus.CounterVec
}

func NewPrometheusMetrics() *PrometheusMetrics {
	// TODO: Initialize prometheus metrics
	return &PrometheusMetrics{}
}

func (m *PrometheusMetrics) RecordEventProcessed(eventType string, success bool, duration time.Duration) {
	// TODO: Implement with prometheus
	// status := "success"
	// if !success {
	//     status = "failure"
	// }
	// m.eventCounter.WithLabelValues(eventType, status).Inc()
	// m.eventDuration.WithLabelValues(eventType).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordBatchProcessed(count int, duration time.Duration) {
	// TODO: Implement with prometheus
	// m.batchSize.Observe(float64(count))
	// m.batchDuration.Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordOutboxLag(lag int) {
	// TODO: Implement with prometheus
	// m.outboxLag.Set(float64(lag))
}

func (m *PrometheusMetrics) RecordPublishAttempt(eventType string, attempt int, success bool) {
	// TODO: Implement with prometheus
	// status := "success"
	// if !success {
	//     status = "failure"
	// }
	// m.publishAttempts.WithLabelValues(eventType, strconv.Itoa(attempt), status).Inc()
}
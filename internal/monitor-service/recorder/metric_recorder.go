package recorder

import (
	"VCS_API_Monitor/internal/monitor-service/model"
	"VCS_API_Monitor/internal/monitor-service/repository"
	"VCS_API_Monitor/pkg/infra"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MetricRecorder interface {
	Record(ctx context.Context, metric model.Metric) error
}

type metricRecorder struct {
	metricRepo  repository.MetricRepository
	kafkaWriter infra.KafkaWriter
	logger      *zap.Logger
}

// Record persists the metric and then publishes it for indexing. Publishing is best effort.
func (m *metricRecorder) Record(ctx context.Context, metric model.Metric) error {
	saved, err := m.metricRepo.CreateMetric(ctx, metric)
	if err != nil {
		return fmt.Errorf("MetricRecorder.Record: %w", err)
	}
	if m.kafkaWriter == nil {
		return nil
	}
	if err = m.publish(ctx, saved); err != nil {
		m.logger.Warn("failed to publish metric event", zap.String("monitor_id", saved.MonitorID), zap.Error(err))
	}
	return nil
}

func (m *metricRecorder) publish(ctx context.Context, metric model.Metric) error {
	event := NewMetricEvent(metric)
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return m.kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(metric.MonitorID),
		Value: value,
	})
}

// NewMetricEvent converts a stored metric to its indexed form.
func NewMetricEvent(metric model.Metric) model.MetricEvent {
	event := model.MetricEvent{
		ID:             uuid.NewString(),
		MonitorID:      metric.MonitorID,
		ResponseTimeMs: metric.ResponseTimeMs,
		Success:        metric.Success,
		Timestamp:      metric.CreatedAt,
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if metric.StatusCode != nil {
		event.StatusCode = *metric.StatusCode
	}
	if metric.Success {
		event.SuccessNumeric = 1
	}
	if metric.ErrorMessage != nil {
		event.Error = *metric.ErrorMessage
	}
	return event
}

func NewMetricRecorder(metricRepo repository.MetricRepository, kafkaWriter infra.KafkaWriter, logger *zap.Logger) MetricRecorder {
	return &metricRecorder{
		metricRepo:  metricRepo,
		kafkaWriter: kafkaWriter,
		logger:      logger,
	}
}

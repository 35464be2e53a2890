package repository

import (
	"VCS_API_Monitor/internal/monitor-service/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type MetricRepository interface {
	CreateMetric(ctx context.Context, metric model.Metric) (model.Metric, error)
	GetMetricsByMonitorId(ctx context.Context, monitorId string, limit int) ([]model.Metric, error)
	GetLatestMetricByMonitorId(ctx context.Context, monitorId string) (*model.Metric, error)
	DeleteMetricsOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type metricRepository struct {
	db *gorm.DB
}

func (m *metricRepository) CreateMetric(ctx context.Context, metric model.Metric) (model.Metric, error) {
	result := m.db.WithContext(ctx).Create(&metric)
	if result.Error != nil {
		return metric, wrapDBError("MetricRepository.CreateMetric", result.Error)
	}
	return metric, nil
}

func (m *metricRepository) GetMetricsByMonitorId(ctx context.Context, monitorId string, limit int) ([]model.Metric, error) {
	var metrics []model.Metric
	result := m.db.WithContext(ctx).Where("monitor_id = ?", monitorId).Order("created_at desc").Limit(limit).Find(&metrics)
	if result.Error != nil {
		return nil, wrapDBError("MetricRepository.GetMetricsByMonitorId", result.Error)
	}
	return metrics, nil
}

// GetLatestMetricByMonitorId returns nil when the monitor has no metrics yet.
func (m *metricRepository) GetLatestMetricByMonitorId(ctx context.Context, monitorId string) (*model.Metric, error) {
	var metrics []model.Metric
	result := m.db.WithContext(ctx).Where("monitor_id = ?", monitorId).Order("created_at desc").Limit(1).Find(&metrics)
	if result.Error != nil {
		return nil, wrapDBError("MetricRepository.GetLatestMetricByMonitorId", result.Error)
	}
	if len(metrics) == 0 {
		return nil, nil
	}
	return &metrics[0], nil
}

func (m *metricRepository) DeleteMetricsOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := m.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.Metric{})
	if result.Error != nil {
		return 0, wrapDBError("MetricRepository.DeleteMetricsOlderThan", result.Error)
	}
	return result.RowsAffected, nil
}

func NewMetricRepository(db *gorm.DB) MetricRepository {
	return &metricRepository{
		db: db,
	}
}

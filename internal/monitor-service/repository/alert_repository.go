package repository

import (
	"VCS_API_Monitor/internal/monitor-service/model"
	"context"

	"gorm.io/gorm"
)

type AlertRepository interface {
	CreateAlert(ctx context.Context, alert model.Alert) (model.Alert, error)
	GetAlertsByMonitorId(ctx context.Context, monitorId string, limit int) ([]model.Alert, error)
}

type alertRepository struct {
	db *gorm.DB
}

func (a *alertRepository) CreateAlert(ctx context.Context, alert model.Alert) (model.Alert, error) {
	result := a.db.WithContext(ctx).Create(&alert)
	if result.Error != nil {
		return alert, wrapDBError("AlertRepository.CreateAlert", result.Error)
	}
	return alert, nil
}

func (a *alertRepository) GetAlertsByMonitorId(ctx context.Context, monitorId string, limit int) ([]model.Alert, error) {
	var alerts []model.Alert
	result := a.db.WithContext(ctx).Where("monitor_id = ?", monitorId).Order("created_at desc").Limit(limit).Find(&alerts)
	if result.Error != nil {
		return nil, wrapDBError("AlertRepository.GetAlertsByMonitorId", result.Error)
	}
	return alerts, nil
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{
		db: db,
	}
}

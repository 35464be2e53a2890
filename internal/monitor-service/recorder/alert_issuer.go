package recorder

import (
	"VCS_API_Monitor/internal/monitor-service/model"
	"VCS_API_Monitor/internal/monitor-service/repository"
	"context"

	"go.uber.org/zap"
)

type AlertIssuer interface {
	// CreateAlert returns nil when the alert could not be stored. The failure is logged, not returned.
	CreateAlert(ctx context.Context, monitorID string, message string, severity string) *model.Alert
}

type alertIssuer struct {
	alertRepo repository.AlertRepository
	logger    *zap.Logger
}

func (a *alertIssuer) CreateAlert(ctx context.Context, monitorID string, message string, severity string) *model.Alert {
	alert, err := a.alertRepo.CreateAlert(ctx, model.Alert{
		MonitorID: monitorID,
		Message:   message,
		Severity:  severity,
	})
	if err != nil {
		a.logger.Error("failed to create alert",
			zap.String("monitor_id", monitorID),
			zap.String("severity", severity),
			zap.String("message", message),
			zap.Error(err))
		return nil
	}
	return &alert
}

func NewAlertIssuer(alertRepo repository.AlertRepository, logger *zap.Logger) AlertIssuer {
	return &alertIssuer{
		alertRepo: alertRepo,
		logger:    logger,
	}
}

package repository

import (
	apperrors "VCS_API_Monitor/internal/monitor-service/errors"
	"VCS_API_Monitor/internal/monitor-service/model"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MonitorRepository interface {
	CreateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error)
	GetMonitorById(ctx context.Context, monitorId string) (model.Monitor, error)
	GetMonitorWithOwnerById(ctx context.Context, monitorId string) (model.MonitorWithOwner, error)
	GetMonitorsByUserId(ctx context.Context, userId string) ([]model.Monitor, error)
	GetActiveMonitors(ctx context.Context) ([]model.Monitor, error)
	GetMonitorsPendingNotification(ctx context.Context, failureThreshold int) ([]model.Monitor, error)
	IncrementConsecutiveFailures(ctx context.Context, monitorId string) (model.Monitor, error)
	ResetConsecutiveFailures(ctx context.Context, monitorId string) (model.Monitor, error)
	UpdateLastEmailSent(ctx context.Context, monitorId string, sentAt time.Time) error
	UpdateLastRun(ctx context.Context, monitorId string, lastRun time.Time, nextRun time.Time) error
	UpdateMonitorActive(ctx context.Context, monitorId string, active bool) (model.Monitor, error)
	UpdateMonitor(ctx context.Context, updatedData model.Monitor) (model.Monitor, error)
	DeleteMonitorById(ctx context.Context, monitorId string) error
}

type monitorRepository struct {
	db *gorm.DB
}

func (m *monitorRepository) CreateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error) {
	result := m.db.WithContext(ctx).Create(&monitor)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			if pgErr.ConstraintName == "monitors_request_id_fkey" {
				return monitor, fmt.Errorf("MonitorRepository.CreateMonitor: %w", apperrors.ErrRequestNotFound)
			}
		}
		return monitor, wrapDBError("MonitorRepository.CreateMonitor", result.Error)
	}
	return monitor, nil
}

func (m *monitorRepository) GetMonitorById(ctx context.Context, monitorId string) (model.Monitor, error) {
	var monitor model.Monitor
	result := m.db.WithContext(ctx).First(&monitor, "id = ?", monitorId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return monitor, fmt.Errorf("MonitorRepository.GetMonitorById: %w", apperrors.ErrMonitorNotFound)
		}
		return monitor, wrapDBError("MonitorRepository.GetMonitorById", result.Error)
	}
	return monitor, nil
}

func (m *monitorRepository) GetMonitorWithOwnerById(ctx context.Context, monitorId string) (model.MonitorWithOwner, error) {
	var monitor model.MonitorWithOwner
	result := m.db.WithContext(ctx).Table("monitors").
		Select("monitors.*, COALESCE(users.email, '') AS owner_email, COALESCE(users.name, '') AS owner_name, COALESCE(requests.url, '') AS request_url").
		Joins("LEFT JOIN users ON users.id = monitors.user_id").
		Joins("LEFT JOIN requests ON requests.id = monitors.request_id").
		Where("monitors.id = ?", monitorId).
		Take(&monitor)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return monitor, fmt.Errorf("MonitorRepository.GetMonitorWithOwnerById: %w", apperrors.ErrMonitorNotFound)
		}
		return monitor, wrapDBError("MonitorRepository.GetMonitorWithOwnerById", result.Error)
	}
	return monitor, nil
}

func (m *monitorRepository) GetMonitorsByUserId(ctx context.Context, userId string) ([]model.Monitor, error) {
	var monitors []model.Monitor
	result := m.db.WithContext(ctx).Where("user_id = ?", userId).Order("created_at desc").Find(&monitors)
	if result.Error != nil {
		return nil, wrapDBError("MonitorRepository.GetMonitorsByUserId", result.Error)
	}
	return monitors, nil
}

func (m *monitorRepository) GetActiveMonitors(ctx context.Context) ([]model.Monitor, error) {
	var monitors []model.Monitor
	result := m.db.WithContext(ctx).Where("is_active = ?", true).Find(&monitors)
	if result.Error != nil {
		return nil, wrapDBError("MonitorRepository.GetActiveMonitors", result.Error)
	}
	return monitors, nil
}

func (m *monitorRepository) GetMonitorsPendingNotification(ctx context.Context, failureThreshold int) ([]model.Monitor, error) {
	var monitors []model.Monitor
	result := m.db.WithContext(ctx).
		Where("is_active = ? AND email_notifications_enabled = ? AND consecutive_failures >= ?", true, true, failureThreshold).
		Find(&monitors)
	if result.Error != nil {
		return nil, wrapDBError("MonitorRepository.GetMonitorsPendingNotification", result.Error)
	}
	return monitors, nil
}

// IncrementConsecutiveFailures relies on the row level atomicity of a single UPDATE.
func (m *monitorRepository) IncrementConsecutiveFailures(ctx context.Context, monitorId string) (model.Monitor, error) {
	var monitor model.Monitor
	result := m.db.WithContext(ctx).Model(&monitor).Clauses(clause.Returning{}).
		Where("id = ?", monitorId).
		UpdateColumn("consecutive_failures", gorm.Expr("consecutive_failures + ?", 1))
	if result.Error != nil {
		return monitor, wrapDBError("MonitorRepository.IncrementConsecutiveFailures", result.Error)
	}
	if result.RowsAffected == 0 {
		return monitor, fmt.Errorf("MonitorRepository.IncrementConsecutiveFailures: %w", apperrors.ErrMonitorNotFound)
	}
	return monitor, nil
}

func (m *monitorRepository) ResetConsecutiveFailures(ctx context.Context, monitorId string) (model.Monitor, error) {
	var monitor model.Monitor
	result := m.db.WithContext(ctx).Model(&monitor).Clauses(clause.Returning{}).
		Where("id = ?", monitorId).
		UpdateColumn("consecutive_failures", 0)
	if result.Error != nil {
		return monitor, wrapDBError("MonitorRepository.ResetConsecutiveFailures", result.Error)
	}
	if result.RowsAffected == 0 {
		return monitor, fmt.Errorf("MonitorRepository.ResetConsecutiveFailures: %w", apperrors.ErrMonitorNotFound)
	}
	return monitor, nil
}

func (m *monitorRepository) UpdateLastEmailSent(ctx context.Context, monitorId string, sentAt time.Time) error {
	result := m.db.WithContext(ctx).Model(&model.Monitor{}).Where("id = ?", monitorId).UpdateColumn("last_email_sent", sentAt)
	if result.Error != nil {
		return wrapDBError("MonitorRepository.UpdateLastEmailSent", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("MonitorRepository.UpdateLastEmailSent: %w", apperrors.ErrMonitorNotFound)
	}
	return nil
}

func (m *monitorRepository) UpdateLastRun(ctx context.Context, monitorId string, lastRun time.Time, nextRun time.Time) error {
	result := m.db.WithContext(ctx).Model(&model.Monitor{}).Where("id = ?", monitorId).UpdateColumns(map[string]interface{}{
		"last_run": lastRun,
		"next_run": nextRun,
	})
	if result.Error != nil {
		return wrapDBError("MonitorRepository.UpdateLastRun", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("MonitorRepository.UpdateLastRun: %w", apperrors.ErrMonitorNotFound)
	}
	return nil
}

func (m *monitorRepository) UpdateMonitorActive(ctx context.Context, monitorId string, active bool) (model.Monitor, error) {
	var monitor model.Monitor
	result := m.db.WithContext(ctx).Model(&monitor).Clauses(clause.Returning{}).
		Where("id = ?", monitorId).
		Updates(map[string]interface{}{"is_active": active})
	if result.Error != nil {
		return monitor, wrapDBError("MonitorRepository.UpdateMonitorActive", result.Error)
	}
	if result.RowsAffected == 0 {
		return monitor, fmt.Errorf("MonitorRepository.UpdateMonitorActive: %w", apperrors.ErrMonitorNotFound)
	}
	return monitor, nil
}

func (m *monitorRepository) UpdateMonitor(ctx context.Context, updatedData model.Monitor) (model.Monitor, error) {
	var monitor model.Monitor
	result := m.db.WithContext(ctx).Model(&monitor).Clauses(clause.Returning{}).
		Where("id = ?", updatedData.ID).
		Select("name", "request_id", "interval_minutes", "threshold_ms", "email_notifications_enabled", "updated_at").
		Updates(updatedData)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return monitor, fmt.Errorf("MonitorRepository.UpdateMonitor: %w", apperrors.ErrRequestNotFound)
		}
		return monitor, wrapDBError("MonitorRepository.UpdateMonitor", result.Error)
	}
	if result.RowsAffected == 0 {
		return monitor, fmt.Errorf("MonitorRepository.UpdateMonitor: %w", apperrors.ErrMonitorNotFound)
	}
	return monitor, nil
}

// DeleteMonitorById leaves metrics and alerts to the ON DELETE CASCADE constraints.
func (m *monitorRepository) DeleteMonitorById(ctx context.Context, monitorId string) error {
	result := m.db.WithContext(ctx).Where("id = ?", monitorId).Delete(&model.Monitor{})
	if result.Error != nil {
		return wrapDBError("MonitorRepository.DeleteMonitorById", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("MonitorRepository.DeleteMonitorById: %w", apperrors.ErrMonitorNotFound)
	}
	return nil
}

func NewMonitorRepository(db *gorm.DB) MonitorRepository {
	return &monitorRepository{
		db: db,
	}
}

package service

import (
	apperrors "VCS_API_Monitor/internal/monitor-service/errors"
	"VCS_API_Monitor/internal/monitor-service/model"
	"VCS_API_Monitor/internal/monitor-service/probe"
	"VCS_API_Monitor/internal/monitor-service/repository"
	"VCS_API_Monitor/internal/monitor-service/scheduler"
	"context"
	"errors"
	"fmt"
	"time"
)

// MonitorUpdate holds the fields of a partial update. Nil fields keep their stored value.
type MonitorUpdate struct {
	Name                      *string
	RequestID                 *string
	IntervalMinutes           *int
	ThresholdMs               *int
	EmailNotificationsEnabled *bool
}

type MonitorService interface {
	CreateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error)
	GetMonitors(ctx context.Context, userID string) ([]model.Monitor, error)
	GetMonitor(ctx context.Context, userID string, monitorID string) (model.Monitor, error)
	UpdateMonitor(ctx context.Context, userID string, monitorID string, update MonitorUpdate) (model.Monitor, error)
	DeleteMonitor(ctx context.Context, userID string, monitorID string) error
	SetMonitorActive(ctx context.Context, userID string, monitorID string, active bool) (model.Monitor, error)
	// RunOnDemandTest probes the monitor's request once without touching metrics, alerts or failure counters.
	RunOnDemandTest(ctx context.Context, userID string, monitorID string) (probe.Result, error)
	GetMonitorMetrics(ctx context.Context, userID string, monitorID string, limit int) ([]model.Metric, error)
	GetMonitorAlerts(ctx context.Context, userID string, monitorID string, limit int) ([]model.Alert, error)
	GetMonitorUptimePercentage(ctx context.Context, userID string, monitorID string, startDate time.Time, endDate time.Time) (float64, error)
	PruneMetrics(ctx context.Context, retention time.Duration) (int64, error)
}

type monitorService struct {
	monitorRepo      repository.MonitorRepository
	requestRepo      repository.RequestRepository
	metricRepo       repository.MetricRepository
	alertRepo        repository.AlertRepository
	metricSearchRepo repository.MetricSearchRepository
	executor         probe.Executor
	scheduler        scheduler.MonitorScheduler
	settleDelay      time.Duration
	locks            *monitorLocks
	now              func() time.Time
}

func (m *monitorService) CreateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error) {
	created, err := m.monitorRepo.CreateMonitor(ctx, monitor)
	if err != nil {
		return monitor, fmt.Errorf("MonitorService.CreateMonitor: %w", err)
	}
	if created.IsActive {
		if err = m.scheduler.Reinstall(created); err != nil {
			return created, fmt.Errorf("MonitorService.CreateMonitor: %w", err)
		}
	}
	return created, nil
}

func (m *monitorService) GetMonitors(ctx context.Context, userID string) ([]model.Monitor, error) {
	monitors, err := m.monitorRepo.GetMonitorsByUserId(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.GetMonitors: %w", err)
	}
	return monitors, nil
}

func (m *monitorService) GetMonitor(ctx context.Context, userID string, monitorID string) (model.Monitor, error) {
	monitor, err := m.ownedMonitor(ctx, userID, monitorID)
	if err != nil {
		return monitor, fmt.Errorf("MonitorService.GetMonitor: %w", err)
	}
	return monitor, nil
}

func (m *monitorService) UpdateMonitor(ctx context.Context, userID string, monitorID string, update MonitorUpdate) (model.Monitor, error) {
	unlock := m.locks.lock(monitorID)
	defer unlock()

	monitor, err := m.ownedMonitor(ctx, userID, monitorID)
	if err != nil {
		return monitor, fmt.Errorf("MonitorService.UpdateMonitor: %w", err)
	}
	if update.Name != nil {
		monitor.Name = *update.Name
	}
	if update.RequestID != nil {
		monitor.RequestID = *update.RequestID
	}
	if update.IntervalMinutes != nil {
		monitor.IntervalMinutes = *update.IntervalMinutes
	}
	if update.ThresholdMs != nil {
		monitor.ThresholdMs = *update.ThresholdMs
	}
	if update.EmailNotificationsEnabled != nil {
		monitor.EmailNotificationsEnabled = *update.EmailNotificationsEnabled
	}
	monitor.UpdatedAt = m.now()

	updated, err := m.monitorRepo.UpdateMonitor(ctx, monitor)
	if err != nil {
		return monitor, fmt.Errorf("MonitorService.UpdateMonitor: %w", err)
	}
	if !updated.IsActive {
		m.scheduler.Cancel(updated.ID)
		return updated, nil
	}
	if err = m.scheduler.Reinstall(updated); err != nil {
		return updated, fmt.Errorf("MonitorService.UpdateMonitor: %w", err)
	}
	return updated, nil
}

// DeleteMonitor cancels the timer before the row goes away so no tick fires against a deleted monitor.
func (m *monitorService) DeleteMonitor(ctx context.Context, userID string, monitorID string) error {
	unlock := m.locks.lock(monitorID)
	defer unlock()

	if _, err := m.ownedMonitor(ctx, userID, monitorID); err != nil {
		return fmt.Errorf("MonitorService.DeleteMonitor: %w", err)
	}
	m.scheduler.Cancel(monitorID)
	if err := m.monitorRepo.DeleteMonitorById(ctx, monitorID); err != nil {
		return fmt.Errorf("MonitorService.DeleteMonitor: %w", err)
	}
	return nil
}

// SetMonitorActive always cancels first. On activation it waits for the settle delay before
// installing a fresh timer from the persisted row. Lifecycle calls for the same monitor are
// serialized, and once the new state is persisted the caller's context no longer aborts the call.
func (m *monitorService) SetMonitorActive(ctx context.Context, userID string, monitorID string, active bool) (model.Monitor, error) {
	unlock := m.locks.lock(monitorID)
	defer unlock()

	previous, err := m.ownedMonitor(ctx, userID, monitorID)
	if err != nil {
		return model.Monitor{}, fmt.Errorf("MonitorService.SetMonitorActive: %w", err)
	}
	m.scheduler.Cancel(monitorID)

	monitor, err := m.monitorRepo.UpdateMonitorActive(ctx, monitorID, active)
	if err != nil {
		if previous.IsActive {
			// the row is unchanged, so it still needs its timer
			if e := m.scheduler.Reinstall(previous); e != nil {
				err = errors.Join(err, e)
			}
		}
		return monitor, fmt.Errorf("MonitorService.SetMonitorActive: %w", err)
	}
	if !active {
		return monitor, nil
	}

	time.Sleep(m.settleDelay)
	if err = m.scheduler.Reinstall(monitor); err != nil {
		return monitor, fmt.Errorf("MonitorService.SetMonitorActive: %w", err)
	}
	return monitor, nil
}

func (m *monitorService) RunOnDemandTest(ctx context.Context, userID string, monitorID string) (probe.Result, error) {
	monitor, err := m.ownedMonitor(ctx, userID, monitorID)
	if err != nil {
		return probe.Result{}, fmt.Errorf("MonitorService.RunOnDemandTest: %w", err)
	}
	request, err := m.requestRepo.GetRequestDetails(ctx, monitor.RequestID)
	if err != nil {
		return probe.Result{}, fmt.Errorf("MonitorService.RunOnDemandTest: %w", err)
	}
	return m.executor.Execute(ctx, request), nil
}

func (m *monitorService) GetMonitorMetrics(ctx context.Context, userID string, monitorID string, limit int) ([]model.Metric, error) {
	if _, err := m.ownedMonitor(ctx, userID, monitorID); err != nil {
		return nil, fmt.Errorf("MonitorService.GetMonitorMetrics: %w", err)
	}
	metrics, err := m.metricRepo.GetMetricsByMonitorId(ctx, monitorID, limit)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.GetMonitorMetrics: %w", err)
	}
	return metrics, nil
}

func (m *monitorService) GetMonitorAlerts(ctx context.Context, userID string, monitorID string, limit int) ([]model.Alert, error) {
	if _, err := m.ownedMonitor(ctx, userID, monitorID); err != nil {
		return nil, fmt.Errorf("MonitorService.GetMonitorAlerts: %w", err)
	}
	alerts, err := m.alertRepo.GetAlertsByMonitorId(ctx, monitorID, limit)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.GetMonitorAlerts: %w", err)
	}
	return alerts, nil
}

func (m *monitorService) GetMonitorUptimePercentage(ctx context.Context, userID string, monitorID string, startDate time.Time, endDate time.Time) (float64, error) {
	if !endDate.After(startDate) {
		return 0, fmt.Errorf("MonitorService.GetMonitorUptimePercentage: %w", apperrors.ErrInvalidTimeRange)
	}
	if _, err := m.ownedMonitor(ctx, userID, monitorID); err != nil {
		return 0, fmt.Errorf("MonitorService.GetMonitorUptimePercentage: %w", err)
	}
	res, err := m.metricSearchRepo.GetMonitorUptimePercentage(ctx, monitorID, startDate, endDate)
	if err != nil {
		return 0, fmt.Errorf("MonitorService.GetMonitorUptimePercentage: %w", err)
	}
	return res, nil
}

func (m *monitorService) PruneMetrics(ctx context.Context, retention time.Duration) (int64, error) {
	deleted, err := m.metricRepo.DeleteMetricsOlderThan(ctx, m.now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("MonitorService.PruneMetrics: %w", err)
	}
	return deleted, nil
}

// ownedMonitor hides monitors of other users behind ErrMonitorNotFound.
func (m *monitorService) ownedMonitor(ctx context.Context, userID string, monitorID string) (model.Monitor, error) {
	monitor, err := m.monitorRepo.GetMonitorById(ctx, monitorID)
	if err != nil {
		return monitor, err
	}
	if monitor.UserID != userID {
		return model.Monitor{}, apperrors.ErrMonitorNotFound
	}
	return monitor, nil
}

func NewMonitorService(
	monitorRepo repository.MonitorRepository,
	requestRepo repository.RequestRepository,
	metricRepo repository.MetricRepository,
	alertRepo repository.AlertRepository,
	metricSearchRepo repository.MetricSearchRepository,
	executor probe.Executor,
	monitorScheduler scheduler.MonitorScheduler,
	settleDelay time.Duration,
) MonitorService {
	return &monitorService{
		monitorRepo:      monitorRepo,
		requestRepo:      requestRepo,
		metricRepo:       metricRepo,
		alertRepo:        alertRepo,
		metricSearchRepo: metricSearchRepo,
		executor:         executor,
		scheduler:        monitorScheduler,
		settleDelay:      settleDelay,
		locks:            newMonitorLocks(),
		now:              time.Now,
	}
}

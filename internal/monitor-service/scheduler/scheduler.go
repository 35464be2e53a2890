package scheduler

import (
	apperrors "VCS_API_Monitor/internal/monitor-service/errors"
	"VCS_API_Monitor/internal/monitor-service/model"
	"VCS_API_Monitor/internal/monitor-service/notifier"
	"VCS_API_Monitor/internal/monitor-service/probe"
	"VCS_API_Monitor/internal/monitor-service/recorder"
	"VCS_API_Monitor/internal/monitor-service/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type Config struct {
	FailureThreshold int
	EmailCooldown    time.Duration
	SettleDelay      time.Duration
	TickTimeout      time.Duration
}

type MonitorScheduler interface {
	// Start reconciles timers with the store and starts firing them.
	Start(ctx context.Context) error
	// Stop cancels every timer. The returned context is done once in-flight ticks have returned.
	Stop() context.Context
	// Reinstall is the only way to (re)schedule a monitor.
	Reinstall(monitor model.Monitor) error
	Cancel(monitorID string)
}

// tickProgress marks the steps a tick already completed so the catch-all does not repeat them.
type tickProgress struct {
	metricRecorded bool
	outcomeHandled bool
}

// timerState is captured when a timer is installed and used by every fire of that timer.
type timerState struct {
	monitorID       string
	requestID       string
	intervalMinutes int
	thresholdMs     int
}

type monitorScheduler struct {
	registry    TimerRegistry
	monitorRepo repository.MonitorRepository
	requestRepo repository.RequestRepository
	metricRepo  repository.MetricRepository
	executor    probe.Executor
	metrics     recorder.MetricRecorder
	alerts      recorder.AlertIssuer
	notifier    notifier.Notifier
	cfg         Config
	logger      *zap.Logger
	now         func() time.Time
}

func (s *monitorScheduler) Reinstall(monitor model.Monitor) error {
	state := timerState{
		monitorID:       monitor.ID,
		requestID:       monitor.RequestID,
		intervalMinutes: monitor.IntervalMinutes,
		thresholdMs:     monitor.ThresholdMs,
	}
	err := s.registry.Reinstall(monitor.ID, monitor.IntervalMinutes, func() { s.tick(state) })
	if err != nil {
		return fmt.Errorf("MonitorScheduler.Reinstall: %w", err)
	}
	s.logger.Info("monitor timer installed",
		zap.String("monitor_id", monitor.ID),
		zap.Int("interval_minutes", monitor.IntervalMinutes),
		zap.Int("threshold_ms", monitor.ThresholdMs))
	return nil
}

func (s *monitorScheduler) Cancel(monitorID string) {
	s.registry.Cancel(monitorID)
	s.logger.Info("monitor timer cancelled", zap.String("monitor_id", monitorID))
}

func (s *monitorScheduler) Stop() context.Context {
	s.logger.Info("stopping monitor scheduler", zap.Int("timers", s.registry.Len()))
	return s.registry.Stop()
}

// tick is the body of every timer fire. Nothing escapes it: errors and panics end in the catch-all.
func (s *monitorScheduler) tick(state timerState) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.TickTimeout)
	defer cancel()
	log := s.logger.With(zap.String("monitor_id", state.monitorID))
	progress := &tickProgress{}

	defer func() {
		if r := recover(); r != nil {
			s.recoverTick(state, fmt.Errorf("panic: %v", r), progress, log)
		}
	}()

	err := s.runTick(ctx, state, progress, log)
	if err == nil {
		return
	}
	if errors.Is(err, apperrors.ErrMonitorNotFound) {
		log.Warn("monitor no longer exists, cancelling its timer", zap.Error(err))
		s.registry.Cancel(state.monitorID)
		return
	}
	s.recoverTick(state, err, progress, log)
}

func (s *monitorScheduler) runTick(ctx context.Context, state timerState, progress *tickProgress, log *zap.Logger) error {
	monitor, err := s.monitorRepo.GetMonitorById(ctx, state.monitorID)
	if err != nil {
		return fmt.Errorf("monitorScheduler.runTick: %w", err)
	}
	if !monitor.IsActive {
		log.Warn("monitor is inactive, cancelling its timer")
		s.registry.Cancel(state.monitorID)
		return nil
	}
	request, err := s.requestRepo.GetRequestDetails(ctx, monitor.RequestID)
	if err != nil {
		return fmt.Errorf("monitorScheduler.runTick: %w", err)
	}

	result := s.executor.Execute(ctx, request)
	healthy := IsHealthy(result)
	cause := ""
	if !healthy {
		cause = failureCause(result)
		s.probeFailed(log, cause)
	}

	metric := model.Metric{
		MonitorID:      state.monitorID,
		ResponseTimeMs: result.ResponseTime,
		Success:        healthy,
	}
	if result.StatusCode != 0 {
		status := result.StatusCode
		metric.StatusCode = &status
	}
	if cause != "" {
		metric.ErrorMessage = &cause
	}
	err = s.metrics.Record(ctx, metric)
	progress.metricRecorded = true
	if err != nil {
		s.persistenceFailed(log, "record metric", err)
	}

	if healthy {
		progress.outcomeHandled = true
		s.onHealthy(ctx, monitor, log)
	} else {
		s.onUnhealthy(ctx, state.monitorID, monitor.ConsecutiveFailures, cause, progress, log)
	}

	if result.ResponseTime > int64(state.thresholdMs) {
		s.alerts.CreateAlert(ctx, state.monitorID,
			fmt.Sprintf("High response time: %dms (threshold: %dms)", result.ResponseTime, state.thresholdMs),
			model.SeverityWarning)
	}
	if result.StatusCode >= 500 {
		s.alerts.CreateAlert(ctx, state.monitorID, fmt.Sprintf("Server error: HTTP %d", result.StatusCode), model.SeverityError)
	}

	now := s.now()
	nextRun := now.Add(time.Duration(state.intervalMinutes) * time.Minute)
	if err = s.monitorRepo.UpdateLastRun(ctx, state.monitorID, now, nextRun); err != nil {
		s.persistenceFailed(log, "update last run", err)
	}
	return nil
}

// onUnhealthy counts the failure, raises an alert and escalates once the threshold is reached.
// previousCount is used when the counter cannot be incremented.
func (s *monitorScheduler) onUnhealthy(ctx context.Context, monitorID string, previousCount int, cause string, progress *tickProgress, log *zap.Logger) {
	count := previousCount
	updated, err := s.monitorRepo.IncrementConsecutiveFailures(ctx, monitorID)
	progress.outcomeHandled = true
	if err != nil {
		s.persistenceFailed(log, "increment consecutive failures", err)
	} else {
		count = updated.ConsecutiveFailures
	}

	s.alerts.CreateAlert(ctx, monitorID, "Request failed: "+cause, model.SeverityError)

	if count >= s.cfg.FailureThreshold {
		s.escalate(ctx, monitorID, count, cause, log)
	}
}

func (s *monitorScheduler) onHealthy(ctx context.Context, monitor model.Monitor, log *zap.Logger) {
	previous := monitor.ConsecutiveFailures
	if previous <= 0 {
		return
	}
	if _, err := s.monitorRepo.ResetConsecutiveFailures(ctx, monitor.ID); err != nil {
		s.persistenceFailed(log, "reset consecutive failures", err)
	}
	log.Info("monitor recovered", zap.Int("previous_failures", previous))
	if previous >= s.cfg.FailureThreshold {
		s.notifyRecovery(ctx, monitor.ID, log)
	}
}

// recoverTick is the catch-all for a tick that could not run to completion.
// It records a synthetic failed metric and then counts the failure on a best effort basis,
// skipping whichever of the two the tick already did.
func (s *monitorScheduler) recoverTick(state timerState, cause error, progress *tickProgress, log *zap.Logger) {
	// the tick context may be the reason for the failure
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.TickTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			log.Error("tick failure handling panicked", zap.Any("panic", r), zap.NamedError("cause", cause))
		}
	}()
	log.Error("tick failed", zap.Error(cause))

	msg := cause.Error()
	if !progress.metricRecorded {
		progress.metricRecorded = true
		if err := s.metrics.Record(ctx, model.Metric{
			MonitorID:    state.monitorID,
			Success:      false,
			ErrorMessage: &msg,
		}); err != nil {
			s.persistenceFailed(log, "record synthetic metric", err)
		}
	}
	if !progress.outcomeHandled {
		s.onUnhealthy(ctx, state.monitorID, 0, msg, progress, log)
	}
}

// IsHealthy is stricter than probe success: the response must also be 2xx or 3xx.
func IsHealthy(result probe.Result) bool {
	return result.Success && result.StatusCode >= 200 && result.StatusCode < 400
}

func failureCause(result probe.Result) string {
	if result.Error != "" {
		return result.Error
	}
	if result.StatusText != "" {
		return fmt.Sprintf("HTTP %d %s", result.StatusCode, result.StatusText)
	}
	return fmt.Sprintf("HTTP %d", result.StatusCode)
}

func NewMonitorScheduler(
	registry TimerRegistry,
	monitorRepo repository.MonitorRepository,
	requestRepo repository.RequestRepository,
	metricRepo repository.MetricRepository,
	executor probe.Executor,
	metrics recorder.MetricRecorder,
	alerts recorder.AlertIssuer,
	notifier notifier.Notifier,
	cfg Config,
	logger *zap.Logger,
) MonitorScheduler {
	if cfg.TickTimeout <= 0 {
		cfg.TickTimeout = 2 * time.Minute
	}
	return &monitorScheduler{
		registry:    registry,
		monitorRepo: monitorRepo,
		requestRepo: requestRepo,
		metricRepo:  metricRepo,
		executor:    executor,
		metrics:     metrics,
		alerts:      alerts,
		notifier:    notifier,
		cfg:         cfg,
		logger:      logger.With(zap.String("component", "scheduler")),
		now:         time.Now,
	}
}

package scheduler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const unknownError = "unknown error"

func (s *monitorScheduler) Start(ctx context.Context) error {
	if err := s.reconcile(ctx); err != nil {
		return fmt.Errorf("MonitorScheduler.Start: %w", err)
	}
	s.registry.Start()
	return nil
}

// reconcile rebuilds the timer registry from the store and sends notifications owed from before a restart.
func (s *monitorScheduler) reconcile(ctx context.Context) error {
	s.registry.CancelAll()

	timer := time.NewTimer(s.cfg.SettleDelay)
	select {
	case <-timer.C:
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	}

	monitors, err := s.monitorRepo.GetActiveMonitors(ctx)
	if err != nil {
		return err
	}
	installed := 0
	for _, monitor := range monitors {
		if e := s.Reinstall(monitor); e != nil {
			s.logger.Error("failed to install monitor timer", zap.String("monitor_id", monitor.ID), zap.Error(e))
			continue
		}
		installed++
	}
	s.logger.Info("monitor timers reconciled", zap.Int("active", len(monitors)), zap.Int("installed", installed))

	s.sweepPendingNotifications(ctx)
	return nil
}

func (s *monitorScheduler) sweepPendingNotifications(ctx context.Context) {
	monitors, err := s.monitorRepo.GetMonitorsPendingNotification(ctx, s.cfg.FailureThreshold)
	if err != nil {
		s.persistenceFailed(s.logger, "load monitors pending notification", err)
		return
	}
	now := s.now()
	for _, monitor := range monitors {
		if s.inCooldown(monitor.LastEmailSent, now) {
			continue
		}
		log := s.logger.With(zap.String("monitor_id", monitor.ID))
		s.escalate(ctx, monitor.ID, monitor.ConsecutiveFailures, s.lastErrorText(ctx, monitor.ID, log), log)
	}
}

func (s *monitorScheduler) lastErrorText(ctx context.Context, monitorID string, log *zap.Logger) string {
	metric, err := s.metricRepo.GetLatestMetricByMonitorId(ctx, monitorID)
	if err != nil {
		s.persistenceFailed(log, "load latest metric", err)
		return unknownError
	}
	if metric == nil || metric.ErrorMessage == nil || *metric.ErrorMessage == "" {
		return unknownError
	}
	return *metric.ErrorMessage
}

package scheduler

import (
	"context"

	"go.uber.org/zap"
)

// escalate sends the failure email when the owner can be reached and the cooldown has elapsed.
// last_email_sent only moves on a successful send, so a failed send is retried on the next qualifying tick.
func (s *monitorScheduler) escalate(ctx context.Context, monitorID string, failureCount int, lastError string, log *zap.Logger) {
	monitor, err := s.monitorRepo.GetMonitorWithOwnerById(ctx, monitorID)
	if err != nil {
		s.persistenceFailed(log, "load monitor owner", err)
		return
	}
	if monitor.OwnerEmail == "" {
		log.Info("skipping failure email, owner has no email address")
		return
	}
	if !monitor.EmailNotificationsEnabled {
		log.Info("skipping failure email, notifications disabled")
		return
	}

	now := s.now()
	if s.inCooldown(monitor.LastEmailSent, now) {
		log.Debug("skipping failure email, cooldown active", zap.Timep("last_email_sent", monitor.LastEmailSent))
		return
	}

	res := s.notifier.SendFailureEmail(monitor.OwnerEmail, monitor.Name, monitor.RequestURL, failureCount, lastError)
	if !res.Success {
		s.notificationFailed(log, "failure", res.Error)
		return
	}
	log.Info("failure email sent", zap.Int("consecutive_failures", failureCount), zap.String("message_id", res.MessageID))
	if err = s.monitorRepo.UpdateLastEmailSent(ctx, monitorID, now); err != nil {
		s.persistenceFailed(log, "update last email sent", err)
	}
}

// notifyRecovery does not touch last_email_sent, the failure cooldown keeps running.
func (s *monitorScheduler) notifyRecovery(ctx context.Context, monitorID string, log *zap.Logger) {
	monitor, err := s.monitorRepo.GetMonitorWithOwnerById(ctx, monitorID)
	if err != nil {
		s.persistenceFailed(log, "load monitor owner", err)
		return
	}
	if monitor.OwnerEmail == "" || !monitor.EmailNotificationsEnabled {
		log.Info("skipping recovery email", zap.Bool("has_email", monitor.OwnerEmail != ""), zap.Bool("notifications_enabled", monitor.EmailNotificationsEnabled))
		return
	}
	res := s.notifier.SendRecoveryEmail(monitor.OwnerEmail, monitor.Name, monitor.RequestURL)
	if !res.Success {
		s.notificationFailed(log, "recovery", res.Error)
		return
	}
	log.Info("recovery email sent", zap.String("message_id", res.MessageID))
}

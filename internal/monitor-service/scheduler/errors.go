package scheduler

import (
	"time"

	"go.uber.org/zap"
)

// Each category of failure inside a tick is logged here and never propagated.

func (s *monitorScheduler) probeFailed(log *zap.Logger, cause string) {
	log.Warn("probe unhealthy", zap.String("category", "transport"), zap.String("cause", cause))
}

func (s *monitorScheduler) persistenceFailed(log *zap.Logger, op string, err error) {
	log.Error("store operation failed", zap.String("category", "persistence"), zap.String("operation", op), zap.Error(err))
}

func (s *monitorScheduler) notificationFailed(log *zap.Logger, kind string, reason string) {
	log.Warn("email not sent", zap.String("category", "notification"), zap.String("kind", kind), zap.String("reason", reason))
}

func (s *monitorScheduler) inCooldown(lastEmailSent *time.Time, now time.Time) bool {
	return lastEmailSent != nil && now.Sub(*lastEmailSent) < s.cfg.EmailCooldown
}

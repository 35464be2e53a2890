package logger

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type cronLogger struct {
	log *zap.Logger
}

// NewCronLogger adapts a zap logger to robfig/cron. Cron info messages are logged at debug level.
func NewCronLogger(l *zap.Logger) cron.Logger {
	return &cronLogger{log: l.With(zap.String("component", "cron"))}
}

func (c *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.log.Sugar().Debugw(msg, keysAndValues...)
}

func (c *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.log.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}

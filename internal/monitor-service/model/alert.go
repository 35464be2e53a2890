package model

import "time"

const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

type Alert struct {
	ID        int64 `gorm:"primaryKey"`
	MonitorID string
	Message   string
	Severity  string
	IsRead    bool
	CreatedAt time.Time
}

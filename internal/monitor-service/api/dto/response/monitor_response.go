package response

import "time"

type MonitorResponse struct {
	ID                        string     `json:"id"`
	Name                      string     `json:"name"`
	RequestID                 string     `json:"request_id"`
	IntervalMinutes           int        `json:"interval_minutes"`
	ThresholdMs               int        `json:"threshold_ms"`
	IsActive                  bool       `json:"is_active"`
	ConsecutiveFailures       int        `json:"consecutive_failures"`
	EmailNotificationsEnabled bool       `json:"email_notifications_enabled"`
	LastRun                   *time.Time `json:"last_run"`
	NextRun                   *time.Time `json:"next_run"`
	LastEmailSent             *time.Time `json:"last_email_sent"`
	CreatedAt                 time.Time  `json:"created_at"`
	UpdatedAt                 time.Time  `json:"updated_at"`
}

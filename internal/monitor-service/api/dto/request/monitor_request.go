package request

type MonitorRequest struct {
	Name                      string `json:"name" binding:"required"`
	RequestID                 string `json:"request_id" binding:"required,uuid"`
	IntervalMinutes           *int   `json:"interval_minutes" binding:"required,gte=1"`
	ThresholdMs               *int   `json:"threshold_ms" binding:"required,gte=1"`
	IsActive                  *bool  `json:"is_active"`
	EmailNotificationsEnabled *bool  `json:"email_notifications_enabled"`
}

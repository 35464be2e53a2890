package request

type UpdateMonitorRequest struct {
	Name                      *string `json:"name" binding:"omitempty,min=1"`
	RequestID                 *string `json:"request_id" binding:"omitempty,uuid"`
	IntervalMinutes           *int    `json:"interval_minutes" binding:"omitempty,gte=1"`
	ThresholdMs               *int    `json:"threshold_ms" binding:"omitempty,gte=1"`
	EmailNotificationsEnabled *bool   `json:"email_notifications_enabled"`
}

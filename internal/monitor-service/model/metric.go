package model

import "time"

type Metric struct {
	ID             int64 `gorm:"primaryKey"`
	MonitorID      string
	StatusCode     *int
	ResponseTimeMs int64
	Success        bool
	ErrorMessage   *string
	CreatedAt      time.Time
}

// MetricEvent is the document published to Kafka and indexed into Elasticsearch.
type MetricEvent struct {
	ID             string    `json:"id"`
	MonitorID      string    `json:"monitor_id"`
	StatusCode     int       `json:"status_code"`
	ResponseTimeMs int64     `json:"response_time_ms"`
	Success        bool      `json:"success"`
	SuccessNumeric int       `json:"success_numeric"` // 1 for healthy, 0 otherwise
	Error          string    `json:"error,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

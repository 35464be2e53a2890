package response

import "time"

type MetricResponse struct {
	ID             int64     `json:"id"`
	StatusCode     *int      `json:"status_code"`
	ResponseTimeMs int64     `json:"response_time_ms"`
	Success        bool      `json:"success"`
	ErrorMessage   *string   `json:"error_message"`
	CreatedAt      time.Time `json:"created_at"`
}

type AlertResponse struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type TestResultResponse struct {
	Success      bool              `json:"success"`
	StatusCode   int               `json:"status_code"`
	StatusText   string            `json:"status_text,omitempty"`
	Data         string            `json:"data,omitempty"`
	Headers      map[string]string `json:"headers,omitempty"`
	ResponseTime int64             `json:"response_time"`
	Size         string            `json:"size,omitempty"`
	Error        string            `json:"error,omitempty"`
}

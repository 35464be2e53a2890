package request

type MonitorActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

package response

type Response struct {
	Message string `json:"message"`
}

type UptimeResponse struct {
	UptimePercentage float64 `json:"uptime_percentage"`
}

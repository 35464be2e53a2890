package handler

import (
	"VCS_API_Monitor/internal/monitor-service/api/dto/request"
	"VCS_API_Monitor/internal/monitor-service/api/dto/response"
	apperrors "VCS_API_Monitor/internal/monitor-service/errors"
	"VCS_API_Monitor/internal/monitor-service/model"
	"VCS_API_Monitor/internal/monitor-service/service"
	"VCS_API_Monitor/pkg/middleware"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultMetricsLimit = 100
	defaultAlertsLimit  = 50
	defaultExportLimit  = 1000
	maxLimit            = 10000
)

type MonitorHandler interface {
	CreateMonitor() gin.HandlerFunc
	GetMonitors() gin.HandlerFunc
	GetMonitor() gin.HandlerFunc
	UpdateMonitor() gin.HandlerFunc
	DeleteMonitor() gin.HandlerFunc
	SetMonitorActive() gin.HandlerFunc
	RunOnDemandTest() gin.HandlerFunc
	GetMonitorMetrics() gin.HandlerFunc
	ExportMonitorMetricsToExcelFile() gin.HandlerFunc
	GetMonitorAlerts() gin.HandlerFunc
	GetMonitorUptimePercentage() gin.HandlerFunc
}

type monitorHandler struct {
	logger         *zap.Logger
	monitorService service.MonitorService
}

func (*monitorHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "min":
		return fmt.Sprintf("The %s field must not be empty", err.Field())
	case "uuid":
		return fmt.Sprintf("The %s field is not a valid uuid", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (m *monitorHandler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var validatorError validator.ValidationErrors
		if errors.As(err, &validatorError) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: m.formatValidationError(validatorError[0]),
			})
		} else {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
		}
		return false
	}
	return true
}

// handleServiceError maps service sentinels to responses. Anything unknown is logged and hidden behind a 500.
func (m *monitorHandler) handleServiceError(c *gin.Context, err error, op string, errDescription string) {
	switch {
	case errors.Is(err, apperrors.ErrMonitorNotFound):
		c.JSON(http.StatusNotFound, response.Response{
			Message: "Monitor not found",
		})
	case errors.Is(err, apperrors.ErrRequestNotFound):
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Request not found",
		})
	case errors.Is(err, apperrors.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid end date",
		})
	default:
		err = fmt.Errorf("MonitorHandler.%s: %w", op, err)
		m.loggingError(c, err, errDescription, zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{
			Message: "Internal server error",
		})
	}
}

func (m *monitorHandler) CreateMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.MonitorRequest
		if !m.bindJSON(c, &req) {
			return
		}
		newMonitor := model.Monitor{
			Name:                      req.Name,
			RequestID:                 req.RequestID,
			UserID:                    middleware.UserID(c),
			IntervalMinutes:           *req.IntervalMinutes,
			ThresholdMs:               *req.ThresholdMs,
			IsActive:                  req.IsActive == nil || *req.IsActive,
			EmailNotificationsEnabled: req.EmailNotificationsEnabled == nil || *req.EmailNotificationsEnabled,
		}
		res, err := m.monitorService.CreateMonitor(c, newMonitor)
		if err != nil {
			m.handleServiceError(c, err, "CreateMonitor", "failed to create monitor")
			return
		}
		c.JSON(http.StatusCreated, toMonitorResponse(res))
	}
}

func (m *monitorHandler) GetMonitors() gin.HandlerFunc {
	return func(c *gin.Context) {
		monitors, err := m.monitorService.GetMonitors(c, middleware.UserID(c))
		if err != nil {
			m.handleServiceError(c, err, "GetMonitors", "failed to get monitors")
			return
		}
		monitorsRes := make([]response.MonitorResponse, 0, len(monitors))
		for _, monitor := range monitors {
			monitorsRes = append(monitorsRes, toMonitorResponse(monitor))
		}
		c.JSON(http.StatusOK, monitorsRes)
	}
}

func (m *monitorHandler) GetMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		monitor, err := m.monitorService.GetMonitor(c, middleware.UserID(c), id)
		if err != nil {
			m.handleServiceError(c, err, "GetMonitor", fmt.Sprintf("failed to get monitor %s", id))
			return
		}
		c.JSON(http.StatusOK, toMonitorResponse(monitor))
	}
}

func (m *monitorHandler) UpdateMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateMonitorRequest
		if !m.bindJSON(c, &req) {
			return
		}
		id := c.Param("id")
		update := service.MonitorUpdate{
			Name:                      req.Name,
			RequestID:                 req.RequestID,
			IntervalMinutes:           req.IntervalMinutes,
			ThresholdMs:               req.ThresholdMs,
			EmailNotificationsEnabled: req.EmailNotificationsEnabled,
		}
		updated, err := m.monitorService.UpdateMonitor(c, middleware.UserID(c), id, update)
		if err != nil {
			m.handleServiceError(c, err, "UpdateMonitor", fmt.Sprintf("failed to update monitor %s", id))
			return
		}
		c.JSON(http.StatusOK, toMonitorResponse(updated))
	}
}

func (m *monitorHandler) DeleteMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := m.monitorService.DeleteMonitor(c, middleware.UserID(c), id); err != nil {
			m.handleServiceError(c, err, "DeleteMonitor", fmt.Sprintf("failed to delete monitor %s", id))
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Monitor deleted",
		})
	}
}

func (m *monitorHandler) SetMonitorActive() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.MonitorActiveRequest
		if !m.bindJSON(c, &req) {
			return
		}
		id := c.Param("id")
		monitor, err := m.monitorService.SetMonitorActive(c, middleware.UserID(c), id, *req.IsActive)
		if err != nil {
			m.handleServiceError(c, err, "SetMonitorActive", fmt.Sprintf("failed to set active state of monitor %s", id))
			return
		}
		c.JSON(http.StatusOK, toMonitorResponse(monitor))
	}
}

func (m *monitorHandler) RunOnDemandTest() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res, err := m.monitorService.RunOnDemandTest(c, middleware.UserID(c), id)
		if err != nil {
			m.handleServiceError(c, err, "RunOnDemandTest", fmt.Sprintf("failed to test monitor %s", id))
			return
		}
		c.JSON(http.StatusOK, response.TestResultResponse{
			Success:      res.Success,
			StatusCode:   res.StatusCode,
			StatusText:   res.StatusText,
			Data:         res.Data,
			Headers:      res.Headers,
			ResponseTime: res.ResponseTime,
			Size:         res.Size,
			Error:        res.Error,
		})
	}
}

func (m *monitorHandler) GetMonitorMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := m.parseLimit(c, defaultMetricsLimit)
		if !ok {
			return
		}
		id := c.Param("id")
		metrics, err := m.monitorService.GetMonitorMetrics(c, middleware.UserID(c), id, limit)
		if err != nil {
			m.handleServiceError(c, err, "GetMonitorMetrics", fmt.Sprintf("failed to get metrics of monitor %s", id))
			return
		}
		metricsRes := make([]response.MetricResponse, 0, len(metrics))
		for _, metric := range metrics {
			metricsRes = append(metricsRes, response.MetricResponse{
				ID:             metric.ID,
				StatusCode:     metric.StatusCode,
				ResponseTimeMs: metric.ResponseTimeMs,
				Success:        metric.Success,
				ErrorMessage:   metric.ErrorMessage,
				CreatedAt:      metric.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, metricsRes)
	}
}

func (m *monitorHandler) ExportMonitorMetricsToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := m.parseLimit(c, defaultExportLimit)
		if !ok {
			return
		}
		id := c.Param("id")
		metrics, err := m.monitorService.GetMonitorMetrics(c, middleware.UserID(c), id, limit)
		if err != nil {
			m.handleServiceError(c, err, "ExportMonitorMetricsToExcelFile", fmt.Sprintf("failed to export metrics of monitor %s", id))
			return
		}
		file, err := generateMetricsExcelFile(metrics)
		if err != nil {
			m.handleServiceError(c, err, "ExportMonitorMetricsToExcelFile", fmt.Sprintf("failed to export metrics of monitor %s", id))
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("metrics-%s-%s.xlsx", id, time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("MonitorHandler.ExportMonitorMetricsToExcelFile: %w", err)
			m.loggingError(c, err, fmt.Sprintf("failed to write metrics export of monitor %s", id), zap.ErrorLevel)
			return
		}
		c.Status(http.StatusOK)
	}
}

const metricsSheetName = "Metrics"

func generateMetricsExcelFile(metrics []model.Metric) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), metricsSheetName); err != nil {
		f.Close()
		return nil, err
	}
	headers := []interface{}{"id", "created_at", "success", "status_code", "response_time_ms", "error_message"}
	if err := f.SetSheetRow(metricsSheetName, "A1", &headers); err != nil {
		f.Close()
		return nil, err
	}
	for i, metric := range metrics {
		var statusCode, errorMessage interface{}
		if metric.StatusCode != nil {
			statusCode = *metric.StatusCode
		}
		if metric.ErrorMessage != nil {
			errorMessage = *metric.ErrorMessage
		}
		rowData := []interface{}{
			metric.ID,
			metric.CreatedAt.Format("2006-01-02 15:04:05"),
			metric.Success,
			statusCode,
			metric.ResponseTimeMs,
			errorMessage,
		}
		if err := f.SetSheetRow(metricsSheetName, fmt.Sprintf("A%d", i+2), &rowData); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func (m *monitorHandler) GetMonitorAlerts() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := m.parseLimit(c, defaultAlertsLimit)
		if !ok {
			return
		}
		id := c.Param("id")
		alerts, err := m.monitorService.GetMonitorAlerts(c, middleware.UserID(c), id, limit)
		if err != nil {
			m.handleServiceError(c, err, "GetMonitorAlerts", fmt.Sprintf("failed to get alerts of monitor %s", id))
			return
		}
		alertsRes := make([]response.AlertResponse, 0, len(alerts))
		for _, alert := range alerts {
			alertsRes = append(alertsRes, response.AlertResponse{
				ID:        alert.ID,
				Message:   alert.Message,
				Severity:  alert.Severity,
				IsRead:    alert.IsRead,
				CreatedAt: alert.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, alertsRes)
	}
}

func (m *monitorHandler) GetMonitorUptimePercentage() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		startTime, err := time.Parse("2006-01-02", c.Query("start_date"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid start date",
			})
			return
		}
		endTime, err := time.Parse("2006-01-02", c.Query("end_date"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		// end_date is inclusive
		res, err := m.monitorService.GetMonitorUptimePercentage(c, middleware.UserID(c), id, startTime, endTime.AddDate(0, 0, 1))
		if err != nil {
			m.handleServiceError(c, err, "GetMonitorUptimePercentage",
				fmt.Sprintf("failed to get uptime percentage of monitor %s from %s to %s", id, startTime, endTime))
			return
		}
		c.JSON(http.StatusOK, response.UptimeResponse{
			UptimePercentage: res,
		})
	}
}

func (m *monitorHandler) parseLimit(c *gin.Context, defaultLimit int) (int, bool) {
	l, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Limit must be an integer",
		})
		return 0, false
	}
	if l <= 0 {
		l = defaultLimit
	}
	return min(l, maxLimit), true
}

func toMonitorResponse(monitor model.Monitor) response.MonitorResponse {
	return response.MonitorResponse{
		ID:                        monitor.ID,
		Name:                      monitor.Name,
		RequestID:                 monitor.RequestID,
		IntervalMinutes:           monitor.IntervalMinutes,
		ThresholdMs:               monitor.ThresholdMs,
		IsActive:                  monitor.IsActive,
		ConsecutiveFailures:       monitor.ConsecutiveFailures,
		EmailNotificationsEnabled: monitor.EmailNotificationsEnabled,
		LastRun:                   monitor.LastRun,
		NextRun:                   monitor.NextRun,
		LastEmailSent:             monitor.LastEmailSent,
		CreatedAt:                 monitor.CreatedAt,
		UpdatedAt:                 monitor.UpdatedAt,
	}
}

func (m *monitorHandler) loggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	var data []zapcore.Field
	data = append(data, zap.Error(err))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	if userID := middleware.UserID(c); userID != "" {
		data = append(data, zap.String("user_id", userID))
	}
	m.logger.Log(logLevel, errDescription, data...)
}

func NewMonitorHandler(logger *zap.Logger, monitorService service.MonitorService) MonitorHandler {
	return &monitorHandler{
		logger:         logger,
		monitorService: monitorService,
	}
}

package routes

import (
	"VCS_API_Monitor/internal/monitor-service/api/handler"
	"VCS_API_Monitor/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const (
	ScopeMonitorsRead   = "monitors:read"
	ScopeMonitorsCreate = "monitors:create"
	ScopeMonitorsUpdate = "monitors:update"
	ScopeMonitorsDelete = "monitors:delete"
)

func SetUpMonitorRoutes(r *gin.Engine, handler handler.MonitorHandler, m middleware.AuthMiddleware) {
	monitorRoutes := r.Group("/monitors", m.RequireUser())
	monitorRoutes.POST("", m.CheckUserPermission(ScopeMonitorsCreate), handler.CreateMonitor())
	monitorRoutes.GET("", m.CheckUserPermission(ScopeMonitorsRead), handler.GetMonitors())
	monitorRoutes.GET("/:id", m.CheckUserPermission(ScopeMonitorsRead), handler.GetMonitor())
	monitorRoutes.PATCH("/:id", m.CheckUserPermission(ScopeMonitorsUpdate), handler.UpdateMonitor())
	monitorRoutes.DELETE("/:id", m.CheckUserPermission(ScopeMonitorsDelete), handler.DeleteMonitor())
	monitorRoutes.PATCH("/:id/active", m.CheckUserPermission(ScopeMonitorsUpdate), handler.SetMonitorActive())
	monitorRoutes.POST("/:id/test", m.CheckUserPermission(ScopeMonitorsRead), handler.RunOnDemandTest())
	monitorRoutes.GET("/:id/metrics", m.CheckUserPermission(ScopeMonitorsRead), handler.GetMonitorMetrics())
	monitorRoutes.GET("/:id/metrics/export", m.CheckUserPermission(ScopeMonitorsRead), handler.ExportMonitorMetricsToExcelFile())
	monitorRoutes.GET("/:id/alerts", m.CheckUserPermission(ScopeMonitorsRead), handler.GetMonitorAlerts())
	monitorRoutes.GET("/:id/uptime", m.CheckUserPermission(ScopeMonitorsRead), handler.GetMonitorUptimePercentage())
}

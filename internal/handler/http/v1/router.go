package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check без аутентификации
	api.GET("/system/health", h.healthCheck)

	secured := api.Group("")
	secured.Use(APIKeyAuthMiddleware(h.cfg, h.logger), IdentityMiddleware())

	// Маршруты тревог и тапов
	alerts := secured.Group("/alerts")
	{
		alerts.POST("", h.createAlert)
		alerts.GET("", h.listActiveAlerts)
		alerts.GET("/mine", h.listReporterAlerts)
		alerts.GET("/nearby", h.nearbyAlerts)
		alerts.GET("/history", h.alertHistory)
		alerts.GET("/:id", h.getAlert)
		alerts.POST("/:id/taps", h.recordTap)
		alerts.PATCH("/:id/status", h.updateStatus)
		alerts.PATCH("/:id/recording", h.updateRecording)
		alerts.POST("/:id/media", h.attachMedia)
	}

	// Маршруты профилей и справочника координат
	users := secured.Group("/users")
	{
		users.POST("/sync", h.syncUser)
		users.PUT("/location", h.updateLocation)
	}

	// Маршруты ленты уведомлений
	notifications := secured.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/unread/count", h.unreadCount)
		notifications.POST("/:id/read", h.markNotificationRead)
		notifications.POST("/read-all", h.markAllNotificationsRead)
		notifications.DELETE("/:id", h.deleteNotification)
	}
}

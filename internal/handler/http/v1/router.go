package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Путь обнаружения
	api.POST("/detection", h.detect)
	api.POST("/emergency/trigger", h.triggerManual)

	// Путь обновления местоположения (геозоны)
	api.POST("/location/update", h.updateLocation)

	// Жизненный цикл тревог
	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.GET("/:id", h.getAlert)
		alerts.POST("/:id/acknowledge", h.acknowledgeAlert)
		alerts.POST("/:id/resolve", h.resolveAlert)
	}

	// Экстренные контакты туриста
	tourists := api.Group("/tourists")
	{
		tourists.PUT("/:id/contacts", h.replaceContacts)
		tourists.GET("/:id/contacts", h.listContacts)
	}

	// Статистика
	api.GET("/stats", h.getStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

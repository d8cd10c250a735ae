package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Чтение состояния открыто
	api.GET("/aircraft", h.listAircraft)
	api.GET("/history", h.listHistory)
	api.GET("/stream", h.streamSnapshots)

	sim := api.Group("/simulation")
	{
		sim.GET("/stats", h.getStats)

		// Управление прогоном только по API-ключу
		control := sim.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
		control.POST("/reset", h.resetSimulation)
		control.POST("/tick", h.stepSimulation)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

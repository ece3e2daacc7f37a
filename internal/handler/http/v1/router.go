package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check остается открытым
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Согласованное представление для карты и ленты тревог
	monitor := protected.Group("/monitor")
	{
		monitor.GET("/positions", h.getPositions)
		monitor.GET("/alerts", h.getAlerts)
		monitor.GET("/stats", h.getStats)
	}

	// Действия оператора над тревогами
	alerts := protected.Group("/alerts")
	{
		alerts.POST("/:id/acknowledge", h.acknowledgeAlert)
		alerts.POST("/:id/resolve", h.resolveAlert)
		alerts.POST("/:id/claim", h.claimIncident)
		alerts.POST("/:id/attest", h.attestAlert)
	}

	// Управление воспроизведением истории
	replayGroup := protected.Group("/replay")
	{
		replayGroup.GET("/status", h.getReplayStatus)
		replayGroup.POST("/select", h.selectReplayDevice)
		replayGroup.POST("/play", h.playReplay)
		replayGroup.POST("/pause", h.pauseReplay)
		replayGroup.POST("/seek", h.seekReplay)
		replayGroup.DELETE("", h.closeReplay)
	}

	// Журнал наблюдаемых тревог
	protected.GET("/journal/alerts", h.getJournal)
}

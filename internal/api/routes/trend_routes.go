package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wonny/stocklens/internal/api/handlers"
)

// RegisterTrendRoutes registers the stateless classifier route
func RegisterTrendRoutes(api *gin.RouterGroup, h *handlers.TrendHandler) {
	api.POST("/trend/classify", h.Classify)
}

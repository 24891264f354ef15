package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wonny/stocklens/internal/api/handlers"
)

// RegisterStocksRoutes registers all stock lookup routes
func RegisterStocksRoutes(api *gin.RouterGroup, h *handlers.StockHandler) {
	stocks := api.Group("/stocks")
	{
		// static segments before :symbol
		stocks.GET("/resolve", h.Resolve)
		stocks.GET("/suggest", h.Suggest)
		stocks.GET("/:symbol", h.GetBySymbol)
		stocks.GET("/:symbol/trend", h.Trend)
	}
}

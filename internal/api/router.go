package api

import (
	"github.com/gin-gonic/gin"
	"github.com/wonny/stocklens/internal/api/handlers"
	"github.com/wonny/stocklens/internal/api/middleware"
	"github.com/wonny/stocklens/internal/api/routes"
	"github.com/wonny/stocklens/internal/pkg/config"
	"github.com/wonny/stocklens/internal/pkg/logger"
)

// Router holds all dependencies for API routing
type Router struct {
	engine        *gin.Engine
	config        *config.Config
	healthHandler *handlers.HealthHandler
	stockHandler  *handlers.StockHandler
	trendHandler  *handlers.TrendHandler
}

// NewRouter creates a new API router with all dependencies
func NewRouter(cfg *config.Config, db handlers.HealthChecker, svc handlers.LookupService, version string) *Router {
	gin.SetMode(cfg.Server.Mode)

	router := &Router{
		engine:        gin.New(),
		config:        cfg,
		healthHandler: handlers.NewHealthHandler(db, version),
		stockHandler:  handlers.NewStockHandler(svc),
		trendHandler:  handlers.NewTrendHandler(),
	}

	router.setupMiddlewares()
	router.setupRoutes()

	return router
}

// setupMiddlewares configures all global middlewares
func (r *Router) setupMiddlewares() {
	// Recovery must be first
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	loggingCfg := middleware.LoggingConfig{
		SkipPaths: []string{"/health", "/health/ready"},
	}
	if r.config.Logging.FileEnabled {
		accessLogger := logger.NewAccessLogger(
			r.config.Logging.FilePath,
			r.config.Logging.RotationSize,
			r.config.Logging.RetentionDays,
		)
		loggingCfg.AccessLogger = &accessLogger
	}
	r.engine.Use(middleware.Logging(loggingCfg))

	if r.config.Server.Mode == gin.DebugMode {
		r.engine.Use(middleware.CORS(middleware.DevelopmentCORSConfig()))
	} else {
		r.engine.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	}
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	r.engine.GET("/health", r.healthHandler.Health)
	r.engine.GET("/health/ready", r.healthHandler.Ready)

	api := r.engine.Group("/api")
	api.GET("/health/detailed", r.healthHandler.Detailed)

	routes.RegisterStocksRoutes(api, r.stockHandler)
	routes.RegisterTrendRoutes(api, r.trendHandler)
}

// Engine returns the underlying Gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

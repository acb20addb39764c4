package handlers

import (
	"machine_monitoring/internal/logger"
	"machine_monitoring/internal/metrics"
	"machine_monitoring/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	metrics  *metrics.Metrics
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. m and log may be nil.
func NewHandler(services *service.Service, m *metrics.Metrics, log *logger.Logger) *Handler {
	return &Handler{services: services, metrics: m, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.metrics.GinMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	router.GET("/health", h.health)

	// Sample payload for the sensors client; intentionally unauthenticated.
	router.GET("/api/sensors", h.getSensors)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Chart stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.requireOperator)
	{
		api.GET("/processes", h.getProcesses)
		api.GET("/charts", h.getChartTypes)
		api.GET("/overrides", h.listOverrides)
		api.GET("/logs", h.getLogs)
		h.registerMachineRoutes(api)
		h.registerFeedRoutes(api)
	}
}

func (h *Handler) registerMachineRoutes(api *gin.RouterGroup) {
	api.GET("/machines", h.getMachines)
	machine := api.Group("/machines/:id")
	{
		machine.GET("/readings", h.getReadings)
		machine.GET("/hourly", h.getHourly)
		machine.GET("/chart", h.getChart)

		// Body example: {"temperature":850}
		machine.GET("/override", h.getOverride)
		machine.PUT("/override", h.setOverride)
		machine.DELETE("/override", h.clearOverride)
	}
}

func (h *Handler) registerFeedRoutes(api *gin.RouterGroup) {
	feed := api.Group("/feed")
	{
		feed.GET("", h.getFeed)
		feed.GET("/:id", h.getFeedMachine)
	}
}

package server

import (
	"github.com/gin-gonic/gin"

	"airbnb-dashboard/render"
	"airbnb-dashboard/utils"
)

type Config struct {
	DashboardHandler *DashboardHandler
	Logger           *utils.Logger
	RateLimitRPS     float64
	RateLimitBurst   int
}

func NewRouter(cfg *Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(cfg.Logger))
	router.SetHTMLTemplate(render.DashboardTemplate())

	router.GET("/healthz", cfg.DashboardHandler.Health)

	pages := router.Group("/", RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	registerDashboardRoutes(pages, cfg.DashboardHandler)

	return router
}

func registerDashboardRoutes(router *gin.RouterGroup, h *DashboardHandler) {
	router.GET("/", h.Index)
	router.GET("/airbnb-dashboard", h.Index)
	router.GET("/map", h.Map)

	api := router.Group("/api")
	{
		api.GET("/figures", h.Figures)
		api.GET("/markers", h.Markers)
	}
}

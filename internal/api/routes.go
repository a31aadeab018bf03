package api

import (
	_ "embed"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"landing_page_server/internal/metrics"
)

//go:embed web/index.html
var indexHTML []byte

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(h *APIHandler, logger *slog.Logger, recorder *metrics.Recorder) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.Use(Logger(logger))
	router.Use(Recovery(logger, recorder))
	RegisterRoutes(router, h, recorder)
	return router
}

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler, recorder *metrics.Recorder) {
	// Browser form
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/generate", h.Generate)
		apiGroup.POST("/generate/download", h.Download)
	}

	router.GET("/health", h.Health)

	if recorder != nil {
		router.GET("/metrics", gin.WrapH(recorder.Handler()))
	}
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meetinglens/meetinglens/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	analysisHandler *AnalysisHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analysisHandler *AnalysisHandler) *Router {
	return &Router{
		cfg:             cfg,
		analysisHandler: analysisHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	e.POST("/analyze", rt.analysisHandler.Analyze)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}

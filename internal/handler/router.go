package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/justinsenglish/crave.api/internal/config"
	"github.com/justinsenglish/crave.api/internal/metrics"
	"github.com/justinsenglish/crave.api/internal/middleware"
	"github.com/justinsenglish/crave.api/internal/service"
)

// NewRouter wires the full HTTP surface. Both the server binary and tests
// build their router here; the gateway is injected so tests can use a fake.
func NewRouter(cfg *config.Config, gw service.Gateway, timezone *time.Location) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(metrics.Middleware())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello World!"})
	})

	healthHandler := NewHealthHandler(cfg.SquareAccessToken != "")
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", metrics.Handler())

	SetupSwagger(router)

	franchiseService := service.NewFranchiseService(gw)
	salesService := service.NewSalesService(gw, timezone)

	franchiseHandler := NewFranchiseHandler(franchiseService)
	royaltyHandler := NewRoyaltyHandler(salesService)

	api := router.Group("/api/v1")
	if !cfg.AuthDisabled {
		api.Use(middleware.RequireSession(cfg.SessionJWTSecret))
	}
	{
		api.GET("/franchises", franchiseHandler.List)
		api.GET("/franchises/:locationId", franchiseHandler.Get)
		api.GET("/franchises/:locationId/royalties", royaltyHandler.GetRoyalties)
	}

	router.NoRoute(func(c *gin.Context) {
		log.Warn().Str("path", c.Request.URL.Path).Msg("unmatched route")
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: "not found"})
	})

	return router
}

package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"deskbook-backend/config"
	"deskbook-backend/internal/mw"
	"deskbook-backend/internal/service"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(svc *service.Service, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(svc)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	// The report endpoint is derived state; a short-lived response cache
	// absorbs dashboard polling. Inventory reads stay uncached so mutations
	// are visible immediately.
	cacheStore := cache.New(cfg.CacheTTL, 10*time.Minute)
	caching := mw.Cache(cacheStore, cfg.CacheTTL)

	r.GET("/health", HealthCheck)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/desks", handler.AddDesk)
		api.GET("/desks", handler.GetDesks)
		api.PUT("/desks/:id/blocked", handler.BlockDesk)
		api.POST("/desks/:id/preferred", handler.MarkPreferredDesk)

		api.POST("/floors", handler.UploadFloorMap)
		api.GET("/floors", handler.GetFloors)
		api.DELETE("/floors/:id", handler.DeleteFloorMap)

		api.POST("/reservations", handler.MakeReservation)
		api.GET("/reservations", handler.GetReservations)

		api.GET("/reports/occupancy", caching, handler.GetOccupancyReport)
	}

	return r
}

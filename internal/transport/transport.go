package transport

import (
	"net/http"
	"slices"

	"github.com/ds124wfegd/tomato-gateway/config"
	"github.com/ds124wfegd/tomato-gateway/internal/transport/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRoutes(cfg *config.Config, classHandler *ClassificationHandler, sysHandler *SystemHandler) *gin.Engine {

	router := gin.New()
	if cfg.Upload.MaxMemory > 0 {
		router.MaxMultipartMemory = cfg.Upload.MaxMemory
	}

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(cors.New(corsConfig(cfg.CORS)))
	if cfg.Server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	}

	api := router.Group("/api")
	{
		api.POST("/diseases/analyze", classHandler.AnalyzeDisease)
		api.POST("/quality/analyze", classHandler.AnalyzeQuality)

		api.GET("/v1/stats", sysHandler.GetStats)
	}

	// Health check
	router.GET("/health", sysHandler.Health)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}
	if len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowOrigins
	}
	return c
}

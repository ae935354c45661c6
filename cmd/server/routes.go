package main

import (
	"github.com/gin-gonic/gin"
	"github.com/vlourenco/solarapi/internal/config"
	"github.com/vlourenco/solarapi/internal/handlers"
	"github.com/vlourenco/solarapi/internal/middleware"
	"github.com/vlourenco/solarapi/internal/models"
	"github.com/vlourenco/solarapi/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, cfg *config.Config) {
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())

	writeLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	r.Use(writeLimiter.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "solarapi"})
	})

	db := models.GetDB()

	clientHandler := handlers.NewClientHandler(db)
	r.GET("/client", clientHandler.List)
	r.POST("/client", clientHandler.Create)
	r.GET("/client/:id", clientHandler.GetByID)
	r.PUT("/client/:id", clientHandler.Update)
	r.DELETE("/client/:id", clientHandler.Delete)

	equipmentHandler := handlers.NewEquipmentHandler(db)
	r.GET("/equipment", equipmentHandler.List)
	r.POST("/equipment", equipmentHandler.Create)
	r.GET("/equipment/:id", equipmentHandler.GetByID)
	r.PUT("/equipment/:id", equipmentHandler.Update)
	r.DELETE("/equipment/:id", equipmentHandler.Delete)

	installTypeHandler := handlers.NewInstallationTypeHandler(db)
	r.GET("/install_type", installTypeHandler.List)
	r.POST("/install_type", installTypeHandler.Create)
	r.GET("/install_type/:id", installTypeHandler.GetByID)
	r.PUT("/install_type/:id", installTypeHandler.Update)
	r.DELETE("/install_type/:id", installTypeHandler.Delete)

	projectHandler := handlers.NewProjectHandler(db)
	r.GET("/projects", projectHandler.List)
	r.POST("/projects", projectHandler.Create)
	r.GET("/projects/:id", projectHandler.GetByID)
	r.PUT("/projects/:id", projectHandler.Update)
	r.DELETE("/projects/:id", projectHandler.Delete)
}

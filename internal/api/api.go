// Package api exposes the HTTP surface. Handlers validate before any
// network work, translate internal failures into user-facing messages,
// and log the underlying cause so the friendly text never hides it.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/moramnavadeep/FreshNCook/internal/middleware"
	"github.com/moramnavadeep/FreshNCook/internal/schema"
	"github.com/moramnavadeep/FreshNCook/internal/service"
)

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "FreshNCook API is running",
		"version": "v1.0.0",
	})
}

// Services bundles every service the HTTP layer depends on.
type Services struct {
	Pantry   service.IPantryService
	Recipes  service.IRecipeService
	Spoilage service.ISpoilageService
	Alerts   service.IAlertService
	Profiles service.IProfileService
}

// RegisterRoutes registers all API routes.
func RegisterRoutes(router *gin.Engine, svcs *Services, jwtSecret string, logger *zap.Logger) {
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	pantryHandler := NewPantryHandler(svcs.Pantry, logger)
	recipeHandler := NewRecipeHandler(svcs.Recipes, logger)
	spoilageHandler := NewSpoilageHandler(svcs.Spoilage)
	alertHandler := NewAlertHandler(svcs.Alerts, logger)
	profileHandler := NewProfileHandler(svcs.Profiles, logger)

	v1 := router.Group("/api/v1")
	pantryHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	spoilageHandler.RegisterRoutes(v1)
	alertHandler.RegisterRoutes(v1)

	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(jwtSecret))
	profileHandler.RegisterRoutes(authed)
}

// respondError maps an internal error onto a status code and a
// user-facing message, logging the real cause. Validation failures are
// the caller's fault and keep their detail; everything else gets the
// flow's friendly message.
func respondError(c *gin.Context, logger *zap.Logger, err error, friendly string) {
	if schema.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": friendly})
}

package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/moramnavadeep/FreshNCook/config"
	"github.com/moramnavadeep/FreshNCook/internal/api"
	"github.com/moramnavadeep/FreshNCook/internal/middleware"
)

// SetupRouter configures the application routes.
func SetupRouter(svcs *api.Services, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	if config.GetEnvironment() == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	api.RegisterRoutes(router, svcs, cfg.JWTSecret, logger)

	return router
}

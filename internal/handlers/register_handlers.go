package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/konskyyy/ewidencja-sprzetu/cmd/docs"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	portsrepo "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/repositories"
	portssvc "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/services"
	"github.com/konskyyy/ewidencja-sprzetu/internal/middleware"
	"github.com/konskyyy/ewidencja-sprzetu/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes. health may be nil, in which
// case /api/health does not touch the database.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	health portsrepo.HealthChecker,
	apiMiddleware ...gin.HandlerFunc,
) {
	if !cfg.EnableDBCheck {
		health = nil
	}
	home := &homeHandler{version: cfg.ServiceVersion, health: health}

	api := r.Group("/api", apiMiddleware...)
	api.GET("/health", home.healthCheck)
	api.GET("/version", home.getVersion)

	setupProtectedRoutes(api, cfg, services, home)

	setupSwaggerRoutes(r, cfg)

	r.NoRoute(notFound)
}

// setupProtectedRoutes registers everything that needs a bearer token.
func setupProtectedRoutes(
	api *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	home *homeHandler,
) {
	protected := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))

	protected.GET("/auth/me", home.me)

	for _, kind := range domain.SupportedEntityKinds() {
		RegisterCommentRoutes(protected, kind, services.Comment)
	}
	RegisterUpdatesRoutes(protected, services.Feed, services.ReadState)
	RegisterCalibrationRoutes(protected, services.Calibration)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

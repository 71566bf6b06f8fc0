package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"dc-atlas-api-server/config"
	"dc-atlas-api-server/internal/api/handlers"
	"dc-atlas-api-server/internal/api/middleware"
	"dc-atlas-api-server/internal/catalog"
	"dc-atlas-api-server/internal/models"
	"dc-atlas-api-server/internal/session"
	"dc-atlas-api-server/internal/socket"
	"dc-atlas-api-server/internal/store"
)

// SetupRouter wires handlers, middleware and routes.
func SetupRouter(
	cfg config.Config,
	dataCenters *store.DataCenterStore,
	users *store.UserStore,
	sessions *session.Mirror,
	hub *socket.Hub,
	log *zap.Logger,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	memo := &catalog.Memo{}
	authHandler := &handlers.AuthHandler{Users: users, Sessions: sessions}
	dcHandler := &handlers.DataCenterHandler{Store: dataCenters, Users: users, Memo: memo}
	analyticsHandler := &handlers.AnalyticsHandler{Store: dataCenters, Memo: memo}
	compareHandler := &handlers.CompareHandler{Store: dataCenters}
	userHandler := &handlers.UserHandler{Users: users}
	adminHandler := &handlers.AdminHandler{Store: dataCenters, Users: users}
	telemetryHandler := &handlers.TelemetryHandler{Hub: hub, Log: log}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ws/telemetry", telemetryHandler.ServeWs)

		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/logout", middleware.Authenticate(), authHandler.Logout)
		}

		// The directory is public; a presented token only feeds country
		// prioritization.
		public := apiV1.Group("/")
		public.Use(middleware.OptionalAuthenticate())
		{
			public.GET("/datacenters", dcHandler.List)
			public.GET("/datacenters/:id", dcHandler.Get)
			public.GET("/filter-options", dcHandler.Options)
			public.GET("/analytics", analyticsHandler.Get)
			public.POST("/compare", compareHandler.Compare)
		}

		admin := apiV1.Group("/admin")
		admin.Use(middleware.Authenticate())
		admin.Use(middleware.Authorize(models.RoleAdmin))
		{
			admin.GET("/stats", adminHandler.Stats)

			datacenters := admin.Group("/datacenters")
			{
				datacenters.POST("/", dcHandler.Create)
				datacenters.PUT("/:id", dcHandler.Update)
				datacenters.DELETE("/:id", dcHandler.Delete)
			}

			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("/", userHandler.List)
				adminUsers.POST("/", userHandler.Create)
				adminUsers.PUT("/:id", userHandler.Update)
				adminUsers.DELETE("/:id", userHandler.Delete)
			}
		}
	}

	return router
}

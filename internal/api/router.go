package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/campuscache/campuscache/internal/app"
	iauth "github.com/campuscache/campuscache/internal/auth"
	"github.com/campuscache/campuscache/internal/handlers"
	"github.com/campuscache/campuscache/internal/middleware"
	"github.com/campuscache/campuscache/internal/services"
)

// NewRouter builds the Gin engine, wires middleware and registers all routes.
func NewRouter(db *gorm.DB, jwt *iauth.JWTService, cfg *app.Config) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if jwt == nil {
		return nil, fmt.Errorf("jwt service must be provided")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config must be provided")
	}

	userSvc, err := services.NewUserService(db)
	if err != nil {
		return nil, err
	}
	cacheSvc, err := services.NewCacheService(db)
	if err != nil {
		return nil, err
	}
	logSvc, err := services.NewLogService(db)
	if err != nil {
		return nil, err
	}
	likeSvc, err := services.NewLikeService(db)
	if err != nil {
		return nil, err
	}
	leaderboardSvc, err := services.NewLeaderboardService(db)
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSWithOrigins(cfg.CORS.AllowedOrigins))

	// Operational endpoints (public)
	r.GET("/health", handlers.Health())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := handlers.NewAuthHandler(userSvc, jwt)
	cacheHandler := handlers.NewCacheHandler(cacheSvc)
	logHandler := handlers.NewLogHandler(logSvc)
	likeHandler := handlers.NewLikeHandler(likeSvc)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardSvc)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/login", authHandler.Login)
		public.GET("/caches", cacheHandler.List)
		public.GET("/caches/:id", cacheHandler.Get)
		public.GET("/leaderboard", leaderboardHandler.Top)
	}

	// Protected routes
	requireAuth := middleware.Auth(jwt, userSvc)

	api := r.Group("/api")
	api.Use(requireAuth)
	{
		api.GET("/auth/me", authHandler.Me)

		api.POST("/caches", cacheHandler.Create)
		api.GET("/caches/mine", cacheHandler.Mine)
		api.PATCH("/caches/:id", cacheHandler.Update)
		api.DELETE("/caches/:id", cacheHandler.Delete)

		api.GET("/caches/liked", likeHandler.Liked)
		api.PUT("/caches/:id/like", likeHandler.Like)
		api.DELETE("/caches/:id/like", likeHandler.Unlike)

		api.POST("/logs", logHandler.Create)
		api.GET("/logs/mine", logHandler.Mine)
	}

	r.NoRoute(middleware.NotFoundHandler)

	return r, nil
}

package handler

import (
	"context"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"mediareview/internal/http-api/middleware"
	"mediareview/internal/http-api/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const Version = "1.0.0"

// RouterConfig carries everything the HTTP surface needs.
type RouterConfig struct {
	Auth      service.AuthService
	Ratings   service.RatingService
	Favorites service.FavoriteService
	Discovery service.DiscoveryService

	Logger         *slog.Logger
	CORSOrigins    []string
	RequestTimeout time.Duration
	// AuthLimiter throttles /api/auth; nil disables throttling.
	AuthLimiter middleware.Limiter
	// Health pings the store; nil reports healthy.
	Health func(ctx context.Context) error
}

// NewRouter builds the gin engine with every route and middleware mounted.
func NewRouter(cfg RouterConfig) *gin.Engine {
	useJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.GET("/", rootInfo)
	r.GET("/health", health(cfg.Health, cfg.Logger))

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	if cfg.AuthLimiter != nil {
		authGroup.Use(middleware.RateLimit(cfg.AuthLimiter, cfg.Logger))
	}
	NewAuthHandler(cfg.Auth, cfg.Logger).RegisterRoutes(authGroup)

	NewRatingHandler(cfg.Ratings, cfg.Logger).RegisterRoutes(api.Group("/ratings"))
	NewFavoriteHandler(cfg.Favorites, cfg.Logger).RegisterRoutes(api.Group("/favorites"))

	discovery := NewDiscoveryHandler(cfg.Discovery, cfg.Logger)
	api.GET("/recommendations/:user_id", discovery.Recommendations)
	api.GET("/ranking", discovery.Ranking)

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// useJSONFieldNames makes binding errors name fields as clients send them.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}

// rootInfo describes the service and its endpoints
// GET /
func rootInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "media review API is running",
		"version": Version,
		"endpoints": gin.H{
			"auth":            "/api/auth/register, /api/auth/login",
			"ratings":         "/api/ratings/{user_id}",
			"favorites":       "/api/favorites/{user_id}",
			"recommendations": "/api/recommendations/{user_id}",
			"ranking":         "/api/ranking",
		},
	})
}

// health reports whether the store answers
// GET /health
func health(ping func(ctx context.Context) error, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			if err := ping(c.Request.Context()); err != nil {
				logger.Error("health check failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

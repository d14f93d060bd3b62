package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devnook/devnook-api/internal/auth"
	"github.com/devnook/devnook-api/internal/config"
	"github.com/devnook/devnook-api/internal/repository"
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// NewRouter creates and configures the Gin router
func NewRouter(repos *repository.Repositories, db HealthChecker, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(cors.New(corsConfig(cfg)))

	// Handlers
	tokens := auth.NewManager(&cfg.Auth)
	blogHandler := NewBlogHandler(repos.Blog, log)
	commentHandler := NewCommentHandler(repos.Comment, log)
	wishlistHandler := NewWishlistHandler(repos.Wishlist, log)
	authHandler := NewAuthHandler(tokens, &cfg.Auth, log)

	// Liveness and health
	router.GET("/", liveness)
	router.GET("/health", healthCheck(db))

	// Blog endpoints
	router.POST("/blogs", blogHandler.Create)
	router.GET("/blogs", blogHandler.List)
	router.GET("/blogs/:id", blogHandler.GetByID)
	router.PATCH("/blogs/:id", blogHandler.Update)
	router.GET("/search", blogHandler.Search)

	// Comment endpoints
	router.POST("/comments", commentHandler.Create)
	router.GET("/comments", commentHandler.ListByPostID)

	// Wishlist endpoints; listing is session-guarded only when an email
	// filter is supplied (see sessionGuard)
	router.POST("/wishlist", wishlistHandler.Create)
	router.GET("/wishlist", sessionGuard(tokens), wishlistHandler.List)
	router.DELETE("/wishlist/:id", wishlistHandler.DeleteByID)

	// Session endpoints
	router.POST("/jwt", authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	return router
}

// liveness returns the plain liveness text
func liveness(c *gin.Context) {
	c.String(http.StatusOK, "Dev Nook Server Is Running")
}

// healthCheck returns the health status including a database ping
func healthCheck(db HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := db.HealthCheck(c.Request.Context()); err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "devnook-api",
		})
	}
}

// corsConfig builds the browser CORS policy. Credentials must be
// allowed so the session cookie travels with wishlist requests.
func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.AllowCredentials = true
	corsCfg.MaxAge = 5 * time.Minute
	return corsCfg
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests with a per-request id
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		requestID := uuid.New().String()
		c.Set(ctxRequestID, requestID)

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

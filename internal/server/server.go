package server

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// Config holds the HTTP layer settings.
type Config struct {
	RatePerSecond float64 // per client IP on /api; zero disables limiting
	Burst         int
}

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler, config Config) *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())

	setupRoutes(r, handler, config)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler, config Config) {
	r.GET("/", handler.Info)
	r.GET("/health", handler.Health)

	api := r.Group("/api")
	if config.RatePerSecond > 0 {
		burst := max(config.Burst, 1)
		api.Use(rateLimitMiddleware(newIPRateLimiter(config.RatePerSecond, burst)))
	}
	api.POST("/classify", handler.Classify)

	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}

// requestIDMiddleware tags every request with an ID, reusing the caller's
// X-Request-ID when it sends one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

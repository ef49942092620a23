package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"slidecraft/internal/app"
	"slidecraft/pkg/config"
	"slidecraft/pkg/errs"
)

func NewRouter(pipeline *app.Pipeline, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())

	handler := NewHandler(pipeline)

	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	api.Use(rateLimit(cfg.Server.RatePerMinute, cfg.Server.RateBurst))
	{
		api.POST("/decks", handler.GenerateDeck)
		api.GET("/decks/current", handler.CurrentDeck)
		api.POST("/decks/export", handler.ExportDeck)
		api.POST("/assistant", handler.Assistant)
	}

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		slog.Info("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}

func rateLimit(perMinute, burst int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, DeckResponse{
				Error: &ErrorBody{
					Code:    errs.CodeRateLimited,
					Message: "too many requests, slow down",
				},
			})
			return
		}
		c.Next()
	}
}

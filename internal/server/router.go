package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxBodyBytes = 1 << 20

// NewRouter wires middleware and routes, with the API grouped under
// /api/v1. Only the API group is rate limited; the form page and the
// liveness probe stay cheap.
func NewRouter(h *Handler, log *zap.Logger, limiter *rate.Limiter) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(RequestID())
	r.Use(Logger(log))
	r.Use(Recovery(log))
	r.Use(MaxBodyBytes(maxBodyBytes))

	r.GET("/", h.Index)
	r.GET("/health", h.Health)

	v1 := r.Group("/api/v1")
	v1.Use(RateLimit(limiter))
	{
		v1.POST("/detect", h.Detect)
	}

	return r
}

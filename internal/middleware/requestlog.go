package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/daily-checklist-backend/internal/logger"
)

type RequestLogMiddleware struct {
	log *logger.Logger
}

func NewRequestLogMiddleware(log *logger.Logger) *RequestLogMiddleware {
	middlewareLog := log.With("middleware", "RequestLogMiddleware")
	return &RequestLogMiddleware{log: middlewareLog}
}

func (rm *RequestLogMiddleware) RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		switch {
		case status >= 500:
			rm.log.Error("Request failed", fields...)
		case status >= 400:
			rm.log.Warn("Request rejected", fields...)
		default:
			rm.log.Debug("Request completed", fields...)
		}
	}
}

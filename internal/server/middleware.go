package server

import (
	"time"

	"github.com/anmicius0/instructor-dashboard-api/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestLogger logs every request through zap and counts it.
func requestLogger(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		metrics.observeRequest(c.FullPath(), status)
		utils.WithComponent("http").Info("Request processed",
			zap.String(utils.FieldMethod, c.Request.Method),
			zap.String(utils.FieldPath, c.Request.URL.Path),
			zap.Int(utils.FieldStatus, status),
			zap.Duration("latency", time.Since(start)))
	}
}

func noCache(c *gin.Context) {
	c.Header("Cache-Control", CacheControlNoCache)
	c.Next()
}

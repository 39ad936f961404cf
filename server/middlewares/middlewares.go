package middlewares

import (
	"time"

	. "github.com/avolkov/cardbase/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestLog tags every request with a generated id, exposes it to the
// caller through the X-Request-Id header, and writes one access log line
// once the handler chain completes.
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := uuid.New().String()
		c.Writer.Header().Set("X-Request-Id", requestId)
		start := time.Now()

		c.Next()

		Log.WithFields(logrus.Fields{
			"request_id": requestId,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		}).Info("request handled")
	}
}

package middlewares

import (
	"gin-manufacturer/metrics"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Metrics ルートのパターン（実パスではない）でラベル付けする
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unknown"
		}
		status := ctx.Writer.Status()
		code := strconv.Itoa(status)

		metrics.HTTPRequestDuration.WithLabelValues(ctx.Request.Method, route, code).
			Observe(time.Since(start).Seconds())

		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			metrics.AccessDenied.WithLabelValues(route, code).Inc()
		}
	}
}

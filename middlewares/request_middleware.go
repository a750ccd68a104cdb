package middlewares

import (
	"gin-manufacturer/infra"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger リクエストIDを採番してロガーをcontextに入れ、終了時にアクセスログを出す
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		reqID := ctx.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		ctx.Header(requestIDHeader, reqID)

		logger := base.With(zap.String("request_id", reqID))
		ctx.Request = ctx.Request.WithContext(infra.WithLogger(ctx.Request.Context(), logger))

		ctx.Next()

		fields := []zap.Field{
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.String("route", ctx.FullPath()),
			zap.Int("status", ctx.Writer.Status()),
			zap.Int("bytes", ctx.Writer.Size()),
			zap.Duration("latency", time.Since(start)),
			zap.String("remote_addr", ctx.ClientIP()),
		}
		if sc := trace.SpanContextFromContext(ctx.Request.Context()); sc.IsValid() {
			fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
		}
		if len(ctx.Errors) > 0 {
			fields = append(fields, zap.String("errors", ctx.Errors.String()))
		}
		logger.Info("http request", fields...)
	}
}

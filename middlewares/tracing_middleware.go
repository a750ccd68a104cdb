package middlewares

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "gin-manufacturer/http"

// Tracing リクエストごとにサーバースパンを作る。トレーサー未設定ならnoop
func Tracing() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		reqCtx := otel.GetTextMapPropagator().Extract(ctx.Request.Context(), propagation.HeaderCarrier(ctx.Request.Header))

		route := ctx.FullPath()
		if route == "" {
			route = ctx.Request.URL.Path
		}

		reqCtx, span := otel.Tracer(tracerName).Start(reqCtx, fmt.Sprintf("%s %s", ctx.Request.Method, route),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPRequestMethodKey.String(ctx.Request.Method),
				semconv.HTTPRoute(route),
				semconv.URLPath(ctx.Request.URL.Path),
			))
		defer span.End()

		ctx.Request = ctx.Request.WithContext(reqCtx)

		ctx.Next()

		status := ctx.Writer.Status()
		span.SetAttributes(semconv.HTTPResponseStatusCode(status))
		if status >= 500 {
			span.SetStatus(codes.Error, ctx.Errors.String())
		}
	}
}

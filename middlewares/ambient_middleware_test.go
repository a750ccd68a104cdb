package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gin-manufacturer/infra"
	"gin-manufacturer/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/products/:id", func(ctx *gin.Context) {
		infra.LoggerFromContext(ctx.Request.Context()).Info("inside handler")
		ctx.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/products/abc", nil)
	req.Header.Set(requestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-1", w.Header().Get(requestIDHeader))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "inside handler", entries[0].Message)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])

	access := entries[1].ContextMap()
	assert.Equal(t, "http request", entries[1].Message)
	assert.Equal(t, "/products/:id", access["route"])
	assert.Equal(t, int64(http.StatusNoContent), access["status"])
}

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestMetrics_CountsAccessDenied(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.GET("/metrics-test/denied", func(ctx *gin.Context) {
		ctx.AbortWithStatus(http.StatusUnauthorized)
	})
	r.GET("/metrics-test/ok", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	denied := metrics.AccessDenied.WithLabelValues("/metrics-test/denied", "401")
	before := testutil.ToFloat64(denied)

	for _, path := range []string{"/metrics-test/denied", "/metrics-test/ok", "/metrics-test/denied"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, before+2, testutil.ToFloat64(denied))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.AccessDenied.WithLabelValues("/metrics-test/ok", "200")))
}

func TestTracing_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Tracing())
	r.GET("/", func(ctx *gin.Context) { ctx.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

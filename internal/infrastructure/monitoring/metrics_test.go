package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOperation(t *testing.T) {
	m := NewMetrics()

	NewTimer(m, "square").Stop("")
	NewTimer(m, "square").Stop("value_error")
	NewTimer(m, "factorial").Stop("")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationCalls.WithLabelValues("square", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationCalls.WithLabelValues("square", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationErrors.WithLabelValues("square", "value_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationCalls.WithLabelValues("factorial", "success")))
}

func TestNilTimer(t *testing.T) {
	var timer *Timer
	assert.NotPanics(t, func() { timer.Stop("") })
	assert.NotPanics(t, func() { NewTimer(nil, "square").Stop("") })
}

func TestInstancesAreIndependent(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	NewTimer(a, "square").Stop("")
	assert.Equal(t, 0.0, testutil.ToFloat64(b.OperationCalls.WithLabelValues("square", "success")))
}

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()

	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/square/:number", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	for _, path := range []string{"/square/2", "/square/3", "/missing"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/square/:number", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mathops_http_requests_total")
	assert.Contains(t, w.Body.String(), "mathops_uptime_seconds")
}

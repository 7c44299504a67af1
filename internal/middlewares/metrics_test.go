package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/appointments/internal/metrics"
)

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics)
	r.GET("/api/timelines/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	before := testutil.ToFloat64(metrics.TotalRequests.WithLabelValues(http.MethodGet, "/api/timelines/:id", "418"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/timelines/42", nil))

	after := testutil.ToFloat64(metrics.TotalRequests.WithLabelValues(http.MethodGet, "/api/timelines/:id", "418"))
	assert.Equal(t, before+1, after)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.TotalRequests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

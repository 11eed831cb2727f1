package middleware

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func limitedRouter(rps rate.Limit, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(rps, burst))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doGet(r *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitMiddleware_EnforcesBurst(t *testing.T) {
	// Negligible refill rate: only the burst passes.
	r := limitedRouter(rate.Limit(0.001), 2)

	assert.Equal(t, http.StatusOK, doGet(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, doGet(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, "10.0.0.1:1234"))
}

func TestRateLimitMiddleware_SeparateClients(t *testing.T) {
	r := limitedRouter(rate.Limit(0.001), 1)

	assert.Equal(t, http.StatusOK, doGet(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, doGet(r, "10.0.0.2:1234"))
}

func TestRateLimitMiddleware_NoBackgroundGoroutines(t *testing.T) {
	before := runtime.NumGoroutine()
	for i := 0; i < 64; i++ {
		_ = RateLimitMiddleware(1, 1)
	}
	assert.LessOrEqual(t, runtime.NumGoroutine(), before+8,
		"constructing the middleware must not spawn goroutines")
}

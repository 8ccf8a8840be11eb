package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shuttlesync/config"
	"shuttlesync/middleware"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimit_ThrottlesRemoteClients(t *testing.T) {
	config.AppConfig.MaxRequestsPerMin = 3
	defer func() { config.AppConfig.MaxRequestsPerMin = 0 }()

	r := newLimitedRouter()
	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 3; i++ {
		if got := do(); got != http.StatusOK {
			t.Fatalf("request %d: status %d, want 200", i+1, got)
		}
	}
	if got := do(); got != http.StatusTooManyRequests {
		t.Fatalf("over-budget request: status %d, want 429", got)
	}
}

func TestRateLimit_ExemptsLoopbackClients(t *testing.T) {
	config.AppConfig.MaxRequestsPerMin = 1
	defer func() { config.AppConfig.MaxRequestsPerMin = 0 }()

	r := newLimitedRouter()
	for i := 0; i < 300; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "127.0.0.1:54321"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("loopback request %d throttled with status %d", i+1, w.Code)
		}
	}
}

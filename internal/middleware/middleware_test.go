package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"git-activity-feed/internal/middleware"
	"git-activity-feed/pkg/log"
)

func newRouter(mw middleware.Middleware, seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.CORS(), mw.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		*seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestID(t *testing.T) {
	var seen string
	r := newRouter(middleware.New(log.NewNop(), nil), &seen)

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		id := w.Header().Get(middleware.RequestIDHeader)
		if id == "" || id != seen {
			t.Errorf("expected generated id in header and context, header=%q ctx=%q", id, seen)
		}
	})

	t.Run("From GitHub delivery", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-GitHub-Delivery", "72d3162e-cc78-11e3-81ab-4c9367dc0958")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if seen != "72d3162e-cc78-11e3-81ab-4c9367dc0958" {
			t.Errorf("unexpected request id %q", seen)
		}
	})

	t.Run("Explicit header wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc")
		req.Header.Set("X-GitHub-Delivery", "def")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if seen != "abc" {
			t.Errorf("unexpected request id %q", seen)
		}
	})
}

func TestCORS(t *testing.T) {
	var seen string

	t.Run("Any origin", func(t *testing.T) {
		r := newRouter(middleware.New(log.NewNop(), nil), &seen)
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Allow-Origin = %q, want *", got)
		}
	})

	t.Run("Preflight", func(t *testing.T) {
		r := newRouter(middleware.New(log.NewNop(), nil), &seen)
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", w.Code)
		}
	})

	t.Run("Restricted origins", func(t *testing.T) {
		r := newRouter(middleware.New(log.NewNop(), []string{"https://dash.example.com"}), &seen)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://dash.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://dash.example.com" {
			t.Errorf("Allow-Origin = %q", got)
		}

		req = httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("unexpected Allow-Origin %q", got)
		}
	})
}

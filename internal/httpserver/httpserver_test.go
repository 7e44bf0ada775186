package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	eventHTTP "git-activity-feed/internal/event/delivery/http"
	"git-activity-feed/internal/event/repository/memory"
	"git-activity-feed/internal/event/usecase"
	"git-activity-feed/internal/httpserver"
	"git-activity-feed/internal/test"
	"git-activity-feed/pkg/log"
	"git-activity-feed/pkg/response"
	"git-activity-feed/pkg/timefmt"
)

func newServer(t *testing.T) *httpserver.HTTPServer {
	return newServerIn(t, "development")
}

func newServerIn(t *testing.T, environment string) *httpserver.HTTPServer {
	t.Helper()
	l := log.NewNop()
	store := memory.New()
	uc := usecase.New(store, timefmt.New(nil), false, l)

	srv, err := httpserver.New(l, httpserver.Config{
		Logger:         l,
		Port:           8080,
		Mode:           "test",
		Environment:    environment,
		EventHandler:   eventHTTP.New(l, uc, nil, 20),
		StorageBackend: store.Backend(),
		TestHandler:    test.New(l, uc),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	cases := []httpserver.Config{
		{Port: 8080, Mode: "test"},
		{Port: 0, Mode: "test", EventHandler: eventHTTP.New(l, nil, nil, 0)},
	}
	for i, cfg := range cases {
		if _, err := httpserver.New(l, cfg); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("%s: expected X-Request-ID header", path)
		}
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	data, _ := resp.Data.(map[string]interface{})
	if data["storage"] != "memory" {
		t.Errorf("expected storage=memory, got %v", data["storage"])
	}
}

func TestDomainRoutes(t *testing.T) {
	srv := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"ref":"refs/heads/staging","after":"c0d3hash12345","pusher":{"name":"Travis"}}`))
	req.Header.Set("X-GitHub-Event", "push")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /webhook: expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	var events []map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &events); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(events) != 1 || events[0]["author"] != "Travis" || events[0]["to_branch"] != "staging" {
		t.Errorf("unexpected events: %v", events)
	}
}

func TestTestRoutes_EnvironmentGate(t *testing.T) {
	tcs := map[string]int{
		"development": http.StatusOK,
		"production":  http.StatusNotFound,
	}
	for env, want := range tcs {
		srv := newServerIn(t, env)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test/health", nil))
		if w.Code != want {
			t.Errorf("%s: GET /test/health = %d, want %d", env, w.Code, want)
		}
	}
}

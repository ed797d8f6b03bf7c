package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ghiac/suitenav"
	"github.com/ghiac/suitenav/config"
)

func newTestServer(t *testing.T, enabled bool) *Server {
	t.Helper()
	cfg := &config.Config{
		HTTP:  config.HTTPConfig{Enabled: enabled, Host: "127.0.0.1", Port: 0},
		Store: config.StoreConfig{Backend: config.StoreMemory},
	}
	sn, err := suitenav.New(cfg)
	if err != nil {
		t.Fatalf("Failed to create SuiteNav: %v", err)
	}
	t.Cleanup(func() { sn.Close() })
	return NewServer(cfg, sn)
}

func TestHandlerServesRoutes(t *testing.T) {
	srv := newTestServer(t, true)

	req := httptest.NewRequest("GET", "/suitenav/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestStartDisabled(t *testing.T) {
	srv := newTestServer(t, false)
	if err := srv.Start(context.Background()); err != nil {
		t.Fatalf("disabled server should return nil, got %v", err)
	}
}

func TestStartStopsOnCancel(t *testing.T) {
	srv := newTestServer(t, true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start returned error after cancel: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/bookfi/catalog-api/internal/api/middlewares"
)

func corsRequest(t *testing.T, method, origin string) *httptest.ResponseRecorder {
	t.Helper()
	handler := mw.Cors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(method, "/books/", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCors_DevFrontendAllowed(t *testing.T) {
	rec := corsRequest(t, "GET", "http://localhost:3001")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3001" {
		t.Errorf("allow-origin = %q", got)
	}
}

func TestCors_EnvConfiguredOriginAllowed(t *testing.T) {
	// CORS_ORIGINS typically arrives via the .env file, which is loaded in
	// main long after package init. The allowlist must be read at wiring
	// time for that to work.
	t.Setenv("CORS_ORIGINS", "https://bookfi.example.com")

	rec := corsRequest(t, "GET", "https://bookfi.example.com")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://bookfi.example.com" {
		t.Errorf("allow-origin = %q", got)
	}
}

func TestCors_UnknownOriginBlocked(t *testing.T) {
	rec := corsRequest(t, "GET", "https://evil.example")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestCors_NoOriginPassesThrough(t *testing.T) {
	// curl and server-to-server calls send no Origin header.
	rec := corsRequest(t, "GET", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("allow-origin set without an origin: %q", got)
	}
}

func TestCors_PreflightShortCircuits(t *testing.T) {
	rec := corsRequest(t, "OPTIONS", "http://localhost:3001")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("preflight missing allow-methods")
	}
}

package middlewares_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mw "github.com/bookfi/catalog-api/internal/api/middlewares"
)

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
			return
		}
		w.Write(body)
	})
}

func TestBodySizeLimit_SmallSubscribeBody(t *testing.T) {
	wrapped := mw.BodySizeLimit(echoHandler())

	payload := []byte(`{"email":"reader@example.com"}`)
	req := httptest.NewRequest("POST", "/newsletter", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !bytes.Equal(rec.Body.Bytes(), payload) {
		t.Errorf("body was altered: %q", rec.Body.String())
	}
}

func TestBodySizeLimit_RejectsOversizedBody(t *testing.T) {
	t.Setenv("MAX_BODY_SIZE", "64")
	wrapped := mw.BodySizeLimit(echoHandler())

	huge := strings.Repeat("x", 1024)
	req := httptest.NewRequest("POST", "/newsletter", strings.NewReader(huge))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
}

func TestBodySizeLimit_GetUnaffected(t *testing.T) {
	t.Setenv("MAX_BODY_SIZE", "1")
	wrapped := mw.BodySizeLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/books/", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET should bypass the limit, got %d", rec.Code)
	}
}

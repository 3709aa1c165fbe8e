package middlewares

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"regexp"
)

type ctxKey int

const ridKey ctxKey = iota

// Client-supplied ids are honored only when they look like ids.
var ridPattern = regexp.MustCompile(`^[A-Za-z0-9_.\-]{1,64}$`)

// RequestID stamps every request with an id, reusing a well-formed
// X-Request-ID from the client so traces can span the frontend and this API.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if !ridPattern.MatchString(rid) {
			rid = newRequestID()
		}

		r = r.WithContext(context.WithValue(r.Context(), ridKey, rid))
		r.Header.Set("X-Request-ID", rid)
		w.Header().Set("X-Request-ID", rid)

		next.ServeHTTP(w, r)
	})
}

// GetRequestID returns the id RequestID attached, or "" outside the chain.
func GetRequestID(r *http.Request) string {
	if v, ok := r.Context().Value(ridKey).(string); ok && v != "" {
		return v
	}
	return r.Header.Get("X-Request-ID")
}

func newRequestID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

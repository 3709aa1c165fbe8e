package middlewares

import (
	"net/http"
	"os"
	"strconv"
)

// The only write endpoint is the newsletter signup, whose body is a tiny
// JSON object. 64KB leaves generous headroom.
const defaultBodyLimit = 64 << 10

// BodySizeLimit caps request bodies on mutating methods. MAX_BODY_SIZE
// (bytes) overrides the default.
func BodySizeLimit(next http.Handler) http.Handler {
	limit := int64(defaultBodyLimit)
	if env := os.Getenv("MAX_BODY_SIZE"); env != "" {
		if n, err := strconv.ParseInt(env, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}

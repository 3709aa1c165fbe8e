package middlewares

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/bookfi/catalog-api/internal/api/apperr"
)

// Recovery turns handler panics into problem+json 500s. The panic value and
// stack go to the log only, never to the client.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				rid := GetRequestID(r)
				if rid == "" {
					rid = "unknown"
				}
				log.Printf("[PANIC] rid=%s %s %s: %v\n%s",
					rid, r.Method, r.URL.Path, v, debug.Stack())

				apperr.WriteStatus(w, r, http.StatusInternalServerError,
					"Internal Server Error", "")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

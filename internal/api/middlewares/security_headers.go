package middlewares

import (
	"net/http"
	"os"
)

// SecurityHeaders applies a conservative header set for a JSON API that is
// never rendered as a document. STRICT_SECURITY=1 adds the cross-origin
// isolation headers, which can break embedding and so stay opt-in.
func SecurityHeaders(next http.Handler) http.Handler {
	strict := os.Getenv("STRICT_SECURITY") == "1"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-DNS-Prefetch-Control", "off")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'self'")
		h.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")

		// HSTS is only meaningful on a TLS connection
		if r.TLS != nil {
			h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
		}

		if strict {
			h.Set("Cross-Origin-Opener-Policy", "same-origin")
			h.Set("Cross-Origin-Embedder-Policy", "require-corp")
			h.Set("Cross-Origin-Resource-Policy", "same-origin")
		}

		h.Set("Server", "")

		next.ServeHTTP(w, r)
	})
}

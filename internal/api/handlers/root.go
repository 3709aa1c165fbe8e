package handlers

import (
	"net/http"

	"github.com/bookfi/catalog-api/internal/api/httpx"
	"github.com/bookfi/catalog-api/internal/catalog"
)

// RootHandler serves GET /: service info and dataset counts.
func RootHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		httpx.OK(w, map[string]any{
			"service":     "bookfi catalog API",
			"books":       len(store.Books()),
			"authors":     len(store.Authors()),
			"collections": len(store.Collections()),
			"categories":  len(catalog.Categories),
		})
	}
}

package books

import (
	"net/http"
	"strings"

	"github.com/bookfi/catalog-api/internal/catalog"
)

const allowBooks = "GET, HEAD, OPTIONS"

// Handler serves the /books/ tree from the catalog store.
func Handler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			idPart := strings.Trim(strings.TrimPrefix(r.URL.Path, "/books/"), "/")
			if idPart == "" {
				handleList(store, w, r)
				return
			}
			handleGet(store, w, r, idPart)

		case http.MethodHead:
			handleHead(store, w, r)

		case http.MethodOptions:
			w.Header().Set("Allow", allowBooks)
			w.WriteHeader(http.StatusNoContent)

		default:
			w.Header().Set("Allow", allowBooks)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

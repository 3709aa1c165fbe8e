package books

import (
	"net/http"
	"strings"

	"github.com/bookfi/catalog-api/internal/catalog"
)

// HEAD semantics:
// - /books/      → 200 (collection exists)
// - /books/{id}  → 200 if exists, 404 if not (no body)
func handleHead(store *catalog.Store, w http.ResponseWriter, r *http.Request) {
	idPart := strings.Trim(strings.TrimPrefix(r.URL.Path, "/books/"), "/")
	if idPart == "" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if _, ok := store.BookByID(idPart); !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

package handlers

import (
	"net/http"

	"github.com/bookfi/catalog-api/internal/api/apperr"
	"github.com/bookfi/catalog-api/internal/api/httpx"
	"github.com/bookfi/catalog-api/internal/catalog"
)

// AuthorsHandler serves GET /authors/.
func AuthorsHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := store.Authors()
		httpx.OKList(w, len(out), out)
	}
}

// AuthorHandler serves GET /authors/{id}: the author plus their resolved
// books. The back-reference is weak, so ids that don't resolve are skipped.
func AuthorHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		a, ok := store.AuthorByID(id)
		if !ok {
			apperr.NotFound(w, r, "no author with id "+id)
			return
		}
		books := []catalog.Book{}
		for _, bid := range a.Books {
			if b, ok := store.BookByID(bid); ok {
				books = append(books, b)
			}
		}
		httpx.OK(w, map[string]any{
			"author": a,
			"books":  books,
		})
	}
}

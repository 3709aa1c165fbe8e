package books

import (
	"net/http"

	"github.com/bookfi/catalog-api/internal/api/httpx"
	"github.com/bookfi/catalog-api/internal/catalog"
	"github.com/bookfi/catalog-api/internal/validate"
)

// Featured serves GET /books/featured: the hand-picked homepage set.
func Featured(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := store.FeaturedBooks()
		httpx.OKList(w, len(out), out)
	}
}

const (
	topRatedDefault = 5
	topRatedMax     = 20
)

// TopRated serves GET /books/top-rated?limit=N.
func TopRated(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := validate.ClampLimit(r.URL.Query().Get("limit"), topRatedDefault, topRatedMax)
		out := store.TopRated(limit)
		httpx.OKList(w, len(out), out)
	}
}

package handlers

import (
	"net/http"

	"github.com/bookfi/catalog-api/internal/api/httpx"
	"github.com/bookfi/catalog-api/internal/catalog"
)

// BestsellersHandler serves GET /bestsellers: ranked books ascending by
// Amazon rank. Books without a rank are not "ranked last", they are absent.
func BestsellersHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := store.Bestsellers()
		httpx.OKList(w, len(out), out)
	}
}

package handlers

import (
	"net/http"

	"github.com/bookfi/catalog-api/internal/api/apperr"
	"github.com/bookfi/catalog-api/internal/api/httpx"
	"github.com/bookfi/catalog-api/internal/catalog"
)

// CollectionsHandler serves GET /collections/ (all) and ?featured=1
// (promoted only).
func CollectionsHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var out []catalog.Collection
		if r.URL.Query().Get("featured") == "1" {
			out = store.FeaturedCollections()
		} else {
			out = store.Collections()
		}
		httpx.OKList(w, len(out), out)
	}
}

// CollectionHandler serves GET /collections/{id}: the collection plus its
// books resolved in suggested reading order. Dangling book ids are dropped.
func CollectionHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		c, ok := store.CollectionByID(id)
		if !ok {
			apperr.NotFound(w, r, "no collection with id "+id)
			return
		}
		httpx.OK(w, map[string]any{
			"collection": c,
			"books":      store.BooksByCollection(c.ID),
		})
	}
}

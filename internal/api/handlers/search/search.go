// Package search exposes the search engine over HTTP: the type-ahead
// /search/suggest endpoint and the full /search results page.
package search

import (
	"net/http"

	"github.com/bookfi/catalog-api/internal/api/httpx"
	"github.com/bookfi/catalog-api/internal/search"
)

// Search serves GET /search?q=&type=: the full variant in raw score order,
// optionally narrowed to one result type without rescoring.
func Search(eng *search.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		kind := r.URL.Query().Get("type")

		merged := eng.Search(q)
		filtered := search.FilterKind(merged, kind)

		items := make([]SuggestItem, 0, len(filtered))
		for _, res := range filtered {
			items = append(items, toItem(res))
		}

		httpx.WriteJSON(w, http.StatusOK, struct {
			Status string        `json:"status"`
			Query  string        `json:"query"`
			Type   string        `json:"type,omitempty"`
			Count  int           `json:"count"`
			Total  int           `json:"total"` // before the type filter
			Data   []SuggestItem `json:"data"`
		}{
			Status: "success",
			Query:  q,
			Type:   kind,
			Count:  len(items),
			Total:  len(merged),
			Data:   items,
		})
	}
}

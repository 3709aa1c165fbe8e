package books

import (
	"net/http"

	"github.com/bookfi/catalog-api/internal/api/httpx"
	"github.com/bookfi/catalog-api/internal/catalog"
	"github.com/bookfi/catalog-api/internal/validate"
)

// handleList runs the whole catalog through the filter/sort engine driven by
// query params. Unrecognized filter values fall through as "all".
func handleList(store *catalog.Store, w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := catalog.Filters{
		Category:   validate.Param(q.Get("category")),
		Audience:   validate.Param(q.Get("audience")),
		PriceRange: validate.Param(q.Get("price")),
		MinRating:  validate.Param(q.Get("min_rating")),
	}
	sortBy := validate.Param(q.Get("sort"))
	if sortBy == "" {
		sortBy = catalog.SortRating
	}

	all := store.Books()
	filtered := catalog.FilterSort(all, filters, sortBy)

	httpx.WriteJSON(w, http.StatusOK, struct {
		Status string         `json:"status"`
		Data   []catalog.Book `json:"data"`
		Count  int            `json:"count"`
		Total  int            `json:"total"`
		Sort   string         `json:"sort"`
	}{
		Status: "success",
		Data:   filtered,
		Count:  len(filtered),
		Total:  len(all),
		Sort:   sortBy,
	})
}

package handlers

import (
	"net/http"

	"github.com/bookfi/catalog-api/internal/api/apperr"
	"github.com/bookfi/catalog-api/internal/api/httpx"
	"github.com/bookfi/catalog-api/internal/catalog"
)

type categoryWithCount struct {
	catalog.Category
	BookCount int `json:"bookCount"`
}

// CategoriesHandler serves GET /categories/: the fixed seven categories with
// per-category book counts.
func CategoriesHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]categoryWithCount, 0, len(catalog.Categories))
		for _, c := range catalog.Categories {
			out = append(out, categoryWithCount{
				Category:  c,
				BookCount: len(store.BooksByCategory(c.Slug)),
			})
		}
		httpx.OKList(w, len(out), out)
	}
}

// CategoryHandler serves GET /categories/{slug}: the category plus its books
// in catalog order.
func CategoryHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")
		c, ok := catalog.CategoryBySlug(slug)
		if !ok {
			apperr.NotFound(w, r, "no category with slug "+slug)
			return
		}
		httpx.OK(w, map[string]any{
			"category": c,
			"books":    store.BooksByCategory(c.Slug),
		})
	}
}

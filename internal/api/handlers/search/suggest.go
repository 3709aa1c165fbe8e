package search

import (
	"net/http"
	"strings"

	"github.com/bookfi/catalog-api/internal/api/httpx"
	"github.com/bookfi/catalog-api/internal/search"
	"github.com/bookfi/catalog-api/internal/validate"
)

// SuggestItem is the flat wire shape the dropdown UI consumes.
type SuggestItem struct {
	Type        string  `json:"type"` // "book" | "category" | "author"
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Subtitle    *string `json:"subtitle,omitempty"` // "by <author>" for books
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Image       *string `json:"image,omitempty"`
	Relevance   int     `json:"relevance"`
}

const descriptionPreview = 100

func toItem(r search.Result) SuggestItem {
	it := SuggestItem{
		Type:      string(r.Type),
		ID:        r.ID(),
		Title:     r.DisplayName(),
		Relevance: r.Score,
	}
	switch r.Type {
	case search.KindBook:
		sub := "by " + r.Book.Author
		it.Subtitle = &sub
		it.Description = preview(r.Book.Description)
		it.URL = "/books/" + r.Book.ID
		if r.Book.CoverImage != "" {
			img := r.Book.CoverImage
			it.Image = &img
		}
	case search.KindCategory:
		it.Description = r.Category.Description
		it.URL = "/categories/" + r.Category.Slug
	case search.KindAuthor:
		it.Description = preview(r.Author.Bio)
		it.URL = "/authors/" + r.Author.ID
	}
	return it
}

func preview(s string) string {
	if len(s) <= descriptionPreview {
		return s
	}
	return strings.TrimSpace(s[:descriptionPreview]) + "..."
}

// Suggest serves GET /search/suggest?q=&limit=: the type-ahead variant.
// Books sort before categories and authors, name hits before field hits,
// capped at 8.
func Suggest(eng *search.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		limit := validate.ClampLimit(r.URL.Query().Get("limit"), search.SuggestLimit, search.SuggestLimit)

		results := eng.Suggest(q, limit)
		items := make([]SuggestItem, 0, len(results))
		for _, res := range results {
			items = append(items, toItem(res))
		}
		httpx.OKList(w, len(items), items)
	}
}

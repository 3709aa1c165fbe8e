package books

import (
	"net/http"

	"github.com/bookfi/catalog-api/internal/api/apperr"
	"github.com/bookfi/catalog-api/internal/api/httpx"
	"github.com/bookfi/catalog-api/internal/catalog"
)

const relatedLimit = 3

type bookDetail struct {
	catalog.Book
	AuthorInfo *catalog.Author `json:"authorInfo,omitempty"` // omitted when no author record matches
	Related    []catalog.Book  `json:"related"`
}

func handleGet(store *catalog.Store, w http.ResponseWriter, r *http.Request, id string) {
	b, ok := store.BookByID(id)
	if !ok {
		apperr.NotFound(w, r, "no book with id "+id)
		return
	}

	detail := bookDetail{
		Book:    b,
		Related: store.Related(b, relatedLimit),
	}
	if a, ok := store.AuthorForBook(b.ID); ok {
		detail.AuthorInfo = &a
	}

	httpx.OK(w, detail)
}

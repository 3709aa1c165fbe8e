package router

import (
	"net/http"

	"github.com/bookfi/catalog-api/internal/api/handlers"
	"github.com/bookfi/catalog-api/internal/api/handlers/books"
	searchhandlers "github.com/bookfi/catalog-api/internal/api/handlers/search"
	"github.com/bookfi/catalog-api/internal/catalog"
	"github.com/bookfi/catalog-api/internal/newsletter"
	"github.com/bookfi/catalog-api/internal/search"
)

func Router(store *catalog.Store, eng *search.Engine, subs newsletter.Store) http.Handler {
	mux := http.NewServeMux()

	// Root
	mux.HandleFunc("GET /", handlers.RootHandler(store))

	// Keep legacy /books -> /books/
	mux.HandleFunc("GET /books", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/books/", http.StatusMovedPermanently)
	})

	// Books (method-specific + 1.22 patterns). Literal segments win over
	// {id}, so featured/top-rated don't shadow book lookups.
	mux.Handle("GET /books/", books.Handler(store))          // list (filter+sort)
	mux.Handle("GET /books/featured", books.Featured(store)) // homepage picks
	mux.Handle("GET /books/top-rated", books.TopRated(store))
	mux.Handle("GET /books/{id}", books.Handler(store)) // detail; GET patterns also match HEAD (existence probe)
	mux.Handle("OPTIONS /books/", books.Handler(store))
	mux.Handle("OPTIONS /books/{id}", books.Handler(store))

	mux.Handle("GET /bestsellers", handlers.BestsellersHandler(store))

	// Categories (fixed seven)
	mux.Handle("GET /categories/", handlers.CategoriesHandler(store))
	mux.Handle("GET /categories/{slug}", handlers.CategoryHandler(store))

	// Collections
	mux.Handle("GET /collections/", handlers.CollectionsHandler(store))
	mux.Handle("GET /collections/{id}", handlers.CollectionHandler(store))

	// Authors
	mux.Handle("GET /authors/", handlers.AuthorsHandler(store))
	mux.Handle("GET /authors/{id}", handlers.AuthorHandler(store))

	// Search
	mux.Handle("GET /search/suggest", searchhandlers.Suggest(eng))
	mux.Handle("GET /search", searchhandlers.Search(eng))

	// Newsletter
	mux.Handle("POST /newsletter", newsletter.Subscribe(subs))
	mux.Handle("GET /newsletter", newsletter.Stats(subs))

	return mux
}

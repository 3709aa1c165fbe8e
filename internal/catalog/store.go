package catalog

import "sort"

// Store owns the three loaded collections. It is read-only after Load; all
// accessors either return the backing records or freshly built slices, never
// an error — a miss is an empty result.
type Store struct {
	books       []Book
	authors     []Author
	collections []Collection

	bookByID   map[string]int // index into books
	authorByID map[string]int
}

// NewStore builds a store over already-loaded records. The store takes
// ownership of the slices; callers must not mutate them afterwards.
func NewStore(books []Book, authors []Author, collections []Collection) *Store {
	s := &Store{
		books:       books,
		authors:     authors,
		collections: collections,
		bookByID:    make(map[string]int, len(books)),
		authorByID:  make(map[string]int, len(authors)),
	}
	for i, b := range books {
		s.bookByID[b.ID] = i
	}
	for i, a := range authors {
		s.authorByID[a.ID] = i
	}
	return s
}

// Books returns the full catalog in load order. Callers must not mutate it.
func (s *Store) Books() []Book { return s.books }

func (s *Store) Authors() []Author { return s.authors }

func (s *Store) Collections() []Collection { return s.collections }

func (s *Store) BookByID(id string) (Book, bool) {
	i, ok := s.bookByID[id]
	if !ok {
		return Book{}, false
	}
	return s.books[i], true
}

func (s *Store) AuthorByID(id string) (Author, bool) {
	i, ok := s.authorByID[id]
	if !ok {
		return Author{}, false
	}
	return s.authors[i], true
}

// AuthorForBook finds the author whose back-reference list contains bookID.
// The relationship is informal, so a book without an author is fine.
func (s *Store) AuthorForBook(bookID string) (Author, bool) {
	for _, a := range s.authors {
		for _, id := range a.Books {
			if id == bookID {
				return a, true
			}
		}
	}
	return Author{}, false
}

// BooksByCategory returns all books in the category, preserving load order.
func (s *Store) BooksByCategory(slug string) []Book {
	out := []Book{}
	for _, b := range s.books {
		if b.Category == slug {
			out = append(out, b)
		}
	}
	return out
}

// BooksByCollection resolves the collection's bookIds in order. Ids that
// don't resolve to a book are silently dropped.
func (s *Store) BooksByCollection(collectionID string) []Book {
	out := []Book{}
	for _, c := range s.collections {
		if c.ID != collectionID {
			continue
		}
		for _, id := range c.BookIDs {
			if b, ok := s.BookByID(id); ok {
				out = append(out, b)
			}
		}
		return out
	}
	return out
}

func (s *Store) CollectionByID(id string) (Collection, bool) {
	for _, c := range s.collections {
		if c.ID == id {
			return c, true
		}
	}
	return Collection{}, false
}

func (s *Store) FeaturedCollections() []Collection {
	out := []Collection{}
	for _, c := range s.collections {
		if c.Featured {
			out = append(out, c)
		}
	}
	return out
}

// Bestsellers returns books carrying an Amazon rank, ascending by rank.
// No rank means "not ranked", not "ranked last".
func (s *Store) Bestsellers() []Book {
	out := []Book{}
	for _, b := range s.books {
		if b.AmazonRank > 0 {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AmazonRank < out[j].AmazonRank
	})
	return out
}

var featuredBookIDs = map[string]struct{}{
	"1": {}, "2": {}, "3": {}, "4": {}, "5": {},
}

// FeaturedBooks is the hand-picked homepage set.
func (s *Store) FeaturedBooks() []Book {
	out := []Book{}
	for _, b := range s.books {
		if _, ok := featuredBookIDs[b.ID]; ok {
			out = append(out, b)
		}
	}
	return out
}

// TopRated returns the limit highest-rated books.
func (s *Store) TopRated(limit int) []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Related returns up to limit books sharing the category or any tag with
// book, excluding book itself, in load order.
func (s *Store) Related(book Book, limit int) []Book {
	tags := make(map[string]struct{}, len(book.Tags))
	for _, t := range book.Tags {
		tags[t] = struct{}{}
	}
	out := []Book{}
	for _, b := range s.books {
		if b.ID == book.ID {
			continue
		}
		match := b.Category == book.Category
		if !match {
			for _, t := range b.Tags {
				if _, ok := tags[t]; ok {
					match = true
					break
				}
			}
		}
		if match {
			out = append(out, b)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

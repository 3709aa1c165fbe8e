package search_test

import (
	"testing"

	"github.com/bookfi/catalog-api/internal/catalog"
	"github.com/bookfi/catalog-api/internal/search"
)

func testEngine() *search.Engine {
	books := []catalog.Book{
		{
			ID:       "1",
			Title:    "Rich Dad Poor Dad",
			Author:   "Robert Kiyosaki",
			Tags:     []string{"mindset", "real-estate"},
			Category: "financial-planning",
		},
		{
			ID:          "2",
			Title:       "Index Funds Forever",
			Author:      "Pat Example",
			Description: "The investing case for boring index funds.",
			Tags:        []string{"index-funds", "fund-selection", "funding"},
			Category:    "investing",
		},
		{
			ID:          "3",
			Title:       "Budget Basics",
			Author:      "Sam Saver",
			Description: "Plain budgeting for normal people.",
			Tags:        []string{"cash"},
			Category:    "budgeting",
		},
	}
	authors := []catalog.Author{
		{ID: "robert-kiyosaki", Name: "Robert Kiyosaki", Bio: "Wrote about assets and cash flow."},
		{ID: "pat-example", Name: "Pat Example", Bio: "Advocates for investing in index funds."},
	}
	return search.NewEngine(catalog.NewStore(books, authors, nil))
}

func TestSearch_EmptyQuery(t *testing.T) {
	eng := testEngine()
	for _, q := range []string{"", "   ", "\t\n"} {
		if got := eng.Search(q); len(got) != 0 {
			t.Errorf("Search(%q) = %d results, want 0", q, len(got))
		}
	}
}

func TestSearch_NoMatches(t *testing.T) {
	if got := testEngine().Search("zzzqqqxxx"); len(got) != 0 {
		t.Fatalf("want empty result, got %d", len(got))
	}
}

func TestSearch_ExactTitleDominates(t *testing.T) {
	got := testEngine().Search("rich dad poor dad")
	if len(got) == 0 {
		t.Fatal("no results")
	}
	top := got[0]
	if top.Type != search.KindBook || top.Book.ID != "1" {
		t.Fatalf("top result = %s %s", top.Type, top.ID())
	}
	if top.Score < 100 {
		t.Fatalf("exact title match scored %d, want >= 100", top.Score)
	}
}

func TestSearch_PartialTitleScore(t *testing.T) {
	got := testEngine().Search("rich dad")
	if len(got) == 0 {
		t.Fatal("no results")
	}
	if got[0].Type != search.KindBook || got[0].Book.ID != "1" {
		t.Fatalf("top result = %s %s", got[0].Type, got[0].ID())
	}
	if got[0].Score < 50 {
		t.Fatalf("partial title match scored %d, want >= 50", got[0].Score)
	}
}

func TestSearch_AuthorFieldSignal(t *testing.T) {
	got := testEngine().Search("robert kiyosaki")
	var bookScore int
	for _, r := range got {
		if r.Type == search.KindBook && r.Book.ID == "1" {
			bookScore = r.Score
		}
	}
	// author field +30 only; title/desc/tags/category don't contain the query
	if bookScore != 30 {
		t.Fatalf("book author signal scored %d, want 30", bookScore)
	}
}

func TestSearch_PerTagAccumulation(t *testing.T) {
	got := testEngine().Search("fund")
	var r *search.Result
	for i := range got {
		if got[i].Type == search.KindBook && got[i].Book.ID == "2" {
			r = &got[i]
		}
	}
	if r == nil {
		t.Fatal("book 2 not found")
	}
	// title partial 50 + description 10 + three matching tags 3*20 = 120
	if r.Score != 120 {
		t.Fatalf("score = %d, want 120", r.Score)
	}
}

func TestSearch_CategoryAndAuthorRecords(t *testing.T) {
	got := testEngine().Search("investing")
	var hasCategory, hasAuthor bool
	for _, r := range got {
		switch r.Type {
		case search.KindCategory:
			if r.Category.Slug == "investing" {
				hasCategory = true
				if r.Score != 80 {
					t.Errorf("exact category name match scored %d, want 80", r.Score)
				}
			}
		case search.KindAuthor:
			if r.Author.ID == "pat-example" {
				hasAuthor = true
				if r.Score != 15 {
					t.Errorf("author bio signal scored %d, want 15", r.Score)
				}
			}
		}
	}
	if !hasCategory || !hasAuthor {
		t.Fatalf("category=%v author=%v, want both", hasCategory, hasAuthor)
	}
}

func TestSearch_StableTieOrder(t *testing.T) {
	got := testEngine().Search("cash")
	// book 3 (tag "cash", +20) and author robert-kiyosaki (bio, +15):
	// different scores here, so just assert descending order
	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Fatalf("scores out of order at %d: %d < %d", i, got[i-1].Score, got[i].Score)
		}
	}
}

func TestSuggest_BooksBeforeOthersAndCap(t *testing.T) {
	got := testEngine().Suggest("invest", 8)
	if len(got) > search.SuggestLimit {
		t.Fatalf("suggest returned %d results, cap is %d", len(got), search.SuggestLimit)
	}
	seenNonBook := false
	for _, r := range got {
		if r.Type != search.KindBook {
			seenNonBook = true
		} else if seenNonBook {
			t.Fatalf("book result after non-book result: %v", got)
		}
	}
}

func TestSuggest_NameHitBeforeFieldHit(t *testing.T) {
	// "fund" hits book 2 in the title and nothing in book 3; add a query that
	// hits one book by title and another only by description
	got := testEngine().Suggest("budget", 8)
	if len(got) < 2 {
		t.Fatalf("want at least 2 results, got %d", len(got))
	}
	if got[0].Type != search.KindBook || got[0].Book.ID != "3" {
		t.Fatalf("title hit should lead, got %s %s", got[0].Type, got[0].ID())
	}
}

func TestSuggest_PaddedQueryConsistentTiebreak(t *testing.T) {
	// A padded query must tie-break on the same string it scored with. With
	// "dad " only book "a" has the padded string in its title; book "b"
	// scores higher through tags and description but is not a name hit.
	books := []catalog.Book{
		{
			ID:          "b",
			Title:       "Call Me Dad",
			Description: "every dad and his money plan",
			Tags:        []string{"dad jokes", "dad budget", "dad fund"},
			Category:    "budgeting",
		},
		{
			ID:       "a",
			Title:    "Dad Money Rules",
			Category: "financial-planning",
		},
	}
	eng := search.NewEngine(catalog.NewStore(books, nil, nil))

	got := eng.Suggest("dad ", 8)
	if len(got) != 2 {
		t.Fatalf("want 2 results, got %d", len(got))
	}
	if got[0].Book.ID != "a" {
		t.Fatalf("name hit should lead despite lower score, got %s", got[0].Book.ID)
	}
}

func TestFilterKind(t *testing.T) {
	eng := testEngine()
	merged := eng.Search("investing")

	books := search.FilterKind(merged, "book")
	for _, r := range books {
		if r.Type != search.KindBook {
			t.Fatalf("unexpected %s in book filter", r.Type)
		}
	}
	if got := search.FilterKind(merged, "all"); len(got) != len(merged) {
		t.Fatalf("'all' must be a no-op, got %d of %d", len(got), len(merged))
	}
	if got := search.FilterKind(merged, ""); len(got) != len(merged) {
		t.Fatalf("empty kind must be a no-op, got %d of %d", len(got), len(merged))
	}
}

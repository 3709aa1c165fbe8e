// Package search scans the catalog for free-text matches and ranks them with
// a weighted substring score. The dataset is a few hundred records at most,
// so a linear scan per query is fine; if that ever changes, swap in an
// inverted index behind the same scoring contract.
package search

import (
	"sort"
	"strings"

	"github.com/bookfi/catalog-api/internal/catalog"
)

type Kind string

const (
	KindBook     Kind = "book"
	KindCategory Kind = "category"
	KindAuthor   Kind = "author"
)

// Signal weights. Exact and partial name matches are mutually exclusive; the
// tag signal accumulates once per matching tag.
const (
	scoreTitleExact    = 100
	scoreTitlePartial  = 50
	scoreNameExact     = 80
	scoreNamePartial   = 40
	scoreAuthorField   = 30
	scorePerTag        = 20
	scoreCategoryField = 15
	scoreDescription   = 10
	scoreBioOrDesc     = 15
)

// SuggestLimit caps the type-ahead result list.
const SuggestLimit = 8

// Result is one ranked match. Exactly one of Book/Category/Author is set,
// per Type.
type Result struct {
	Type  Kind `json:"type"`
	Score int  `json:"relevance"`

	Book     *catalog.Book     `json:"book,omitempty"`
	Category *catalog.Category `json:"category,omitempty"`
	Author   *catalog.Author   `json:"author,omitempty"`
}

// ID returns the matched record's identifier (book id, category slug, or
// author id).
func (r Result) ID() string {
	switch r.Type {
	case KindBook:
		return r.Book.ID
	case KindCategory:
		return r.Category.Slug
	case KindAuthor:
		return r.Author.ID
	}
	return ""
}

// DisplayName is the title or name a UI would show for the result.
func (r Result) DisplayName() string {
	switch r.Type {
	case KindBook:
		return r.Book.Title
	case KindCategory:
		return r.Category.Name
	case KindAuthor:
		return r.Author.Name
	}
	return ""
}

type Engine struct {
	store *catalog.Store
}

func NewEngine(store *catalog.Store) *Engine {
	return &Engine{store: store}
}

// Search runs the full-page variant: every scoring record, ordered by score
// descending. The sort is stable, so ties keep discovery order — books, then
// categories, then authors, each in catalog order. An empty or
// whitespace-only query yields an empty (non-error) result.
func (e *Engine) Search(query string) []Result {
	q := strings.ToLower(query)
	if strings.TrimSpace(q) == "" {
		return []Result{}
	}

	results := []Result{}

	books := e.store.Books()
	for i := range books {
		b := &books[i]
		score := 0
		title := strings.ToLower(b.Title)
		if title == q {
			score += scoreTitleExact
		} else if strings.Contains(title, q) {
			score += scoreTitlePartial
		}
		if strings.Contains(strings.ToLower(b.Author), q) {
			score += scoreAuthorField
		}
		if strings.Contains(strings.ToLower(b.Description), q) {
			score += scoreDescription
		}
		for _, tag := range b.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				score += scorePerTag
			}
		}
		if strings.Contains(strings.ToLower(b.Category), q) {
			score += scoreCategoryField
		}
		if score > 0 {
			results = append(results, Result{Type: KindBook, Score: score, Book: b})
		}
	}

	for i := range catalog.Categories {
		c := &catalog.Categories[i]
		score := 0
		name := strings.ToLower(c.Name)
		if name == q {
			score += scoreNameExact
		} else if strings.Contains(name, q) {
			score += scoreNamePartial
		}
		if strings.Contains(strings.ToLower(c.Description), q) {
			score += scoreBioOrDesc
		}
		if score > 0 {
			results = append(results, Result{Type: KindCategory, Score: score, Category: c})
		}
	}

	authors := e.store.Authors()
	for i := range authors {
		a := &authors[i]
		score := 0
		name := strings.ToLower(a.Name)
		if name == q {
			score += scoreNameExact
		} else if strings.Contains(name, q) {
			score += scoreNamePartial
		}
		if strings.Contains(strings.ToLower(a.Bio), q) {
			score += scoreBioOrDesc
		}
		if score > 0 {
			results = append(results, Result{Type: KindAuthor, Score: score, Author: a})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Suggest runs the type-ahead variant: scored like Search, then reordered so
// books come before categories and authors regardless of score, and within a
// type results whose title or name contains the query come first. Truncated
// to limit (clamped to SuggestLimit).
func (e *Engine) Suggest(query string, limit int) []Result {
	if limit <= 0 || limit > SuggestLimit {
		limit = SuggestLimit
	}
	results := e.Search(query)
	if len(results) == 0 {
		return results
	}

	// same untrimmed string the scorer used, so padding affects both or neither
	q := strings.ToLower(query)
	nameHit := func(r Result) bool {
		return strings.Contains(strings.ToLower(r.DisplayName()), q)
	}
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if (a.Type == KindBook) != (b.Type == KindBook) {
			return a.Type == KindBook
		}
		if ah, bh := nameHit(a), nameHit(b); ah != bh {
			return ah
		}
		return false // keep score order from Search
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// FilterKind narrows a merged result list to one result type without
// rescoring. An empty kind (or "all") returns the input unchanged.
func FilterKind(results []Result, kind string) []Result {
	switch Kind(kind) {
	case KindBook, KindCategory, KindAuthor:
	default:
		return results
	}
	out := []Result{}
	for _, r := range results {
		if r.Type == Kind(kind) {
			out = append(out, r)
		}
	}
	return out
}

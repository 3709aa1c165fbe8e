package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filters are the optional browse constraints. The zero value (or "all") for
// any field means no constraint; unrecognized values also mean no constraint
// rather than an error. Active filters combine with AND.
type Filters struct {
	Category   string // category slug
	Audience   string // beginner | intermediate | advanced
	PriceRange string // under-10 | 10-20 | 20-30 | over-30
	MinRating  string // 3.0 | 3.5 | 4.0 | 4.5
}

const (
	SortRating     = "rating" // default
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
	SortPopularity = "popularity"
	SortTitle      = "title"
	SortAuthor     = "author"
	SortNewest     = "newest"
)

var minRatings = map[string]float64{
	"3.0": 3.0, "3.5": 3.5, "4.0": 4.0, "4.5": 4.5,
}

// FilterSort filters books by f, then orders the survivors by sortBy. The
// input slice is never mutated; the result is always a fresh slice and may be
// empty. An unknown sort key leaves the filtered order untouched.
func FilterSort(books []Book, f Filters, sortBy string) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if matches(b, f) {
			out = append(out, b)
		}
	}

	switch sortBy {
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortPopularity:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ReviewCount > out[j].ReviewCount })
	case SortTitle:
		// collate.Collator is not safe for concurrent use, so build one per call
		c := collate.New(language.English, collate.Loose)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	case SortAuthor:
		c := collate.New(language.English, collate.Loose)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Author, out[j].Author) < 0
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PublishedDate > out[j].PublishedDate })
	}
	return out
}

func matches(b Book, f Filters) bool {
	if f.Category != "" && f.Category != "all" && validCategory(f.Category) && b.Category != f.Category {
		return false
	}
	switch f.Audience {
	case "beginner", "intermediate", "advanced":
		if b.TargetAudience != f.Audience {
			return false
		}
	}
	switch f.PriceRange {
	case "under-10":
		if b.Price >= 10 {
			return false
		}
	case "10-20":
		if b.Price < 10 || b.Price >= 20 {
			return false
		}
	case "20-30":
		if b.Price < 20 || b.Price >= 30 {
			return false
		}
	case "over-30":
		if b.Price < 30 {
			return false
		}
	}
	if min, ok := minRatings[f.MinRating]; ok && b.Rating < min {
		return false
	}
	return true
}

package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/books.json data/authors.json data/collections.json
var dataFS embed.FS

// Load parses the embedded dataset and builds the store. Bad embedded data is
// a packaging defect, so invariant violations fail fast here instead of being
// tolerated at request time.
func Load() (*Store, error) {
	var books []Book
	if err := loadJSON("data/books.json", &books); err != nil {
		return nil, err
	}
	var authors []Author
	if err := loadJSON("data/authors.json", &authors); err != nil {
		return nil, err
	}
	var collections []Collection
	if err := loadJSON("data/collections.json", &collections); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(books))
	for _, b := range books {
		if b.ID == "" {
			return nil, fmt.Errorf("catalog: book %q has empty id", b.Title)
		}
		if _, dup := seen[b.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate book id %q", b.ID)
		}
		seen[b.ID] = struct{}{}
		if !validCategory(b.Category) {
			return nil, fmt.Errorf("catalog: book %q has unknown category %q", b.ID, b.Category)
		}
		if b.Rating < 0 || b.Rating > 5 {
			return nil, fmt.Errorf("catalog: book %q rating %v out of range", b.ID, b.Rating)
		}
		if b.ReviewCount < 0 {
			return nil, fmt.Errorf("catalog: book %q has negative review count", b.ID)
		}
	}

	return NewStore(books, authors, collections), nil
}

func loadJSON(name string, v any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", name, err)
	}
	return nil
}

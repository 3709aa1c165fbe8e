package newsletter_test

import (
	"sync"
	"testing"

	"github.com/bookfi/catalog-api/internal/newsletter"
)

func TestMemoryStore_SetSemantics(t *testing.T) {
	s := newsletter.NewMemoryStore()
	ctx := t.Context()

	added, err := s.Add(ctx, "a@example.com")
	if err != nil || !added {
		t.Fatalf("first add: %v %v", added, err)
	}
	added, err = s.Add(ctx, "A@Example.com")
	if err != nil || added {
		t.Fatalf("case-variant add should dedupe: %v %v", added, err)
	}
	if n, _ := s.Count(ctx); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}

func TestMemoryStore_ConcurrentSameEmail(t *testing.T) {
	s := newsletter.NewMemoryStore()
	ctx := t.Context()

	var wg sync.WaitGroup
	var mu sync.Mutex
	addedCount := 0
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			added, err := s.Add(ctx, "same@example.com")
			if err != nil {
				t.Error(err)
				return
			}
			if added {
				mu.Lock()
				addedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if addedCount != 1 {
		t.Fatalf("exactly one add should win, got %d", addedCount)
	}
	if n, _ := s.Count(ctx); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}

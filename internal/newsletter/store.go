// Package newsletter implements the email-capture endpoint. The subscriber
// set sits behind a small Store interface so the placeholder in-memory set
// and a real backend are interchangeable without touching the handlers.
package newsletter

import (
	"context"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Store records subscriber emails with set semantics: adding an email twice
// is detected, never duplicated.
type Store interface {
	// Add records email and reports whether it was newly added.
	Add(ctx context.Context, email string) (added bool, err error)
	// Count returns the number of distinct subscribers.
	Count(ctx context.Context) (int64, error)
}

// MemoryStore is the volatile default. Contents are lost on restart, which
// is acceptable for the signup placeholder.
type MemoryStore struct {
	mu     sync.Mutex
	emails map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{emails: make(map[string]struct{})}
}

func (s *MemoryStore) Add(_ context.Context, email string) (bool, error) {
	email = strings.ToLower(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.emails[email]; ok {
		return false, nil
	}
	s.emails[email] = struct{}{}
	return true, nil
}

func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.emails)), nil
}

const redisKey = "newsletter:subscribers"

// RedisStore keeps subscribers in a Redis SET, surviving restarts and shared
// across instances.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Add(ctx context.Context, email string) (bool, error) {
	n, err := s.rdb.SAdd(ctx, redisKey, strings.ToLower(email)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *RedisStore) Count(ctx context.Context) (int64, error) {
	return s.rdb.SCard(ctx, redisKey).Result()
}

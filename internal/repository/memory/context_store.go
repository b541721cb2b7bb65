package memory

import (
	"context"

	"mist-provisioning-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// ContextStore keeps the session context in process memory. Entries never
// expire; it exists for tests and single-instance local runs.
type ContextStore struct {
	cache *cache.Cache
}

func NewContextStore() *ContextStore {
	return &ContextStore{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

var _ contract.ContextStore = (*ContextStore)(nil)

func (s *ContextStore) Get(_ context.Context, key string) (string, bool, error) {
	if x, found := s.cache.Get(key); found {
		return x.(string), true, nil
	}
	return "", false, nil
}

func (s *ContextStore) Set(_ context.Context, key, value string) error {
	s.cache.Set(key, value, cache.NoExpiration)
	return nil
}

func (s *ContextStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

func (s *ContextStore) Ping(_ context.Context) error {
	return nil
}

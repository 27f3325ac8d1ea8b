package favorites

import (
	"context"
	"sync"
)

// MemoryStore keeps favorites for the life of the process
type MemoryStore struct {
	mu        sync.RWMutex
	favorites map[string]bool
}

// NewMemoryStore creates a store with the given ids already marked favorite
func NewMemoryStore(ids ...string) *MemoryStore {
	s := &MemoryStore{favorites: make(map[string]bool, len(ids))}
	for _, id := range ids {
		s.favorites[id] = true
	}
	return s
}

func (s *MemoryStore) IsFavorite(ctx context.Context, buildingID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.favorites[buildingID]
}

func (s *MemoryStore) ToggleFavorite(ctx context.Context, buildingID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.favorites[buildingID] {
		delete(s.favorites, buildingID)
		return false, nil
	}
	s.favorites[buildingID] = true
	return true, nil
}

func (s *MemoryStore) Close() error { return nil }

package notify

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore is a bounded in-memory Store. Once full, the oldest
// notification is dropped on every Save.
type MemoryStore struct {
	mu     sync.Mutex
	limit  int
	items  []Notification
	nextID int64
}

// NewMemoryStore returns a store holding at most limit notifications.
// A limit below 1 is treated as 1.
func NewMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{limit: max(limit, 1)}
}

func (s *MemoryStore) Save(_ context.Context, n Notification) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	n.ID = s.nextID
	s.items = append(s.items, n)
	if over := len(s.items) - s.limit; over > 0 {
		s.items = slices.Delete(s.items, 0, over)
	}
	return n.ID, nil
}

// List returns the stored notifications, newest first.
func (s *MemoryStore) List(_ context.Context) ([]Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := slices.Clone(s.items)
	slices.Reverse(out)
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return nil
}

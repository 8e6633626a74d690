// README: In-memory menu catalog store.
package menu

import (
	"errors"
	"sync"

	"gameday/internal/types"
)

var ErrNotFound = errors.New("menu item not found")

type Store struct {
	mu    sync.RWMutex
	items []Item
}

func NewStore() *Store {
	return &Store{}
}

// Replace swaps the whole catalog. The menu is seeded once at startup;
// per-item edits are a vendor-console concern this service doesn't have.
func (s *Store) Replace(items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]Item(nil), items...)
}

func (s *Store) List() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Item(nil), s.items...)
}

func (s *Store) Item(id types.ID) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

// README: In-memory runner store with merge-style partial updates.
package runner

import (
	"errors"
	"sync"

	"gameday/internal/types"
)

var (
	ErrBadRequest  = errors.New("bad request")
	ErrNotFound    = errors.New("runner not found")
	ErrInvalidCode = errors.New("invalid runner code")
)

// Patch is a merge-style partial update; nil fields are untouched.
// Unknown ids never create records.
type Patch struct {
	Name           *string
	IsOnline       *bool
	CurrentSection *string
}

type Store struct {
	mu      sync.RWMutex
	runners map[types.ID]*Runner
	ids     []types.ID
}

func NewStore() *Store {
	return &Store{runners: make(map[types.ID]*Runner)}
}

// Put registers or replaces a runner. Used by seeding; the fleet is
// fixed for the life of the process (auth is mocked).
func (s *Store) Put(r Runner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runners[r.ID]; !ok {
		s.ids = append(s.ids, r.ID)
	}
	stored := r
	stored.ActiveOrderIDs = append([]types.ID(nil), r.ActiveOrderIDs...)
	s.runners[r.ID] = &stored
}

func (s *Store) Get(id types.ID) (Runner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.runners[id]
	if !ok {
		return Runner{}, ErrNotFound
	}
	return copyRunner(r), nil
}

func (s *Store) Update(id types.ID, p Patch) (Runner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.runners[id]
	if !ok {
		return Runner{}, ErrNotFound
	}
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.IsOnline != nil {
		r.IsOnline = *p.IsOnline
	}
	if p.CurrentSection != nil {
		r.CurrentSection = *p.CurrentSection
	}
	return copyRunner(r), nil
}

func (s *Store) ListOnline() []Runner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Runner
	for _, id := range s.ids {
		if r := s.runners[id]; r.IsOnline {
			out = append(out, copyRunner(r))
		}
	}
	return out
}

// AddActiveOrder appends an order to the runner's active list, once.
func (s *Store) AddActiveOrder(id, orderID types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.runners[id]
	if !ok {
		return ErrNotFound
	}
	for _, existing := range r.ActiveOrderIDs {
		if existing == orderID {
			return nil
		}
	}
	r.ActiveOrderIDs = append(r.ActiveOrderIDs, orderID)
	return nil
}

// RemoveActiveOrder drops an order from the runner's active list.
func (s *Store) RemoveActiveOrder(id, orderID types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.runners[id]
	if !ok {
		return ErrNotFound
	}
	for i, existing := range r.ActiveOrderIDs {
		if existing == orderID {
			r.ActiveOrderIDs = append(r.ActiveOrderIDs[:i], r.ActiveOrderIDs[i+1:]...)
			return nil
		}
	}
	return nil
}

func copyRunner(r *Runner) Runner {
	out := *r
	out.ActiveOrderIDs = append([]types.ID(nil), r.ActiveOrderIDs...)
	return out
}

// README: In-memory batch store.
package dispatch

import (
	"fmt"
	"sync"
	"time"

	"gameday/internal/types"
)

type batchStore struct {
	mu      sync.RWMutex
	batches map[types.ID]*Batch
	ids     []types.ID
	next    int
	now     func() time.Time
}

func newBatchStore(now func() time.Time) *batchStore {
	return &batchStore{
		batches: make(map[types.ID]*Batch),
		next:    1,
		now:     now,
	}
}

func (s *batchStore) create(b Batch) Batch {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = types.ID(fmt.Sprintf("batch_%d", s.next))
	s.next++
	b.CreatedAt = s.now()
	b.Status = BatchActive

	stored := b
	stored.OrderIDs = append([]types.ID(nil), b.OrderIDs...)
	stored.Route = append([]string(nil), b.Route...)
	s.batches[stored.ID] = &stored
	s.ids = append(s.ids, stored.ID)
	return copyBatch(&stored)
}

func (s *batchStore) get(id types.ID) (Batch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.batches[id]
	if !ok {
		return Batch{}, false
	}
	return copyBatch(b), true
}

func (s *batchStore) listByRunner(runnerID types.ID) []Batch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Batch
	for _, id := range s.ids {
		if b := s.batches[id]; b.RunnerID == runnerID {
			out = append(out, copyBatch(b))
		}
	}
	return out
}

func (s *batchStore) setStatus(id types.ID, status BatchStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.batches[id]
	if !ok {
		return false
	}
	b.Status = status
	return true
}

func copyBatch(b *Batch) Batch {
	out := *b
	out.OrderIDs = append([]types.ID(nil), b.OrderIDs...)
	out.Route = append([]string(nil), b.Route...)
	return out
}

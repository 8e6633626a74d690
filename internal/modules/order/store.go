// README: In-memory order and message store; owns the claim check-and-set.
package order

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gameday/internal/types"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("order not found")
	ErrInvalidState = errors.New("invalid status transition")
)

// Patch is a merge-style partial update. Runner assignment is not
// patchable; it only moves through Claim and Release, which keeps the
// "runner set iff claimed" invariant in one place.
type Patch struct {
	Status     *Status
	ETAMinutes *int
}

// Store is the authoritative in-process state for orders and their
// chat history. All reads return copies, so a caller never observes a
// half-applied update. Claim is the single check-and-set the rest of
// the system serializes on.
type Store struct {
	mu          sync.RWMutex
	orders      map[types.ID]*Order
	orderIDs    []types.ID // creation order, keeps list output stable
	messages    map[types.ID][]Message
	nextOrder   int
	nextMessage int

	// Now stamps createdAt, lockTs, and message timestamps.
	// Overridable in tests.
	Now func() time.Time
}

func NewStore() *Store {
	return &Store{
		orders:      make(map[types.ID]*Order),
		messages:    make(map[types.ID][]Message),
		nextOrder:   1,
		nextMessage: 1,
		Now:         time.Now,
	}
}

// Create assigns a fresh monotonic identity, stamps creation time, and
// forces the initial status. The stored record is returned by value.
func (s *Store) Create(o Order) Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = types.ID(fmt.Sprintf("order_%d", s.nextOrder))
	s.nextOrder++
	o.Status = StatusReceived
	o.CreatedAt = s.Now()
	o.RunnerID = nil
	o.LockTS = nil

	stored := o
	stored.Items = append([]Item(nil), o.Items...)
	s.orders[stored.ID] = &stored
	s.orderIDs = append(s.orderIDs, stored.ID)
	return copyOrder(&stored)
}

func (s *Store) Get(id types.ID) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return copyOrder(o), nil
}

// Update merges a patch into an existing order. A status change must
// follow the transition table; anything else is ErrInvalidState.
// Unknown ids never create records.
func (s *Store) Update(id types.ID, p Patch) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	if p.Status != nil && *p.Status != o.Status {
		if !CanTransition(o.Status, *p.Status) {
			return Order{}, ErrInvalidState
		}
		o.Status = *p.Status
	}
	if p.ETAMinutes != nil {
		o.ETAMinutes = *p.ETAMinutes
	}
	return copyOrder(o), nil
}

func (s *Store) ListByStatus(status Status) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Order
	for _, id := range s.orderIDs {
		if o := s.orders[id]; o.Status == status {
			out = append(out, copyOrder(o))
		}
	}
	return out
}

func (s *Store) ListByRunner(runnerID types.ID) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Order
	for _, id := range s.orderIDs {
		if o := s.orders[id]; o.RunnerID != nil && *o.RunnerID == runnerID {
			out = append(out, copyOrder(o))
		}
	}
	return out
}

// ListUnclaimed returns orders eligible for runner discovery: kitchen
// has marked them preparing and no runner holds them yet.
func (s *Store) ListUnclaimed() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Order
	for _, id := range s.orderIDs {
		if o := s.orders[id]; o.Status == StatusPreparing && o.RunnerID == nil {
			out = append(out, copyOrder(o))
		}
	}
	return out
}

// Claim atomically assigns a runner to an order that has none. Exactly
// one of any number of concurrent claims on the same order succeeds;
// the rest see false and no side effects.
func (s *Store) Claim(orderID, runnerID types.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok || o.RunnerID != nil {
		return false
	}
	rid := runnerID
	ts := s.Now()
	o.RunnerID = &rid
	o.LockTS = &ts
	return true
}

// Release clears the runner assignment so the order re-enters
// discovery, reporting which runner was cleared. Read and clear happen
// under one lock so a racing reclaim cannot be attributed the release.
// Status is untouched; it never regresses.
func (s *Store) Release(orderID types.ID) (types.ID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok || o.RunnerID == nil {
		return "", false
	}
	cleared := *o.RunnerID
	o.RunnerID = nil
	o.LockTS = nil
	return cleared, true
}

// AddMessage appends to an order's chat history with a fresh monotonic
// identity.
func (s *Store) AddMessage(orderID types.ID, sender Sender, text string) Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := Message{
		ID:      types.ID(fmt.Sprintf("msg_%d", s.nextMessage)),
		OrderID: orderID,
		Sender:  sender,
		Text:    text,
		TS:      s.Now(),
	}
	s.nextMessage++
	s.messages[orderID] = append(s.messages[orderID], m)
	return m
}

// Messages returns the order's chat history in creation order. Unknown
// orders have an empty history.
func (s *Store) Messages(orderID types.ID) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Message(nil), s.messages[orderID]...)
}

func copyOrder(o *Order) Order {
	out := *o
	out.Items = append([]Item(nil), o.Items...)
	if o.RunnerID != nil {
		rid := *o.RunnerID
		out.RunnerID = &rid
	}
	if o.LockTS != nil {
		ts := *o.LockTS
		out.LockTS = &ts
	}
	return out
}

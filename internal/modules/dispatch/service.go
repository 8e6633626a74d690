// README: Runner-facing dispatch: nearby ranking, the claim protocol, batches.
package dispatch

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gameday/internal/modules/order"
	"gameday/internal/modules/runner"
	"gameday/internal/stadium"
	"gameday/internal/types"
)

const (
	// maxPickupMeters bounds how far a runner is shown orders from
	// their reported section.
	maxPickupMeters = 200
	// ageBucket is the age gap beyond which an older order outranks a
	// closer one.
	ageBucket = 5 * time.Minute
	// maxNearby caps the page handed to a polling runner.
	maxNearby = 10
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("batch not found")
	// ErrRunnerUnavailable rejects claims from unknown or offline runners.
	ErrRunnerUnavailable = errors.New("runner not found or offline")
	// ErrClaimConflict means the order is already claimed or gone.
	ErrClaimConflict = errors.New("order already claimed or not available")
	// ErrOrderNotOwned rejects batching an order the runner has not claimed.
	ErrOrderNotOwned = errors.New("order not claimed by runner")
)

type Service struct {
	orders  *order.Store
	runners *runner.Store
	batches *batchStore
	now     func() time.Time
}

func NewService(orders *order.Store, runners *runner.Store) *Service {
	return &Service{
		orders:  orders,
		runners: runners,
		batches: newBatchStore(time.Now),
		now:     time.Now,
	}
}

// NearbyOrders returns up to ten unclaimed preparing orders for the
// runner to pick from, oldest-starving first, closest first among
// near-ties. Fails closed: unknown or offline runners see nothing.
func (s *Service) NearbyOrders(runnerID types.ID) []order.Order {
	r, err := s.runners.Get(runnerID)
	if err != nil || !r.IsOnline {
		return nil
	}

	candidates := s.orders.ListUnclaimed()
	if r.CurrentSection != "" {
		inRange := candidates[:0]
		for _, o := range candidates {
			// Unknown sections are unreachable and filtered out here.
			if stadium.Distance(r.CurrentSection, o.Seat.Section) <= maxPickupMeters {
				inRange = append(inRange, o)
			}
		}
		candidates = inRange
	}

	now := s.now()
	sort.SliceStable(candidates, func(i, j int) bool {
		ageI := now.Sub(candidates[i].CreatedAt)
		ageJ := now.Sub(candidates[j].CreatedAt)
		if gap := ageI - ageJ; gap > ageBucket || gap < -ageBucket {
			// Don't starve old orders: age wins outright.
			return ageI > ageJ
		}
		if r.CurrentSection == "" {
			return false
		}
		return stadium.Distance(r.CurrentSection, candidates[i].Seat.Section) <
			stadium.Distance(r.CurrentSection, candidates[j].Seat.Section)
	})

	if len(candidates) > maxNearby {
		candidates = candidates[:maxNearby]
	}
	return candidates
}

type ClaimCommand struct {
	RunnerID types.ID
	OrderID  types.ID
}

// Claim assigns the order to the runner exactly once. On a lost race
// the store is untouched and the caller should re-poll NearbyOrders.
func (s *Service) Claim(cmd ClaimCommand) error {
	if cmd.RunnerID == "" || cmd.OrderID == "" {
		return ErrBadRequest
	}
	r, err := s.runners.Get(cmd.RunnerID)
	if err != nil || !r.IsOnline {
		return ErrRunnerUnavailable
	}

	if !s.orders.Claim(cmd.OrderID, cmd.RunnerID) {
		return ErrClaimConflict
	}

	// The claim may race ahead of the kitchen marking the order
	// preparing; catch the order up so its status reflects reality.
	if o, err := s.orders.Get(cmd.OrderID); err == nil && o.Status == order.StatusReceived {
		prep := order.StatusPreparing
		_, _ = s.orders.Update(cmd.OrderID, order.Patch{Status: &prep})
	}

	_ = s.runners.AddActiveOrder(cmd.RunnerID, cmd.OrderID)
	s.orders.AddMessage(cmd.OrderID, order.SenderRunner,
		fmt.Sprintf("Hi! I'm %s and I'll be delivering your order. I'll let you know when I'm on my way!", r.Name))
	return nil
}

// Release hands a claimed order back to the pool.
func (s *Service) Release(orderID types.ID) error {
	if orderID == "" {
		return ErrBadRequest
	}
	if _, err := s.orders.Get(orderID); err != nil {
		return err
	}
	cleared, ok := s.orders.Release(orderID)
	if !ok {
		return ErrClaimConflict
	}
	_ = s.runners.RemoveActiveOrder(cleared, orderID)
	return nil
}

type CreateBatchCommand struct {
	RunnerID types.ID
	OrderIDs []types.ID
}

// CreateBatch groups several of the runner's claimed orders into one
// delivery run with a greedy walking route from the runner's section.
func (s *Service) CreateBatch(cmd CreateBatchCommand) (Batch, error) {
	if cmd.RunnerID == "" || len(cmd.OrderIDs) == 0 {
		return Batch{}, ErrBadRequest
	}
	r, err := s.runners.Get(cmd.RunnerID)
	if err != nil || !r.IsOnline {
		return Batch{}, ErrRunnerUnavailable
	}

	var (
		sections []string
		seen     = map[string]bool{}
		payout   types.Money
	)
	for _, id := range cmd.OrderIDs {
		o, err := s.orders.Get(id)
		if err != nil {
			return Batch{}, err
		}
		if o.RunnerID == nil || *o.RunnerID != cmd.RunnerID {
			return Batch{}, ErrOrderNotOwned
		}
		if !seen[o.Seat.Section] {
			seen[o.Seat.Section] = true
			sections = append(sections, o.Seat.Section)
		}
		payout += o.Tip.Amount
	}

	route := stadium.NearestRoute(sections, r.CurrentSection)
	estimate := 0
	for i := 0; i+1 < len(route); i++ {
		leg := stadium.EstimateTravelMinutes(route[i], route[i+1])
		if leg == stadium.Unreachable {
			return Batch{}, ErrBadRequest
		}
		estimate += leg
	}

	return s.batches.create(Batch{
		RunnerID:             cmd.RunnerID,
		OrderIDs:             cmd.OrderIDs,
		Route:                route,
		RouteEstimateMinutes: estimate,
		TotalPayout:          payout,
	}), nil
}

func (s *Service) Batch(id types.ID) (Batch, error) {
	b, ok := s.batches.get(id)
	if !ok {
		return Batch{}, ErrNotFound
	}
	return b, nil
}

func (s *Service) BatchesByRunner(runnerID types.ID) []Batch {
	return s.batches.listByRunner(runnerID)
}

// SetBatchStatus marks a batch completed or cancelled.
func (s *Service) SetBatchStatus(id types.ID, status BatchStatus) error {
	if status != BatchActive && status != BatchCompleted && status != BatchCancelled {
		return ErrBadRequest
	}
	if !s.batches.setStatus(id, status) {
		return ErrNotFound
	}
	return nil
}

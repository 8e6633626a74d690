// README: Dispatch tests: ranking policy, claim protocol, batching.
package dispatch

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"gameday/internal/modules/order"
	"gameday/internal/modules/runner"
	"gameday/internal/types"
)

func newTestService() (*Service, *order.Store, *runner.Store) {
	orders := order.NewStore()
	runners := runner.NewStore()
	runners.Put(runner.Runner{ID: "runner1", Name: "Alex Johnson", IsOnline: true, CurrentSection: "101"})
	runners.Put(runner.Runner{ID: "runner2", Name: "Sarah Chen", IsOnline: false, CurrentSection: "112"})
	return NewService(orders, runners), orders, runners
}

// preparingOrder creates an order at the section with the given
// creation time and advances it into the discoverable state.
func preparingOrder(t *testing.T, orders *order.Store, section string, createdAt time.Time) order.Order {
	t.Helper()
	orders.Now = func() time.Time { return createdAt }
	o := orders.Create(order.Order{
		CustomerID: "cust",
		Items:      []order.Item{{ID: "1", Name: "Hot Dog", Price: 699, Quantity: 1, Category: "Hot Dogs"}},
		Seat:       order.Seat{Section: section, Row: "A", Seat: "1"},
		Tip:        order.Tip{Amount: 200},
	})
	prep := order.StatusPreparing
	if _, err := orders.Update(o.ID, order.Patch{Status: &prep}); err != nil {
		t.Fatalf("advance to preparing: %v", err)
	}
	orders.Now = time.Now
	return o
}

func TestNearbyOrders_FailsClosed(t *testing.T) {
	svc, orders, _ := newTestService()
	preparingOrder(t, orders, "102", time.Now())

	if got := svc.NearbyOrders("runner404"); len(got) != 0 {
		t.Errorf("unknown runner got %d orders, want 0", len(got))
	}
	if got := svc.NearbyOrders("runner2"); len(got) != 0 {
		t.Errorf("offline runner got %d orders, want 0", len(got))
	}
}

func TestNearbyOrders_ExcludesClaimedAndNonPreparing(t *testing.T) {
	svc, orders, _ := newTestService()

	now := time.Now()
	visible := preparingOrder(t, orders, "102", now)
	claimed := preparingOrder(t, orders, "103", now)
	orders.Now = func() time.Time { return now }
	received := orders.Create(order.Order{
		Items: []order.Item{{Name: "Soda", Price: 499, Quantity: 1}},
		Seat:  order.Seat{Section: "104", Row: "A", Seat: "1"},
	})
	orders.Now = time.Now
	if !orders.Claim(claimed.ID, "runner1") {
		t.Fatal("claim setup failed")
	}

	got := svc.NearbyOrders("runner1")
	if len(got) != 1 || got[0].ID != visible.ID {
		t.Errorf("nearby = %v, want just %s (not %s or %s)", ids(got), visible.ID, claimed.ID, received.ID)
	}
}

func TestNearbyOrders_DistanceFilter(t *testing.T) {
	svc, orders, runners := newTestService()

	now := time.Now()
	known := preparingOrder(t, orders, "106", now)
	unknown := preparingOrder(t, orders, "999", now) // unreachable section

	got := svc.NearbyOrders("runner1")
	if len(got) != 1 || got[0].ID != known.ID {
		t.Errorf("nearby = %v, want just %s; unreachable %s must be excluded", ids(got), known.ID, unknown.ID)
	}

	// Without a reported section there is no filter, so both show.
	none := ""
	if _, err := runners.Update("runner1", runner.Patch{CurrentSection: &none}); err != nil {
		t.Fatalf("clear section: %v", err)
	}
	if got := svc.NearbyOrders("runner1"); len(got) != 2 {
		t.Errorf("unfiltered nearby = %v, want both orders", ids(got))
	}
}

func TestNearbyOrders_OlderBeatsCloser(t *testing.T) {
	svc, orders, _ := newTestService()

	now := time.Now()
	svc.now = func() time.Time { return now }

	// Ten minutes old at the far side vs one minute old next door.
	old := preparingOrder(t, orders, "111", now.Add(-10*time.Minute))
	fresh := preparingOrder(t, orders, "102", now.Add(-1*time.Minute))

	got := svc.NearbyOrders("runner1")
	if len(got) != 2 || got[0].ID != old.ID || got[1].ID != fresh.ID {
		t.Errorf("order = %v, want [%s %s] (age outranks distance)", ids(got), old.ID, fresh.ID)
	}
}

func TestNearbyOrders_DistanceBreaksNearTies(t *testing.T) {
	svc, orders, _ := newTestService()

	now := time.Now()
	svc.now = func() time.Time { return now }

	// Within the five-minute bucket, the closer order wins.
	far := preparingOrder(t, orders, "106", now.Add(-3*time.Minute))
	near := preparingOrder(t, orders, "102", now.Add(-1*time.Minute))

	got := svc.NearbyOrders("runner1")
	if len(got) != 2 || got[0].ID != near.ID || got[1].ID != far.ID {
		t.Errorf("order = %v, want [%s %s]", ids(got), near.ID, far.ID)
	}
}

func TestNearbyOrders_CapsAtTen(t *testing.T) {
	svc, orders, _ := newTestService()
	now := time.Now()
	for i := 0; i < 12; i++ {
		preparingOrder(t, orders, "102", now)
	}
	if got := svc.NearbyOrders("runner1"); len(got) != 10 {
		t.Errorf("nearby = %d orders, want 10", len(got))
	}
}

func TestClaim_HappyPath(t *testing.T) {
	svc, orders, runners := newTestService()
	o := preparingOrder(t, orders, "102", time.Now())

	if err := svc.Claim(ClaimCommand{RunnerID: "runner1", OrderID: o.ID}); err != nil {
		t.Fatalf("claim: %v", err)
	}

	got, _ := orders.Get(o.ID)
	if got.RunnerID == nil || *got.RunnerID != "runner1" || got.LockTS == nil {
		t.Errorf("claimed order = %+v", got)
	}
	if got.Status != order.StatusPreparing {
		t.Errorf("status = %s, claiming must not advance past preparing", got.Status)
	}

	msgs := orders.Messages(o.ID)
	if len(msgs) == 0 {
		t.Fatal("expected runner intro message")
	}
	last := msgs[len(msgs)-1]
	if last.Sender != order.SenderRunner || !strings.Contains(last.Text, "Alex Johnson") {
		t.Errorf("intro message = %+v", last)
	}

	r, _ := runners.Get("runner1")
	if len(r.ActiveOrderIDs) != 1 || r.ActiveOrderIDs[0] != o.ID {
		t.Errorf("active orders = %v", r.ActiveOrderIDs)
	}
}

func TestClaim_AutoAdvancesReceived(t *testing.T) {
	svc, orders, _ := newTestService()
	o := orders.Create(order.Order{
		Items: []order.Item{{Name: "Pizza Slice", Price: 799, Quantity: 1}},
		Seat:  order.Seat{Section: "102", Row: "A", Seat: "1"},
	})

	if err := svc.Claim(ClaimCommand{RunnerID: "runner1", OrderID: o.ID}); err != nil {
		t.Fatalf("claim: %v", err)
	}
	got, _ := orders.Get(o.ID)
	if got.Status != order.StatusPreparing {
		t.Errorf("status = %s, want preparing (claim raced ahead of the kitchen)", got.Status)
	}
}

func TestClaim_Rejections(t *testing.T) {
	svc, orders, _ := newTestService()
	o := preparingOrder(t, orders, "102", time.Now())

	if err := svc.Claim(ClaimCommand{RunnerID: "", OrderID: o.ID}); err != ErrBadRequest {
		t.Errorf("missing runner err = %v, want ErrBadRequest", err)
	}
	if err := svc.Claim(ClaimCommand{RunnerID: "runner404", OrderID: o.ID}); err != ErrRunnerUnavailable {
		t.Errorf("unknown runner err = %v, want ErrRunnerUnavailable", err)
	}
	if err := svc.Claim(ClaimCommand{RunnerID: "runner2", OrderID: o.ID}); err != ErrRunnerUnavailable {
		t.Errorf("offline runner err = %v, want ErrRunnerUnavailable", err)
	}
	if err := svc.Claim(ClaimCommand{RunnerID: "runner1", OrderID: "order_404"}); err != ErrClaimConflict {
		t.Errorf("unknown order err = %v, want ErrClaimConflict", err)
	}

	// A rejected claim leaves the order untouched.
	got, _ := orders.Get(o.ID)
	if got.RunnerID != nil {
		t.Error("rejections must not assign a runner")
	}
}

func TestClaim_ConcurrentRunnersExactlyOneWins(t *testing.T) {
	svc, orders, runners := newTestService()
	o := preparingOrder(t, orders, "102", time.Now())

	const attempts = 12
	for i := 0; i < attempts; i++ {
		runners.Put(runner.Runner{
			ID:       types.ID(fmt.Sprintf("racer%d", i)),
			Name:     fmt.Sprintf("Racer %d", i),
			IsOnline: true,
		})
	}

	start := make(chan struct{})
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		rid := types.ID(fmt.Sprintf("racer%d", i))
		wg.Add(1)
		go func(rid types.ID) {
			defer wg.Done()
			<-start
			errs <- svc.Claim(ClaimCommand{RunnerID: rid, OrderID: o.ID})
		}(rid)
	}
	close(start)
	wg.Wait()
	close(errs)

	wins := 0
	for err := range errs {
		if err == nil {
			wins++
			continue
		}
		if err != ErrClaimConflict {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly 1 winner, got %d", wins)
	}

	got, _ := orders.Get(o.ID)
	if got.RunnerID == nil {
		t.Fatal("winning runner not recorded")
	}
	winner, _ := runners.Get(*got.RunnerID)
	if len(winner.ActiveOrderIDs) != 1 || winner.ActiveOrderIDs[0] != o.ID {
		t.Errorf("winner active orders = %v", winner.ActiveOrderIDs)
	}
}

func TestRelease_ReturnsOrderToPool(t *testing.T) {
	svc, orders, runners := newTestService()
	o := preparingOrder(t, orders, "102", time.Now())

	if err := svc.Claim(ClaimCommand{RunnerID: "runner1", OrderID: o.ID}); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if err := svc.Release(o.ID); err != nil {
		t.Fatalf("release: %v", err)
	}

	got, _ := orders.Get(o.ID)
	if got.RunnerID != nil || got.Status != order.StatusPreparing {
		t.Errorf("released order = %+v", got)
	}
	r, _ := runners.Get("runner1")
	if len(r.ActiveOrderIDs) != 0 {
		t.Errorf("active orders after release = %v", r.ActiveOrderIDs)
	}
	if got := svc.NearbyOrders("runner1"); len(got) != 1 {
		t.Errorf("released order must re-enter discovery, nearby = %v", ids(got))
	}

	if err := svc.Release(o.ID); err != ErrClaimConflict {
		t.Errorf("double release err = %v, want ErrClaimConflict", err)
	}
	if err := svc.Release("order_404"); err != order.ErrNotFound {
		t.Errorf("unknown order err = %v, want order.ErrNotFound", err)
	}
}

func TestRelease_AttributesCurrentHolder(t *testing.T) {
	svc, orders, runners := newTestService()
	runners.Put(runner.Runner{ID: "runner3", Name: "Jordan Lee", IsOnline: true, CurrentSection: "103"})
	o := preparingOrder(t, orders, "102", time.Now())

	if err := svc.Claim(ClaimCommand{RunnerID: "runner1", OrderID: o.ID}); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if err := svc.Release(o.ID); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := svc.Claim(ClaimCommand{RunnerID: "runner3", OrderID: o.ID}); err != nil {
		t.Fatalf("reclaim: %v", err)
	}
	if err := svc.Release(o.ID); err != nil {
		t.Fatalf("second release: %v", err)
	}

	// The second release belongs to the reclaiming runner; the first
	// runner's list must be untouched by it.
	r3, _ := runners.Get("runner3")
	if len(r3.ActiveOrderIDs) != 0 {
		t.Errorf("reclaimer active orders = %v, want empty", r3.ActiveOrderIDs)
	}
	r1, _ := runners.Get("runner1")
	if len(r1.ActiveOrderIDs) != 0 {
		t.Errorf("first runner active orders = %v, want empty", r1.ActiveOrderIDs)
	}
}

func TestCreateBatch_RouteAndPayout(t *testing.T) {
	svc, orders, _ := newTestService()

	far := preparingOrder(t, orders, "111", time.Now())
	near := preparingOrder(t, orders, "102", time.Now())
	for _, o := range []order.Order{far, near} {
		if err := svc.Claim(ClaimCommand{RunnerID: "runner1", OrderID: o.ID}); err != nil {
			t.Fatalf("claim %s: %v", o.ID, err)
		}
	}

	b, err := svc.CreateBatch(CreateBatchCommand{RunnerID: "runner1", OrderIDs: []types.ID{far.ID, near.ID}})
	if err != nil {
		t.Fatalf("create batch: %v", err)
	}

	if b.ID != "batch_1" || b.Status != BatchActive {
		t.Errorf("batch = %+v", b)
	}
	// Greedy tour from the runner's section: 101 -> 102 -> 111.
	if len(b.Route) != 3 || b.Route[0] != "101" || b.Route[1] != "102" || b.Route[2] != "111" {
		t.Errorf("route = %v, want [101 102 111]", b.Route)
	}
	// Legs: 101->102 is 3 minutes, 102->111 is 4.
	if b.RouteEstimateMinutes != 7 {
		t.Errorf("estimate = %d, want 7", b.RouteEstimateMinutes)
	}
	if b.TotalPayout != 400 { // two $2.00 tips
		t.Errorf("payout = %d, want 400", b.TotalPayout)
	}

	mine := svc.BatchesByRunner("runner1")
	if len(mine) != 1 || mine[0].ID != b.ID {
		t.Errorf("batchesByRunner = %v", mine)
	}
}

func TestCreateBatch_Rejections(t *testing.T) {
	svc, orders, _ := newTestService()
	mine := preparingOrder(t, orders, "102", time.Now())
	other := preparingOrder(t, orders, "103", time.Now())

	if err := svc.Claim(ClaimCommand{RunnerID: "runner1", OrderID: mine.ID}); err != nil {
		t.Fatalf("claim: %v", err)
	}

	if _, err := svc.CreateBatch(CreateBatchCommand{RunnerID: "runner1"}); err != ErrBadRequest {
		t.Errorf("no orders err = %v, want ErrBadRequest", err)
	}
	if _, err := svc.CreateBatch(CreateBatchCommand{RunnerID: "runner2", OrderIDs: []types.ID{mine.ID}}); err != ErrRunnerUnavailable {
		t.Errorf("offline runner err = %v, want ErrRunnerUnavailable", err)
	}
	if _, err := svc.CreateBatch(CreateBatchCommand{RunnerID: "runner1", OrderIDs: []types.ID{other.ID}}); err != ErrOrderNotOwned {
		t.Errorf("unclaimed order err = %v, want ErrOrderNotOwned", err)
	}
	if _, err := svc.CreateBatch(CreateBatchCommand{RunnerID: "runner1", OrderIDs: []types.ID{"order_404"}}); err != order.ErrNotFound {
		t.Errorf("unknown order err = %v, want order.ErrNotFound", err)
	}
}

func TestSetBatchStatus(t *testing.T) {
	svc, orders, _ := newTestService()
	o := preparingOrder(t, orders, "102", time.Now())
	if err := svc.Claim(ClaimCommand{RunnerID: "runner1", OrderID: o.ID}); err != nil {
		t.Fatalf("claim: %v", err)
	}
	b, err := svc.CreateBatch(CreateBatchCommand{RunnerID: "runner1", OrderIDs: []types.ID{o.ID}})
	if err != nil {
		t.Fatalf("create batch: %v", err)
	}

	if err := svc.SetBatchStatus(b.ID, BatchCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}
	got, err := svc.Batch(b.ID)
	if err != nil || got.Status != BatchCompleted {
		t.Errorf("batch = %+v, %v", got, err)
	}

	if err := svc.SetBatchStatus(b.ID, "bogus"); err != ErrBadRequest {
		t.Errorf("bogus status err = %v, want ErrBadRequest", err)
	}
	if err := svc.SetBatchStatus("batch_404", BatchCancelled); err != ErrNotFound {
		t.Errorf("unknown batch err = %v, want ErrNotFound", err)
	}
}

func ids(orders []order.Order) []types.ID {
	out := make([]types.ID, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

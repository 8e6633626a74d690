package runner

import (
	"testing"
)

func seededStore() *Store {
	s := NewStore()
	s.Put(Runner{ID: "runner1", Name: "Alex Johnson", IsOnline: true, CurrentSection: "105"})
	s.Put(Runner{ID: "runner2", Name: "Sarah Chen", IsOnline: false, CurrentSection: "112"})
	return s
}

func TestLogin(t *testing.T) {
	svc := NewService(seededStore())

	r, err := svc.Login("any-code")
	if err != nil || r.ID != "runner1" {
		t.Errorf("login = %v, %v; want runner1", r, err)
	}
	if _, err := svc.Login(""); err != ErrBadRequest {
		t.Errorf("empty code err = %v, want ErrBadRequest", err)
	}

	empty := NewService(NewStore())
	if _, err := empty.Login("code"); err != ErrInvalidCode {
		t.Errorf("unseeded login err = %v, want ErrInvalidCode", err)
	}
}

func TestUpdate_PartialMerge(t *testing.T) {
	s := seededStore()

	online := false
	r, err := s.Update("runner1", Patch{IsOnline: &online})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if r.IsOnline {
		t.Error("isOnline not applied")
	}
	if r.Name != "Alex Johnson" || r.CurrentSection != "105" {
		t.Error("untouched fields must survive a partial update")
	}

	section := "108"
	r, _ = s.Update("runner1", Patch{CurrentSection: &section})
	if r.CurrentSection != "108" || r.IsOnline {
		t.Errorf("merge result = %+v", r)
	}

	if _, err := s.Update("runner404", Patch{IsOnline: &online}); err != ErrNotFound {
		t.Errorf("unknown id err = %v, want ErrNotFound (never creates)", err)
	}
}

func TestListOnline(t *testing.T) {
	s := seededStore()
	got := s.ListOnline()
	if len(got) != 1 || got[0].ID != "runner1" {
		t.Errorf("online = %v, want just runner1", got)
	}
}

func TestActiveOrders(t *testing.T) {
	s := seededStore()

	if err := s.AddActiveOrder("runner1", "order_1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Duplicate adds are ignored.
	_ = s.AddActiveOrder("runner1", "order_1")
	_ = s.AddActiveOrder("runner1", "order_2")

	r, _ := s.Get("runner1")
	if len(r.ActiveOrderIDs) != 2 {
		t.Errorf("active = %v", r.ActiveOrderIDs)
	}

	_ = s.RemoveActiveOrder("runner1", "order_1")
	r, _ = s.Get("runner1")
	if len(r.ActiveOrderIDs) != 1 || r.ActiveOrderIDs[0] != "order_2" {
		t.Errorf("active after remove = %v", r.ActiveOrderIDs)
	}

	if err := s.AddActiveOrder("runner404", "order_1"); err != ErrNotFound {
		t.Errorf("unknown runner err = %v", err)
	}
}

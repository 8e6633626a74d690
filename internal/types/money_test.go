package types

import (
	"encoding/json"
	"testing"
)

func TestFromDollars_Rounding(t *testing.T) {
	cases := []struct {
		in   float64
		want Money
	}{
		{0, 0},
		{12.99, 1299},
		{30.97, 3097},
		// 1.005*100 is 100.4999... in float64; conversion must still
		// round the half cent up.
		{1.005, 101},
		{2.675, 268},
		{2.004, 200},
		{-1.005, -101}, // halves round away from zero
	}
	for _, tc := range cases {
		if got := FromDollars(tc.in); got != tc.want {
			t.Errorf("FromDollars(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Money(3863))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "38.63" {
		t.Errorf("marshal = %s, want 38.63", b)
	}

	var m Money
	if err := json.Unmarshal([]byte("38.63"), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m != 3863 {
		t.Errorf("unmarshal = %d, want 3863", m)
	}
}

package order

import "testing"

func TestStatusCanTransition(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusPreparing, true},
		{StatusPreparing, StatusReady, true},
		{StatusPending, StatusReady, false},
		{StatusPending, StatusPickedUp, false},
		{StatusPreparing, StatusPending, false},
		{StatusReady, StatusPickedUp, false},
		{StatusReady, StatusPreparing, false},
		{StatusPickedUp, StatusPending, false},
		{StatusPending, StatusPending, false},
		{Status("cancelled"), StatusPreparing, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStatusNext(t *testing.T) {
	if next, ok := StatusPending.Next(); !ok || next != StatusPreparing {
		t.Fatalf("pending next = %s, %v", next, ok)
	}
	if next, ok := StatusPreparing.Next(); !ok || next != StatusReady {
		t.Fatalf("preparing next = %s, %v", next, ok)
	}
	for _, s := range []Status{StatusReady, StatusPickedUp} {
		if _, ok := s.Next(); ok {
			t.Fatalf("%s must not advance", s)
		}
	}
	if !StatusPickedUp.Valid() || Status("served").Valid() {
		t.Fatalf("unexpected validity")
	}
}

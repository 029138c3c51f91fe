package order

import "errors"

// Status is the kitchen lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	// StatusPickedUp is terminal and no transition leads to it yet.
	StatusPickedUp Status = "picked_up"
)

// ErrInvalidTransition is returned when a status change skips or reverses the
// kitchen lifecycle.
var ErrInvalidTransition = errors.New("order: invalid status transition")

var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusPreparing},
	StatusPreparing: {StatusReady},
	StatusReady:     {},
	StatusPickedUp:  {},
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether the kitchen may move an order from s to next.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Next returns the single forward step from s, if there is one.
func (s Status) Next() (Status, bool) {
	steps := allowedTransitions[s]
	if len(steps) == 0 {
		return "", false
	}
	return steps[0], true
}

// Active reports whether the kitchen still has work to do on the order.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusPreparing
}

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusPreparing:
		return "Preparing"
	case StatusReady:
		return "Ready"
	case StatusPickedUp:
		return "Picked Up"
	}
	return string(s)
}

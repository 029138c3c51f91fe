package order

import (
	"fmt"
	"time"
)

const (
	// UrgentWithin flags a countdown that is close to its deadline.
	UrgentWithin = 5 * time.Minute
	// ElapsedWarningAfter and ElapsedSevereAfter colour the kitchen's elapsed clock.
	ElapsedWarningAfter = 15 * time.Minute
	ElapsedSevereAfter  = 25 * time.Minute
)

// ElapsedLevel grades how long an order has been waiting.
type ElapsedLevel int

const (
	ElapsedNormal ElapsedLevel = iota
	ElapsedWarning
	ElapsedSevere
)

// Countdown is the time left before an immediate order is due.
type Countdown struct {
	Remaining time.Duration
	Late      bool
	Urgent    bool
}

// Elapsed is the time since the order was placed, never negative.
func (o Order) Elapsed(now time.Time) time.Duration {
	return max(0, now.Sub(o.CreatedAt))
}

// Deadline is when the slowest line should be ready.
func (o Order) Deadline() time.Time {
	return o.CreatedAt.Add(time.Duration(o.MaxEstimatedTime) * time.Minute)
}

// Countdown reports the time left for eat-in and takeaway orders. Scheduled
// orders have no countdown and return false.
func (o Order) Countdown(now time.Time) (Countdown, bool) {
	if !o.DiningOption.IsImmediate() {
		return Countdown{}, false
	}
	remaining := max(0, o.Deadline().Sub(now))
	return Countdown{
		Remaining: remaining,
		Late:      remaining == 0,
		Urgent:    remaining > 0 && remaining < UrgentWithin,
	}, true
}

// RemainingMinutes rounds the time left up to whole minutes, for guests.
func (o Order) RemainingMinutes(now time.Time) int {
	remaining := max(0, o.Deadline().Sub(now))
	mins := remaining / time.Minute
	if remaining%time.Minute != 0 {
		mins++
	}
	return int(mins)
}

// ElapsedLevel grades Elapsed against the kitchen thresholds.
func (o Order) ElapsedLevel(now time.Time) ElapsedLevel {
	elapsed := o.Elapsed(now)
	switch {
	case elapsed >= ElapsedSevereAfter:
		return ElapsedSevere
	case elapsed >= ElapsedWarningAfter:
		return ElapsedWarning
	}
	return ElapsedNormal
}

// FormatClock renders a duration as m:ss, truncating partial seconds.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kingrea/afrofeast/internal/catalog"
)

func timedOrder(opt catalog.DiningOption, created time.Time, minutes int) Order {
	return Order{DiningOption: opt, CreatedAt: created, MaxEstimatedTime: minutes}
}

func TestCountdownOnlyForImmediateOrders(t *testing.T) {
	created := time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)
	for _, opt := range []catalog.DiningOption{catalog.Reservation, catalog.Pickup, catalog.Delivery} {
		_, ok := timedOrder(opt, created, 25).Countdown(created)
		assert.False(t, ok, string(opt))
	}

	o := timedOrder(catalog.EatIn, created, 25)
	cd, ok := o.Countdown(created.Add(10 * time.Minute))
	assert.True(t, ok)
	assert.Equal(t, 15*time.Minute, cd.Remaining)
	assert.False(t, cd.Late)
	assert.False(t, cd.Urgent)

	cd, _ = o.Countdown(created.Add(21 * time.Minute))
	assert.True(t, cd.Urgent)
	assert.False(t, cd.Late)

	cd, _ = o.Countdown(created.Add(40 * time.Minute))
	assert.Equal(t, time.Duration(0), cd.Remaining)
	assert.True(t, cd.Late)
	assert.False(t, cd.Urgent)
}

func TestElapsedLevels(t *testing.T) {
	created := time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)
	o := timedOrder(catalog.Takeaway, created, 10)
	assert.Equal(t, ElapsedNormal, o.ElapsedLevel(created.Add(14*time.Minute+59*time.Second)))
	assert.Equal(t, ElapsedWarning, o.ElapsedLevel(created.Add(15*time.Minute)))
	assert.Equal(t, ElapsedWarning, o.ElapsedLevel(created.Add(24*time.Minute)))
	assert.Equal(t, ElapsedSevere, o.ElapsedLevel(created.Add(25*time.Minute)))
	assert.Equal(t, time.Duration(0), o.Elapsed(created.Add(-time.Minute)))
}

func TestRemainingMinutesRoundsUp(t *testing.T) {
	created := time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)
	o := timedOrder(catalog.EatIn, created, 12)
	assert.Equal(t, 12, o.RemainingMinutes(created))
	assert.Equal(t, 12, o.RemainingMinutes(created.Add(30*time.Second)))
	assert.Equal(t, 1, o.RemainingMinutes(created.Add(11*time.Minute+59*time.Second)))
	assert.Equal(t, 0, o.RemainingMinutes(created.Add(12*time.Minute)))
	assert.Equal(t, 0, o.RemainingMinutes(created.Add(time.Hour)))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00", FormatClock(0))
	assert.Equal(t, "0:09", FormatClock(9*time.Second+900*time.Millisecond))
	assert.Equal(t, "4:05", FormatClock(4*time.Minute+5*time.Second))
	assert.Equal(t, "125:00", FormatClock(125*time.Minute))
	assert.Equal(t, "0:00", FormatClock(-time.Second))
}

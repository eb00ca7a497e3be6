package polls

import (
	"fmt"
	"time"
)

type TimeUnit string

const (
	UnitDays    TimeUnit = "days"
	UnitHours   TimeUnit = "hours"
	UnitMinutes TimeUnit = "minutes"
	UnitSeconds TimeUnit = "seconds"
)

// TimeRemaining is the display bucket for a poll deadline.
type TimeRemaining struct {
	Expired bool
	Value   int64
	Unit    TimeUnit
}

// Remaining reports the time left until expiration in the largest whole unit,
// or Expired once now has reached expiration.
func Remaining(expiration, now time.Time) TimeRemaining {
	if !now.Before(expiration) {
		return TimeRemaining{Expired: true}
	}

	diff := expiration.Sub(now)
	switch {
	case diff >= 24*time.Hour:
		return TimeRemaining{Value: int64(diff / (24 * time.Hour)), Unit: UnitDays}
	case diff >= time.Hour:
		return TimeRemaining{Value: int64(diff / time.Hour), Unit: UnitHours}
	case diff >= time.Minute:
		return TimeRemaining{Value: int64(diff / time.Minute), Unit: UnitMinutes}
	default:
		return TimeRemaining{Value: int64(diff / time.Second), Unit: UnitSeconds}
	}
}

func (r TimeRemaining) String() string {
	if r.Expired {
		return "Expired"
	}
	return fmt.Sprintf("%d %s left", r.Value, r.Unit)
}

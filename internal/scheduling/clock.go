package scheduling

import (
	"time"

	"salon-booking/internal/data/entity"
)

// Clock supplies "now" in the business timezone.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

func NewSystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock always returns t.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Today is the business calendar day as UTC midnight.
func Today(c Clock) time.Time {
	return entity.DateOf(c.Now())
}

// MinuteOfDay is minutes after midnight on the business clock.
func MinuteOfDay(c Clock) int {
	now := c.Now()
	return now.Hour()*60 + now.Minute()
}

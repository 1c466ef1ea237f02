package entity

import (
	"fmt"
	"strings"
	"time"
)

// WorkingHours is one weekday of a staff member's calendar.
type WorkingHours struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	IsWorking bool   `json:"isWorking"`
}

// Window returns the working window in minutes after midnight.
func (w WorkingHours) Window() (start, end int, err error) {
	start, err = ParseMinutes(w.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err = ParseMinutes(w.End)
	if err != nil {
		return 0, 0, err
	}
	if end <= start {
		return 0, 0, fmt.Errorf("working hours end %s is not after start %s", w.End, w.Start)
	}
	return start, end, nil
}

// Calendar maps lowercase weekday names to working hours.
type Calendar map[string]WorkingHours

func WeekdayKey(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// For returns the entry for d. A missing weekday is a day off.
func (c Calendar) For(d time.Weekday) WorkingHours {
	return c[WeekdayKey(d)]
}

// Covers reports whether [start, start+duration) lies inside the working
// window of date's weekday.
func (c Calendar) Covers(date time.Time, start, duration int) bool {
	day := c.For(date.Weekday())
	if !day.IsWorking {
		return false
	}
	open, closeAt, err := day.Window()
	if err != nil {
		return false
	}
	return start >= open && start+duration <= closeAt
}

// Validate checks every working day has a well formed window.
func (c Calendar) Validate() error {
	for day, hours := range c {
		if !hours.IsWorking {
			continue
		}
		if _, _, err := hours.Window(); err != nil {
			return fmt.Errorf("%s: %w", day, err)
		}
	}
	return nil
}

// StandardCalendar is Monday to Friday with the given hours, weekends off.
func StandardCalendar(start, end string) Calendar {
	cal := Calendar{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		working := d != time.Saturday && d != time.Sunday
		cal[WeekdayKey(d)] = WorkingHours{Start: start, End: end, IsWorking: working}
	}
	return cal
}

package scheduling

import (
	"context"
	"fmt"
	"time"

	"salon-booking/internal/data/entity"

	"github.com/google/uuid"
)

// BookingReader is the read side of the booking store the engine needs.
type BookingReader interface {
	FindActiveByStaffAndDate(ctx context.Context, staffID uuid.UUID, date time.Time, excludeID *uuid.UUID) ([]*entity.Booking, error)
}

// Interval is a half-open range of minutes after midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps uses half-open semantics, so touching intervals do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && i.End > o.Start
}

// ConflictChecker decides whether a candidate appointment collides with
// an active booking of the same staff member on the same day.
type ConflictChecker struct {
	bookings BookingReader
	// every existing booking is assumed to occupy this many minutes
	occupiedMinutes int
}

func NewConflictChecker(bookings BookingReader, occupiedMinutes int) *ConflictChecker {
	return &ConflictChecker{bookings: bookings, occupiedMinutes: occupiedMinutes}
}

// Occupied returns the conflict intervals of the active bookings of
// staffID on date, leaving out excludeID.
func (c *ConflictChecker) Occupied(ctx context.Context, staffID uuid.UUID, date time.Time, excludeID *uuid.UUID) ([]Interval, error) {
	bookings, err := c.bookings.FindActiveByStaffAndDate(ctx, staffID, date, excludeID)
	if err != nil {
		return nil, err
	}

	intervals := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		start, err := b.StartMinutes()
		if err != nil {
			return nil, fmt.Errorf("booking %s: %w", b.ID, err)
		}
		intervals = append(intervals, Interval{Start: start, End: start + c.occupiedMinutes})
	}
	return intervals, nil
}

// HasConflict reports whether [start, start+duration) overlaps any
// occupied interval.
func (c *ConflictChecker) HasConflict(ctx context.Context, staffID uuid.UUID, date time.Time, start, duration int, excludeID *uuid.UUID) (bool, error) {
	occupied, err := c.Occupied(ctx, staffID, date, excludeID)
	if err != nil {
		return false, err
	}
	return collides(Interval{Start: start, End: start + duration}, occupied), nil
}

func collides(candidate Interval, occupied []Interval) bool {
	for _, o := range occupied {
		if candidate.Overlaps(o) {
			return true
		}
	}
	return false
}

package scheduling

import (
	"context"
	"fmt"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/apperror"

	"github.com/google/uuid"
)

// StaffReader loads a staff member, returning nil when there is none.
type StaffReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error)
}

type Slot struct {
	Time      string
	Available bool
	StaffID   uuid.UUID
}

type SlotGenerator struct {
	staff     StaffReader
	conflicts *ConflictChecker
	clock     Clock
	step      int
}

func NewSlotGenerator(staff StaffReader, conflicts *ConflictChecker, clock Clock, stepMinutes int) *SlotGenerator {
	return &SlotGenerator{
		staff:     staff,
		conflicts: conflicts,
		clock:     clock,
		step:      stepMinutes,
	}
}

// GenerateSlots lists the free start times for a duration-minute
// appointment with staffID on date, in ascending order. Conflicting and
// already-passed times are left out. Unusable hours on a working day are an
// error, not a day off.
func (g *SlotGenerator) GenerateSlots(ctx context.Context, staffID uuid.UUID, date time.Time, duration int) ([]Slot, error) {
	if duration <= 0 {
		return nil, apperror.InvalidField("duration", "Duration must be a positive number of minutes")
	}

	staff, err := g.staff.FindByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NotFound("Staff member not found")
	}

	slots := []Slot{}

	day := staff.WorkingHours.For(date.Weekday())
	if !day.IsWorking {
		return slots, nil
	}
	open, closeAt, err := day.Window()
	if err != nil {
		return nil, fmt.Errorf("staff %s %s hours: %w", staffID, entity.WeekdayKey(date.Weekday()), err)
	}

	occupied, err := g.conflicts.Occupied(ctx, staffID, date, nil)
	if err != nil {
		return nil, err
	}

	pastCutoff := -1
	if date.Equal(Today(g.clock)) {
		pastCutoff = MinuteOfDay(g.clock)
	}

	for t := open; t+duration <= closeAt; t += g.step {
		if t <= pastCutoff {
			continue
		}
		if collides(Interval{Start: t, End: t + duration}, occupied) {
			continue
		}
		slots = append(slots, Slot{
			Time:      entity.FormatMinutes(t),
			Available: true,
			StaffID:   staffID,
		})
	}

	return slots, nil
}

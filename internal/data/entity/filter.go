package entity

import (
	"time"

	"github.com/google/uuid"
)

type DateRange string

const (
	DateRangeAll      DateRange = "all"
	DateRangeToday    DateRange = "today"
	DateRangeUpcoming DateRange = "upcoming"
	DateRangePast     DateRange = "past"
)

func (r DateRange) Valid() bool {
	switch r {
	case "", DateRangeAll, DateRangeToday, DateRangeUpcoming, DateRangePast:
		return true
	}
	return false
}

const (
	DefaultBookingPageSize = 50
	MaxBookingPageSize     = 100
)

// BookingFilter is built once per list request and passed by value.
type BookingFilter struct {
	Status    *BookingStatus
	DateRange DateRange
	// Today is the business calendar day DateRange is resolved against.
	Today   time.Time
	StaffID *uuid.UUID
	Search  string
	Page    int
	Limit   int
}

func (f BookingFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize()
}

func (f BookingFilter) PageSize() int {
	if f.Limit < 1 {
		return DefaultBookingPageSize
	}
	if f.Limit > MaxBookingPageSize {
		return MaxBookingPageSize
	}
	return f.Limit
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ActiveStatuses are the statuses that occupy a staff member's time.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CanTransitionTo allows pending->confirmed->completed and cancelling any
// non-terminal booking. Staying in the same status is always allowed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

type Booking struct {
	Base
	ServiceID        uuid.UUID     `db:"service_id"`
	StaffID          uuid.UUID     `db:"staff_id"`
	CustomerName     string        `db:"customer_name"`
	CustomerEmail    string        `db:"customer_email"`
	CustomerPhone    string        `db:"customer_phone"`
	Date             time.Time     `db:"date"`
	Time             string        `db:"time"`
	Status           BookingStatus `db:"status"`
	PaymentStatus    PaymentStatus `db:"payment_status"`
	TotalPrice       float64       `db:"total_price"`
	Notes            string        `db:"notes"`
	ConfirmationSent bool          `db:"confirmation_sent"`
	ReminderSent     bool          `db:"reminder_sent"`

	// read-only, filled by joins
	ServiceName string `db:"-"`
	StaffName   string `db:"-"`
}

// StartMinutes returns Time as minutes after midnight.
func (b *Booking) StartMinutes() (int, error) {
	return ParseMinutes(b.Time)
}

type BookingStats struct {
	TotalBookings     int64
	PendingBookings   int64
	ConfirmedBookings int64
	TodayBookings     int64
	Revenue           float64
}

package response

import (
	"time"

	"salon-booking/internal/data/entity"
)

type BookingResponse struct {
	ID               string               `json:"id"`
	ServiceID        string               `json:"serviceId"`
	ServiceName      string               `json:"serviceName,omitempty"`
	StaffID          string               `json:"staffId"`
	StaffName        string               `json:"staffName,omitempty"`
	CustomerName     string               `json:"customerName"`
	CustomerEmail    string               `json:"customerEmail"`
	CustomerPhone    string               `json:"customerPhone"`
	Date             string               `json:"date"`
	Time             string               `json:"time"`
	Status           entity.BookingStatus `json:"status"`
	PaymentStatus    entity.PaymentStatus `json:"paymentStatus"`
	TotalPrice       float64              `json:"totalPrice"`
	Notes            string               `json:"notes"`
	ConfirmationSent bool                 `json:"confirmationSent"`
	ReminderSent     bool                 `json:"reminderSent"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

type BookingListResponse struct {
	Bookings    []BookingResponse `json:"bookings"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	Total       int64             `json:"total"`
}

type StatsResponse struct {
	TotalBookings     int64   `json:"totalBookings"`
	PendingBookings   int64   `json:"pendingBookings"`
	ConfirmedBookings int64   `json:"confirmedBookings"`
	TodayBookings     int64   `json:"todayBookings"`
	Revenue           float64 `json:"revenue"`
}

type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	StaffID   string `json:"staffId"`
}

// Helper converters
func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID.String(),
		ServiceID:        b.ServiceID.String(),
		ServiceName:      b.ServiceName,
		StaffID:          b.StaffID.String(),
		StaffName:        b.StaffName,
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		CustomerPhone:    b.CustomerPhone,
		Date:             entity.FormatDate(b.Date),
		Time:             b.Time,
		Status:           b.Status,
		PaymentStatus:    b.PaymentStatus,
		TotalPrice:       b.TotalPrice,
		Notes:            b.Notes,
		ConfirmationSent: b.ConfirmationSent,
		ReminderSent:     b.ReminderSent,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func StatsToResponse(s *entity.BookingStats) StatsResponse {
	return StatsResponse{
		TotalBookings:     s.TotalBookings,
		PendingBookings:   s.PendingBookings,
		ConfirmedBookings: s.ConfirmedBookings,
		TodayBookings:     s.TodayBookings,
		Revenue:           s.Revenue,
	}
}

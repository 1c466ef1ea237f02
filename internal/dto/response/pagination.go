package response

import (
	"salon-booking/internal/data/entity"
	"salon-booking/pkg/utils"
)

// NewBookingListResponse wraps one page of bookings with paging metadata.
func NewBookingListResponse(bookings []*entity.Booking, page, limit int, total int64) *BookingListResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = BookingToResponse(b)
	}

	if page < 1 {
		page = 1
	}

	return &BookingListResponse{
		Bookings:    items,
		TotalPages:  utils.TotalPages(total, limit),
		CurrentPage: page,
		Total:       total,
	}
}

package request

type CreateBookingRequest struct {
	ServiceID     string `json:"serviceId" validate:"required,uuid"`
	StaffID       string `json:"staffId" validate:"required,uuid"`
	CustomerName  string `json:"customerName" validate:"required,max=100"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerPhone string `json:"customerPhone" validate:"required,max=50"`
	Date          string `json:"date" validate:"required,isodate"`
	Time          string `json:"time" validate:"required,hhmm"`
	Notes         string `json:"notes" validate:"max=500"`
}

// UpdateBookingRequest carries only the fields being changed.
type UpdateBookingRequest struct {
	ServiceID     *string `json:"serviceId" validate:"omitempty,uuid"`
	StaffID       *string `json:"staffId" validate:"omitempty,uuid"`
	CustomerName  *string `json:"customerName" validate:"omitempty,min=1,max=100"`
	CustomerEmail *string `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone *string `json:"customerPhone" validate:"omitempty,min=1,max=50"`
	Date          *string `json:"date" validate:"omitempty,isodate"`
	Time          *string `json:"time" validate:"omitempty,hhmm"`
	Status        *string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus *string `json:"paymentStatus" validate:"omitempty,oneof=pending paid refunded"`
	Notes         *string `json:"notes" validate:"omitempty,max=500"`
}

// ListBookingsRequest is the parsed query string of GET /bookings.
type ListBookingsRequest struct {
	Status  string `json:"status" validate:"omitempty,oneof=all pending confirmed completed cancelled"`
	Date    string `json:"date" validate:"omitempty,oneof=all today upcoming past"`
	StaffID string `json:"staffId" validate:"omitempty,uuid"`
	Search  string `json:"search" validate:"max=100"`
	Page    int    `json:"page" validate:"min=1"`
	Limit   int    `json:"limit" validate:"min=1,max=100"`
}

type AvailableSlotsRequest struct {
	StaffID  string `json:"staffId" validate:"required,uuid"`
	Date     string `json:"date" validate:"required,isodate"`
	Duration int    `json:"duration" validate:"min=1,max=1440"`
}

type TestEmailRequest struct {
	To string `json:"to" validate:"required,email"`
}

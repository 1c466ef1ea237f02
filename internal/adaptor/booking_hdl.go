package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"salon-booking/internal/dto/request"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/apperror"
	"salon-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service         usecase.BookingService
	defaultDuration int
	errs            *errorWriter
	log             *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, defaultDuration int, errs *errorWriter, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service:         service,
		defaultDuration: defaultDuration,
		errs:            errs,
		log:             log.With(zap.String("handler", "booking")),
	}
}

// ListBookings handles GET /api/bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.ListBookingsRequest{
		Status:  query.Get("status"),
		Date:    query.Get("date"),
		StaffID: query.Get("staffId"),
		Search:  query.Get("search"),
		Page:    utils.ParseInt(query.Get("page"), 1),
		Limit:   utils.ParseInt(query.Get("limit"), 50),
	}

	bookings, err := h.service.ListBookings(r.Context(), req)
	if err != nil {
		h.errs.write(w, r, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// GetStats handles GET /api/bookings/stats
func (h *BookingHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		h.errs.write(w, r, err, "get booking stats")
		return
	}

	utils.ResponseSuccess(w, stats)
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.errs.write(w, r, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.errs.write(w, r, err, "create booking")
		return
	}

	utils.ResponseCreated(w, booking)
}

// UpdateBooking handles PUT /api/bookings/{id}
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.UpdateBooking(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.errs.write(w, r, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// DeleteBooking handles DELETE /api/bookings/{id}
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBooking(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.errs.write(w, r, err, "delete booking")
		return
	}

	utils.ResponseMessage(w, "Booking deleted successfully")
}

// AvailableSlots handles GET /api/bookings/available-slots/{staffId}/{date}
func (h *BookingHandler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	duration := h.defaultDuration
	if raw := r.URL.Query().Get("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.errs.write(w, r, apperror.InvalidField("duration", "Duration must be a number of minutes"), "get available slots")
			return
		}
		duration = parsed
	}

	req := &request.AvailableSlotsRequest{
		StaffID:  chi.URLParam(r, "staffId"),
		Date:     chi.URLParam(r, "date"),
		Duration: duration,
	}

	slots, err := h.service.AvailableSlots(r.Context(), req)
	if err != nil {
		h.errs.write(w, r, err, "get available slots")
		return
	}

	utils.ResponseSuccess(w, slots)
}

package adaptor

import (
	"encoding/json"
	"net/http"

	"salon-booking/internal/dto/request"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EmailHandler struct {
	service usecase.EmailService
	errs    *errorWriter
	log     *zap.Logger
}

func NewEmailHandler(service usecase.EmailService, errs *errorWriter, log *zap.Logger) *EmailHandler {
	return &EmailHandler{
		service: service,
		errs:    errs,
		log:     log.With(zap.String("handler", "email")),
	}
}

// ResendConfirmation handles POST /api/email/resend-confirmation/{bookingId}
func (h *EmailHandler) ResendConfirmation(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ResendConfirmation(r.Context(), chi.URLParam(r, "bookingId")); err != nil {
		h.errs.write(w, r, err, "resend confirmation email")
		return
	}

	utils.ResponseMessage(w, "Confirmation email sent successfully")
}

// SendUpdate handles POST /api/email/send-update/{bookingId}
func (h *EmailHandler) SendUpdate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.SendUpdate(r.Context(), chi.URLParam(r, "bookingId")); err != nil {
		h.errs.write(w, r, err, "send update email")
		return
	}

	utils.ResponseMessage(w, "Update email sent successfully")
}

// SendTest handles POST /api/email/test
func (h *EmailHandler) SendTest(w http.ResponseWriter, r *http.Request) {
	var req request.TestEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.SendTest(r.Context(), &req); err != nil {
		h.errs.write(w, r, err, "send test email")
		return
	}

	utils.ResponseMessage(w, "Test email sent successfully")
}

package wire

import (
	"salon-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireEmail(r chi.Router, emailHandler *adaptor.EmailHandler) {
	r.Route("/email", func(r chi.Router) {
		r.Post("/resend-confirmation/{bookingId}", emailHandler.ResendConfirmation)
		r.Post("/send-update/{bookingId}", emailHandler.SendUpdate)
		r.Post("/test", emailHandler.SendTest)
	})
}

package adaptor

import (
	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking *BookingHandler
	Catalog *CatalogHandler
	Email   *EmailHandler
	Health  *HealthHandler
}

func NewHandler(service *usecase.Service, db Pinger, config *utils.Config, log *zap.Logger) *Handler {
	errs := newErrorWriter(config.App.IsDevelopment(), log)

	return &Handler{
		Booking: NewBookingHandler(service.Booking, config.Scheduling.DefaultSlotDuration, errs, log),
		Catalog: NewCatalogHandler(service.Catalog, errs, log),
		Email:   NewEmailHandler(service.Email, errs, log),
		Health:  NewHealthHandler(db, config.App.Env, log),
	}
}

package usecase

import (
	"salon-booking/internal/data/repository"
	"salon-booking/internal/notification"
	"salon-booking/internal/scheduling"
	"salon-booking/pkg/metrics"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Catalog CatalogService
	Email   EmailService
}

// Options carries the collaborators that are chosen at startup.
type Options struct {
	Locker   scheduling.Locker
	Notifier notification.Notifier
	Clock    scheduling.Clock
	Metrics  *metrics.Metrics
}

func NewService(repo *repository.Repository, config *utils.Config, opts Options, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo, config.Scheduling, opts, log),
		Catalog: NewCatalogService(repo, log),
		Email:   NewEmailService(repo, opts.Notifier, opts.Metrics, log),
	}
}

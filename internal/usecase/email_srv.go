package usecase

import (
	"context"

	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/request"
	"salon-booking/internal/notification"
	"salon-booking/pkg/apperror"
	"salon-booking/pkg/metrics"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

// EmailService re-sends booking emails on demand.
type EmailService interface {
	ResendConfirmation(ctx context.Context, bookingID string) error
	SendUpdate(ctx context.Context, bookingID string) error
	SendTest(ctx context.Context, req *request.TestEmailRequest) error
}

type emailService struct {
	repo     *repository.Repository
	notifier notification.Notifier
	metrics  *metrics.Metrics
	log      *zap.Logger
}

func NewEmailService(repo *repository.Repository, notifier notification.Notifier, m *metrics.Metrics, log *zap.Logger) EmailService {
	return &emailService{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		log:      log.With(zap.String("service", "email")),
	}
}

func (s *emailService) load(ctx context.Context, bookingID string) (notification.BookingEmail, error) {
	id, err := parseBookingID(bookingID)
	if err != nil {
		return notification.BookingEmail{}, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return notification.BookingEmail{}, toAppError(err, "Booking not found")
	}
	if booking == nil {
		return notification.BookingEmail{}, apperror.NotFound("Booking not found")
	}

	// names already come from the booking join; these lookups add detail
	service, err := s.repo.Service.FindByID(ctx, booking.ServiceID)
	if err != nil {
		return notification.BookingEmail{}, toAppError(err, "Service not found")
	}
	if service == nil {
		return notification.BookingEmail{}, apperror.NotFound("Service not found")
	}
	staff, err := s.repo.Staff.FindByID(ctx, booking.StaffID)
	if err != nil {
		return notification.BookingEmail{}, toAppError(err, "Staff member not found")
	}
	if staff == nil {
		return notification.BookingEmail{}, apperror.NotFound("Staff member not found")
	}

	return notification.BookingEmail{Booking: booking, Service: service, Staff: staff}, nil
}

func (s *emailService) ResendConfirmation(ctx context.Context, bookingID string) error {
	msg, err := s.load(ctx, bookingID)
	if err != nil {
		return err
	}

	err = s.notifier.SendBookingConfirmation(ctx, msg)
	recordEmail(s.metrics, "confirmation", err)
	if err != nil {
		s.log.Error("Failed to resend confirmation", zap.Error(err), zap.String("booking_id", bookingID))
		return apperror.Upstream("Error sending confirmation email", err)
	}

	if err := s.repo.Booking.MarkConfirmationSent(ctx, msg.Booking.ID); err != nil {
		return toAppError(err, "Booking not found")
	}
	return nil
}

func (s *emailService) SendUpdate(ctx context.Context, bookingID string) error {
	msg, err := s.load(ctx, bookingID)
	if err != nil {
		return err
	}

	err = s.notifier.SendBookingUpdate(ctx, msg)
	recordEmail(s.metrics, "update", err)
	if err != nil {
		s.log.Error("Failed to send update", zap.Error(err), zap.String("booking_id", bookingID))
		return apperror.Upstream("Error sending update email", err)
	}
	return nil
}

func (s *emailService) SendTest(ctx context.Context, req *request.TestEmailRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperror.Validation(errs...)
	}

	err := s.notifier.SendTest(ctx, req.To)
	recordEmail(s.metrics, "test", err)
	if err != nil {
		return apperror.Upstream("Error sending test email", err)
	}
	return nil
}

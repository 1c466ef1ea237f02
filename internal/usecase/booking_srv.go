package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"
	"salon-booking/internal/notification"
	"salon-booking/internal/scheduling"
	"salon-booking/pkg/apperror"
	"salon-booking/pkg/metrics"
	"salon-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	ListBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.BookingListResponse, error)
	GetStats(ctx context.Context) (*response.StatsResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID string) error
	AvailableSlots(ctx context.Context, req *request.AvailableSlotsRequest) ([]response.SlotResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	conflicts *scheduling.ConflictChecker
	slots     *scheduling.SlotGenerator
	locker    scheduling.Locker
	notifier  notification.Notifier
	clock     scheduling.Clock
	metrics   *metrics.Metrics
	timeout   time.Duration
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, config utils.SchedulingConfig, opts Options, log *zap.Logger) BookingService {
	conflicts := scheduling.NewConflictChecker(repo.Booking, config.ConflictDurationMinutes)

	return &bookingService{
		repo:      repo,
		conflicts: conflicts,
		slots:     scheduling.NewSlotGenerator(repo.Staff, conflicts, opts.Clock, config.SlotStepMinutes),
		locker:    opts.Locker,
		notifier:  opts.Notifier,
		clock:     opts.Clock,
		metrics:   opts.Metrics,
		timeout:   config.StorageTimeout,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.BookingListResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation(errs...)
	}

	filter := entity.BookingFilter{
		DateRange: entity.DateRange(req.Date),
		Today:     scheduling.Today(s.clock),
		Search:    req.Search,
		Page:      req.Page,
		Limit:     req.Limit,
	}
	if req.Status != "" && req.Status != "all" {
		status := entity.BookingStatus(req.Status)
		filter.Status = &status
	}
	if req.StaffID != "" {
		staffID := uuid.MustParse(req.StaffID)
		filter.StaffID = &staffID
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	bookings, total, err := s.repo.Booking.List(ctx, filter)
	if err != nil {
		return nil, toAppError(err, "Booking not found")
	}

	return response.NewBookingListResponse(bookings, filter.Page, filter.PageSize(), total), nil
}

func (s *bookingService) GetStats(ctx context.Context) (*response.StatsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stats, err := s.repo.Booking.Stats(ctx, scheduling.Today(s.clock))
	if err != nil {
		return nil, toAppError(err, "Booking not found")
	}

	resp := response.StatsToResponse(stats)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := parseBookingID(bookingID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, toAppError(err, "Booking not found")
	}
	if booking == nil {
		return nil, apperror.NotFound("Booking not found")
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request before touching storage
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation(errs...)
	}

	serviceID := uuid.MustParse(req.ServiceID)
	staffID := uuid.MustParse(req.StaffID)
	date, err := entity.ParseDate(req.Date)
	if err != nil {
		return nil, apperror.InvalidField("date", "Valid date is required")
	}
	start, err := entity.ParseMinutes(req.Time)
	if err != nil {
		return nil, apperror.InvalidField("time", "Valid time is required (HH:MM)")
	}

	booking, service, staff, err := s.createLocked(ctx, req, serviceID, staffID, date, start)
	if err != nil {
		return nil, err
	}

	s.metrics.BookingsCreated.Inc()
	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("staff_id", staffID.String()),
		zap.String("date", entity.FormatDate(date)),
		zap.String("time", booking.Time),
	)

	// Email runs after commit; failure never fails the request
	msg := notification.BookingEmail{Booking: booking, Service: service, Staff: staff}
	if s.notify(ctx, "confirmation", s.notifier.SendBookingConfirmation, msg) {
		booking.ConfirmationSent = true

		markCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		if err := s.repo.Booking.MarkConfirmationSent(markCtx, booking.ID); err != nil {
			s.log.Warn("Failed to record confirmation sent",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
		}
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) createLocked(
	ctx context.Context,
	req *request.CreateBookingRequest,
	serviceID, staffID uuid.UUID,
	date time.Time,
	start int,
) (*entity.Booking, *entity.Service, *entity.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	service, staff, err := s.resolve(ctx, serviceID, staffID)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := checkBookable(service, staff, date, start); err != nil {
		return nil, nil, nil, err
	}

	booking := &entity.Booking{
		Base:          entity.NewBase(time.Now()),
		ServiceID:     serviceID,
		StaffID:       staffID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Date:          date,
		Time:          entity.FormatMinutes(start),
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		TotalPrice:    service.Price,
		Notes:         req.Notes,
		ServiceName:   service.Name,
		StaffName:     staff.Name,
	}

	err = s.withStaffDay(ctx, staffID, date, func(ctx context.Context) error {
		if err := s.ensureFree(ctx, staffID, date, start, service.Duration, nil); err != nil {
			return err
		}
		return s.repo.Booking.Create(ctx, booking)
	})
	if err != nil {
		return nil, nil, nil, s.writeFailed("create booking", err)
	}

	return booking, service, staff, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	id, err := parseBookingID(bookingID)
	if err != nil {
		return nil, err
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation(errs...)
	}

	updated, previous, service, staff, err := s.updateLocked(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", id.String()),
		zap.String("status", string(updated.Status)),
	)

	if updated.Status != previous && (updated.Status == entity.BookingStatusConfirmed || updated.Status == entity.BookingStatusCancelled) {
		s.notifyUpdate(ctx, updated, service, staff)
	}

	resp := response.BookingToResponse(updated)
	return &resp, nil
}

// errBookingMoved means the booking changed staff or day between the
// unlocked read and taking the staff-day locks.
var errBookingMoved = errors.New("booking moved while waiting for lock")

const maxUpdateAttempts = 3

// updateLocked applies req to the stored booking. The booking is re-read
// under the staff-day locks of both its current and its target slot, so
// concurrent updates and creates on those days are serialised. It returns
// the new booking, the status before the change and, when they were
// loaded, the service and staff it now refers to.
func (s *bookingService) updateLocked(ctx context.Context, id uuid.UUID, req *request.UpdateBookingRequest) (*entity.Booking, entity.BookingStatus, *entity.Service, *entity.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		current, err := s.repo.Booking.FindByID(ctx, id)
		if err != nil {
			return nil, "", nil, nil, toAppError(err, "Booking not found")
		}
		if current == nil {
			return nil, "", nil, nil, apperror.NotFound("Booking not found")
		}

		targetStaff, targetDate, err := updateTarget(current, req)
		if err != nil {
			return nil, "", nil, nil, err
		}
		days := []staffDay{
			{staffID: current.StaffID, date: current.Date},
			{staffID: targetStaff, date: targetDate},
		}

		var (
			updated  *entity.Booking
			previous entity.BookingStatus
			service  *entity.Service
			staff    *entity.Staff
		)
		err = s.withStaffDays(ctx, days, func(ctx context.Context) error {
			fresh, err := s.repo.Booking.FindByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if fresh == nil {
				return apperror.NotFound("Booking not found")
			}
			if fresh.StaffID != current.StaffID || !fresh.Date.Equal(current.Date) {
				return errBookingMoved
			}

			next := *fresh
			rescheduled, err := applyUpdate(&next, req)
			if err != nil {
				return err
			}
			next.UpdatedAt = time.Now()

			if rescheduled && next.Status.IsActive() {
				service, staff, err = s.resolve(ctx, next.ServiceID, next.StaffID)
				if err != nil {
					return err
				}
				start, _ := next.StartMinutes()
				if err := checkBookable(service, staff, next.Date, start); err != nil {
					return err
				}
				if err := s.ensureFree(ctx, next.StaffID, next.Date, start, service.Duration, &next.ID); err != nil {
					return err
				}
				next.ServiceName = service.Name
				next.StaffName = staff.Name
			}

			if err := s.repo.Booking.Update(ctx, &next); err != nil {
				return err
			}
			updated = &next
			previous = fresh.Status
			return nil
		})
		if errors.Is(err, errBookingMoved) {
			s.log.Debug("Booking moved while updating, retrying", zap.String("booking_id", id.String()))
			continue
		}
		if err != nil {
			return nil, "", nil, nil, s.writeFailed("update booking", err)
		}
		return updated, previous, service, staff, nil
	}

	return nil, "", nil, nil, apperror.Transient("Booking was changed by another request, please retry", errBookingMoved)
}

// updateTarget is the staff member and day the booking will occupy once
// req is applied to current.
func updateTarget(current *entity.Booking, req *request.UpdateBookingRequest) (uuid.UUID, time.Time, error) {
	staffID, date := current.StaffID, current.Date
	if req.StaffID != nil {
		staffID = uuid.MustParse(*req.StaffID)
	}
	if req.Date != nil {
		parsed, err := entity.ParseDate(*req.Date)
		if err != nil {
			return uuid.Nil, time.Time{}, apperror.InvalidField("date", "Valid date is required")
		}
		date = parsed
	}
	return staffID, date, nil
}

// applyUpdate copies the set fields of req onto b. It reports whether the
// booking moved in time, staff or service.
func applyUpdate(b *entity.Booking, req *request.UpdateBookingRequest) (bool, error) {
	rescheduled := false

	if req.ServiceID != nil {
		id := uuid.MustParse(*req.ServiceID)
		rescheduled = rescheduled || id != b.ServiceID
		b.ServiceID = id
	}
	if req.StaffID != nil {
		id := uuid.MustParse(*req.StaffID)
		rescheduled = rescheduled || id != b.StaffID
		b.StaffID = id
	}
	if req.Date != nil {
		date, err := entity.ParseDate(*req.Date)
		if err != nil {
			return false, apperror.InvalidField("date", "Valid date is required")
		}
		rescheduled = rescheduled || !date.Equal(b.Date)
		b.Date = date
	}
	if req.Time != nil {
		rescheduled = rescheduled || *req.Time != b.Time
		b.Time = *req.Time
	}
	if req.CustomerName != nil {
		b.CustomerName = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		b.CustomerEmail = *req.CustomerEmail
	}
	if req.CustomerPhone != nil {
		b.CustomerPhone = *req.CustomerPhone
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}
	if req.PaymentStatus != nil {
		b.PaymentStatus = entity.PaymentStatus(*req.PaymentStatus)
	}
	if req.Status != nil {
		next := entity.BookingStatus(*req.Status)
		if !b.Status.CanTransitionTo(next) {
			return false, apperror.InvalidTransition("Cannot change booking status from " + string(b.Status) + " to " + string(next))
		}
		b.Status = next
	}

	return rescheduled, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	id, err := parseBookingID(bookingID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		return toAppError(err, "Booking not found")
	}

	s.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (s *bookingService) AvailableSlots(ctx context.Context, req *request.AvailableSlotsRequest) ([]response.SlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation(errs...)
	}

	staffID := uuid.MustParse(req.StaffID)
	date, err := entity.ParseDate(req.Date)
	if err != nil {
		return nil, apperror.InvalidField("date", "Valid date is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	slots, err := s.slots.GenerateSlots(ctx, staffID, date, req.Duration)
	if err != nil {
		return nil, toAppError(err, "Staff member not found")
	}

	resp := make([]response.SlotResponse, len(slots))
	for i, slot := range slots {
		resp[i] = response.SlotResponse{
			Time:      slot.Time,
			Available: slot.Available,
			StaffID:   slot.StaffID.String(),
		}
	}
	return resp, nil
}

// resolve loads the service and staff a booking refers to.
func (s *bookingService) resolve(ctx context.Context, serviceID, staffID uuid.UUID) (*entity.Service, *entity.Staff, error) {
	service, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil {
		return nil, nil, toAppError(err, "Service not found")
	}
	if service == nil {
		return nil, nil, apperror.NotFound("Service not found")
	}

	staff, err := s.repo.Staff.FindByID(ctx, staffID)
	if err != nil {
		return nil, nil, toAppError(err, "Staff member not found")
	}
	if staff == nil {
		return nil, nil, apperror.NotFound("Staff member not found")
	}

	return service, staff, nil
}

// checkBookable enforces the catalog and working-hours rules for a slot.
func checkBookable(service *entity.Service, staff *entity.Staff, date time.Time, start int) error {
	var fields []apperror.FieldError

	if !service.IsActive {
		fields = append(fields, apperror.FieldError{Field: "serviceId", Message: "Service is not available for booking"})
	}
	if !staff.IsActive {
		fields = append(fields, apperror.FieldError{Field: "staffId", Message: "Staff member is not available for booking"})
	} else if !staff.Offers(service.ID) {
		fields = append(fields, apperror.FieldError{Field: "staffId", Message: "Staff member does not offer this service"})
	}
	if !staff.WorkingHours.Covers(date, start, service.Duration) {
		fields = append(fields, apperror.FieldError{Field: "time", Message: "Time is outside the staff member's working hours"})
	}

	if len(fields) > 0 {
		return apperror.Validation(fields...)
	}
	return nil
}

type staffDay struct {
	staffID uuid.UUID
	date    time.Time
}

func (d staffDay) key() string {
	return scheduling.LockKey(d.staffID, d.date)
}

// withStaffDay runs fn in a transaction while holding both the
// configured lock and the database advisory lock for (staffID, date).
func (s *bookingService) withStaffDay(ctx context.Context, staffID uuid.UUID, date time.Time, fn func(ctx context.Context) error) error {
	return s.withStaffDays(ctx, []staffDay{{staffID: staffID, date: date}}, fn)
}

// withStaffDays is withStaffDay for several days. Keys are taken in
// sorted order so two callers locking the same pair cannot deadlock.
func (s *bookingService) withStaffDays(ctx context.Context, days []staffDay, fn func(ctx context.Context) error) error {
	byKey := make(map[string]staffDay, len(days))
	for _, d := range days {
		byKey[d.key()] = d
	}
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	waitStart := time.Now()

	var hold func(ctx context.Context, i int) error
	hold = func(ctx context.Context, i int) error {
		if i < len(keys) {
			return s.locker.WithLock(ctx, keys[i], func(ctx context.Context) error {
				return hold(ctx, i+1)
			})
		}

		s.metrics.LockWait.Observe(time.Since(waitStart).Seconds())

		return s.repo.Tx.RunInTx(ctx, func(ctx context.Context) error {
			for _, k := range keys {
				d := byKey[k]
				if err := s.repo.Booking.LockStaffDay(ctx, d.staffID, d.date); err != nil {
					return err
				}
			}
			return fn(ctx)
		})
	}

	return hold(ctx, 0)
}

func (s *bookingService) ensureFree(ctx context.Context, staffID uuid.UUID, date time.Time, start, duration int, excludeID *uuid.UUID) error {
	conflict, err := s.conflicts.HasConflict(ctx, staffID, date, start, duration, excludeID)
	if err != nil {
		return err
	}
	if conflict {
		s.metrics.SlotConflicts.Inc()
		return apperror.SlotConflict("Time slot already booked")
	}
	return nil
}

func (s *bookingService) writeFailed(operation string, err error) error {
	appErr := toAppError(err, "Booking not found")
	switch appErr.Kind {
	case apperror.KindSlotConflict:
		s.log.Warn(operation+" rejected - slot taken")
	case apperror.KindTransient:
		s.log.Warn(operation+" failed - transient", zap.Error(err))
	case apperror.KindInternal:
		s.log.Error("Failed to "+operation, zap.Error(err))
	}
	return appErr
}

// notifyUpdate sends the status change email, loading the service and
// staff first when the update did not need them.
func (s *bookingService) notifyUpdate(ctx context.Context, booking *entity.Booking, service *entity.Service, staff *entity.Staff) {
	if service == nil || staff == nil {
		lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		var err error
		service, staff, err = s.resolve(lookupCtx, booking.ServiceID, booking.StaffID)
		if err != nil {
			s.log.Warn("Skipping update email",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
			return
		}
	}

	msg := notification.BookingEmail{Booking: booking, Service: service, Staff: staff}
	s.notify(ctx, "update", s.notifier.SendBookingUpdate, msg)
}

// notify sends one booking email and reports whether it went out.
func (s *bookingService) notify(
	ctx context.Context,
	kind string,
	send func(context.Context, notification.BookingEmail) error,
	msg notification.BookingEmail,
) bool {
	err := send(ctx, msg)
	recordEmail(s.metrics, kind, err)
	if err != nil {
		s.log.Warn("Failed to send "+kind+" email",
			zap.Error(err),
			zap.String("booking_id", msg.Booking.ID.String()),
		)
		return false
	}
	return true
}

func recordEmail(m *metrics.Metrics, kind string, err error) {
	result := "sent"
	if err != nil {
		result = "failed"
	}
	m.EmailsSent.WithLabelValues(kind, result).Inc()
}

func parseBookingID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.InvalidField("id", "Must be a valid ID")
	}
	return id, nil
}

package usecase

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/request"
	"salon-booking/internal/scheduling"
	"salon-booking/pkg/apperror"
	"salon-booking/pkg/metrics"
	"salon-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testMonday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

type fixture struct {
	svc      BookingService
	bookings *fakeBookingRepo
	services *fakeServiceRepo
	staff    *fakeStaffRepo
	notifier *fakeNotifier
	metrics  *metrics.Metrics
	repo     *repository.Repository

	cut     *entity.Service
	stylist *entity.Staff
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cut := &entity.Service{
		Base:     entity.Base{ID: uuid.New()},
		Name:     "Signature Cut & Style",
		Duration: 60,
		Price:    125,
		Category: entity.CategoryHairDesign,
		IsActive: true,
	}
	stylist := &entity.Staff{
		Base:         entity.Base{ID: uuid.New()},
		Name:         "Isabella Martinez",
		WorkingHours: entity.StandardCalendar("09:00", "18:00"),
		IsActive:     true,
	}

	f := &fixture{
		bookings: newFakeBookingRepo(),
		services: &fakeServiceRepo{services: map[uuid.UUID]*entity.Service{cut.ID: cut}},
		staff:    &fakeStaffRepo{staff: map[uuid.UUID]*entity.Staff{stylist.ID: stylist}},
		notifier: &fakeNotifier{},
		metrics:  metrics.New("test", prometheus.NewRegistry()),
		cut:      cut,
		stylist:  stylist,
	}
	f.repo = &repository.Repository{
		Service: f.services,
		Staff:   f.staff,
		Booking: f.bookings,
		Tx:      inlineTx{},
	}
	f.svc = f.build(time.Second)
	return f
}

func (f *fixture) build(timeout time.Duration) BookingService {
	config := utils.SchedulingConfig{
		SlotStepMinutes:         30,
		ConflictDurationMinutes: 60,
		DefaultSlotDuration:     60,
		StorageTimeout:          timeout,
	}
	opts := Options{
		Locker:   scheduling.NewLocalLocker(),
		Notifier: f.notifier,
		Clock:    scheduling.FixedClock(testMonday.Add(-24 * time.Hour)),
		Metrics:  f.metrics,
	}
	return NewBookingService(f.repo, config, opts, zap.NewNop())
}

func (f *fixture) createRequest(at string) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		ServiceID:     f.cut.ID.String(),
		StaffID:       f.stylist.ID.String(),
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+1 555 0100",
		Date:          "2025-06-02",
		Time:          at,
	}
}

func requireKind(t *testing.T, err error, kind apperror.Kind) *apperror.Error {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr), "expected *apperror.Error, got %T: %v", err, err)
	require.Equal(t, kind, appErr.Kind, appErr.Error())
	return appErr
}

func TestCreateBooking_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.CreateBooking(context.Background(), f.createRequest("10:00"))
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusPending, resp.Status)
	assert.Equal(t, entity.PaymentStatusPending, resp.PaymentStatus)
	assert.Equal(t, 125.0, resp.TotalPrice)
	assert.Equal(t, "2025-06-02", resp.Date)
	assert.Equal(t, "10:00", resp.Time)
	assert.Equal(t, "Signature Cut & Style", resp.ServiceName)
	assert.True(t, resp.ConfirmationSent)

	require.Len(t, f.notifier.confirmations, 1)
	assert.Equal(t, "Isabella Martinez", f.notifier.confirmations[0].Staff.Name)
	assert.Len(t, f.bookings.marked, 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.BookingsCreated))
}

func TestCreateBooking_ValidationShortCircuits(t *testing.T) {
	f := newFixture(t)
	f.repo.Service = &slowServiceRepo{}

	req := f.createRequest("10:00")
	req.CustomerEmail = "not-an-email"
	req.Time = "10am"

	_, err := f.svc.CreateBooking(context.Background(), req)

	appErr := requireKind(t, err, apperror.KindValidation)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, []apperror.FieldError{
		{Field: "customerEmail", Message: "Valid email is required"},
		{Field: "time", Message: "Valid time is required (HH:MM)"},
	}, appErr.Fields)
}

func TestCreateBooking_NotFound(t *testing.T) {
	f := newFixture(t)

	req := f.createRequest("10:00")
	req.ServiceID = uuid.NewString()
	_, err := f.svc.CreateBooking(context.Background(), req)
	assert.Equal(t, "Service not found", requireKind(t, err, apperror.KindNotFound).Message)

	req = f.createRequest("10:00")
	req.StaffID = uuid.NewString()
	_, err = f.svc.CreateBooking(context.Background(), req)
	assert.Equal(t, "Staff member not found", requireKind(t, err, apperror.KindNotFound).Message)
}

func TestCreateBooking_OutsideWorkingHours(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateBooking(context.Background(), f.createRequest("17:30"))
	appErr := requireKind(t, err, apperror.KindValidation)
	assert.Equal(t, "time", appErr.Fields[0].Field)

	req := f.createRequest("10:00")
	req.Date = "2025-06-01"
	_, err = f.svc.CreateBooking(context.Background(), req)
	requireKind(t, err, apperror.KindValidation)
}

func TestCreateBooking_InactiveOrUnofferedService(t *testing.T) {
	f := newFixture(t)
	f.stylist.ServiceIDs = []uuid.UUID{uuid.New()}

	_, err := f.svc.CreateBooking(context.Background(), f.createRequest("10:00"))
	appErr := requireKind(t, err, apperror.KindValidation)
	assert.Equal(t, "staffId", appErr.Fields[0].Field)

	f.stylist.ServiceIDs = nil
	f.cut.IsActive = false
	_, err = f.svc.CreateBooking(context.Background(), f.createRequest("10:00"))
	appErr = requireKind(t, err, apperror.KindValidation)
	assert.Equal(t, "serviceId", appErr.Fields[0].Field)
}

func TestCreateBooking_SlotConflict(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateBooking(context.Background(), f.createRequest("10:00"))
	require.NoError(t, err)

	_, err = f.svc.CreateBooking(context.Background(), f.createRequest("10:30"))
	assert.Equal(t, http.StatusConflict, requireKind(t, err, apperror.KindSlotConflict).Status)

	_, err = f.svc.CreateBooking(context.Background(), f.createRequest("11:00"))
	require.NoError(t, err, "adjacent booking must not conflict")

	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.SlotConflicts))
}

func TestCreateBooking_ConcurrentRequestsForSameSlot(t *testing.T) {
	f := newFixture(t)

	const attempts = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.CreateBooking(context.Background(), f.createRequest("14:00"))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case apperror.Is(err, apperror.KindSlotConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, conflicts)
	assert.Equal(t, 1, f.bookings.active(f.stylist.ID, testMonday))
}

func TestCreateBooking_CancelThenRebook(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreateBooking(ctx, f.createRequest("15:00"))
	require.NoError(t, err)

	cancelled := string(entity.BookingStatusCancelled)
	_, err = f.svc.UpdateBooking(ctx, first.ID, &request.UpdateBookingRequest{Status: &cancelled})
	require.NoError(t, err)

	second, err := f.svc.CreateBooking(ctx, f.createRequest("15:00"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateBooking_PriceIsSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.CreateBooking(ctx, f.createRequest("09:00"))
	require.NoError(t, err)

	f.cut.Price = 999
	confirmed := string(entity.BookingStatusConfirmed)
	_, err = f.svc.UpdateBooking(ctx, resp.ID, &request.UpdateBookingRequest{Status: &confirmed})
	require.NoError(t, err)

	stored, err := f.bookings.FindByID(ctx, uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, 125.0, stored.TotalPrice)
}

func TestCreateBooking_EmailFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("smtp down")

	resp, err := f.svc.CreateBooking(context.Background(), f.createRequest("10:00"))
	require.NoError(t, err)

	assert.False(t, resp.ConfirmationSent)
	assert.Empty(t, f.bookings.marked)
	assert.Equal(t, 1, f.bookings.active(f.stylist.ID, testMonday))
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.EmailsSent.WithLabelValues("confirmation", "failed")))
}

func TestCreateBooking_StorageTimeoutIsTransient(t *testing.T) {
	f := newFixture(t)
	f.repo.Service = &slowServiceRepo{}
	svc := f.build(20 * time.Millisecond)

	_, err := svc.CreateBooking(context.Background(), f.createRequest("10:00"))

	appErr := requireKind(t, err, apperror.KindTransient)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Status)
	assert.True(t, appErr.Retryable())
	assert.Equal(t, 0, f.bookings.active(f.stylist.ID, testMonday))
}

func TestCreateBooking_LockBackendDownIsTransient(t *testing.T) {
	f := newFixture(t)
	config := utils.SchedulingConfig{
		SlotStepMinutes:         30,
		ConflictDurationMinutes: 60,
		DefaultSlotDuration:     60,
		StorageTimeout:          time.Second,
	}
	svc := NewBookingService(f.repo, config, Options{
		Locker:   downLocker{},
		Notifier: f.notifier,
		Clock:    scheduling.FixedClock(testMonday.Add(-24 * time.Hour)),
		Metrics:  f.metrics,
	}, zap.NewNop())

	_, err := svc.CreateBooking(context.Background(), f.createRequest("10:00"))

	appErr := requireKind(t, err, apperror.KindTransient)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Status)
	assert.Equal(t, 0, f.bookings.active(f.stylist.ID, testMonday))
}

func TestUpdateBooking_StatusTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateBooking(ctx, f.createRequest("10:00"))
	require.NoError(t, err)

	completed := string(entity.BookingStatusCompleted)
	_, err = f.svc.UpdateBooking(ctx, created.ID, &request.UpdateBookingRequest{Status: &completed})
	requireKind(t, err, apperror.KindInvalidTransition)

	confirmed := string(entity.BookingStatusConfirmed)
	resp, err := f.svc.UpdateBooking(ctx, created.ID, &request.UpdateBookingRequest{Status: &confirmed})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	require.Len(t, f.notifier.updates, 1)

	resp, err = f.svc.UpdateBooking(ctx, created.ID, &request.UpdateBookingRequest{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCompleted, resp.Status)
	assert.Len(t, f.notifier.updates, 1, "completed does not notify")

	cancelled := string(entity.BookingStatusCancelled)
	_, err = f.svc.UpdateBooking(ctx, created.ID, &request.UpdateBookingRequest{Status: &cancelled})
	requireKind(t, err, apperror.KindInvalidTransition)
}

func TestUpdateBooking_ReschedulingChecksConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	morning, err := f.svc.CreateBooking(ctx, f.createRequest("09:00"))
	require.NoError(t, err)
	_, err = f.svc.CreateBooking(ctx, f.createRequest("11:00"))
	require.NoError(t, err)

	clash := "11:30"
	_, err = f.svc.UpdateBooking(ctx, morning.ID, &request.UpdateBookingRequest{Time: &clash})
	requireKind(t, err, apperror.KindSlotConflict)

	// overlapping only its own old slot is fine
	shifted := "09:30"
	resp, err := f.svc.UpdateBooking(ctx, morning.ID, &request.UpdateBookingRequest{Time: &shifted})
	require.NoError(t, err)
	assert.Equal(t, "09:30", resp.Time)

	late := "17:30"
	_, err = f.svc.UpdateBooking(ctx, morning.ID, &request.UpdateBookingRequest{Time: &late})
	requireKind(t, err, apperror.KindValidation)
}

func TestUpdateBooking_FieldEdits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateBooking(ctx, f.createRequest("10:00"))
	require.NoError(t, err)

	notes := "Prefers a window seat"
	paid := string(entity.PaymentStatusPaid)
	resp, err := f.svc.UpdateBooking(ctx, created.ID, &request.UpdateBookingRequest{Notes: &notes, PaymentStatus: &paid})
	require.NoError(t, err)

	assert.Equal(t, notes, resp.Notes)
	assert.Equal(t, entity.PaymentStatusPaid, resp.PaymentStatus)
	assert.Empty(t, f.notifier.updates)
}

func TestUpdateBooking_NotFound(t *testing.T) {
	f := newFixture(t)
	notes := "x"

	_, err := f.svc.UpdateBooking(context.Background(), uuid.NewString(), &request.UpdateBookingRequest{Notes: &notes})
	requireKind(t, err, apperror.KindNotFound)

	_, err = f.svc.UpdateBooking(context.Background(), "nope", &request.UpdateBookingRequest{Notes: &notes})
	requireKind(t, err, apperror.KindValidation)
}

func TestDeleteBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateBooking(ctx, f.createRequest("10:00"))
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteBooking(ctx, created.ID))
	requireKind(t, f.svc.DeleteBooking(ctx, created.ID), apperror.KindNotFound)

	_, err = f.svc.GetBooking(ctx, created.ID)
	requireKind(t, err, apperror.KindNotFound)
}

func TestGetStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.svc.CreateBooking(ctx, f.createRequest("09:00"))
	require.NoError(t, err)
	_, err = f.svc.CreateBooking(ctx, f.createRequest("11:00"))
	require.NoError(t, err)

	confirmed := string(entity.BookingStatusConfirmed)
	_, err = f.svc.UpdateBooking(ctx, a.ID, &request.UpdateBookingRequest{Status: &confirmed})
	require.NoError(t, err)

	stats, err := f.svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalBookings)
	assert.Equal(t, int64(1), stats.PendingBookings)
	assert.Equal(t, int64(1), stats.ConfirmedBookings)
	assert.Equal(t, 125.0, stats.Revenue)
	assert.True(t, testMonday.AddDate(0, 0, -1).Equal(f.bookings.lastDay))
}

func TestListBookings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, at := range []string{"13:00", "09:00"} {
		_, err := f.svc.CreateBooking(ctx, f.createRequest(at))
		require.NoError(t, err)
	}

	resp, err := f.svc.ListBookings(ctx, &request.ListBookingsRequest{Page: 1, Limit: 50, Date: "all"})
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, "09:00", resp.Bookings[0].Time)

	_, err = f.svc.ListBookings(ctx, &request.ListBookingsRequest{Page: 1, Limit: 50, Date: "someday"})
	requireKind(t, err, apperror.KindValidation)
}

func TestListBookings_StatusFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	kept, err := f.svc.CreateBooking(ctx, f.createRequest("09:00"))
	require.NoError(t, err)
	dropped, err := f.svc.CreateBooking(ctx, f.createRequest("13:00"))
	require.NoError(t, err)

	cancelled := string(entity.BookingStatusCancelled)
	_, err = f.svc.UpdateBooking(ctx, dropped.ID, &request.UpdateBookingRequest{Status: &cancelled})
	require.NoError(t, err)

	tests := []struct {
		status string
		want   []string
	}{
		{status: "", want: []string{kept.ID, dropped.ID}},
		{status: "all", want: []string{kept.ID, dropped.ID}},
		{status: "pending", want: []string{kept.ID}},
		{status: "cancelled", want: []string{dropped.ID}},
		{status: "confirmed", want: nil},
	}
	for _, tt := range tests {
		t.Run("status="+tt.status, func(t *testing.T) {
			resp, err := f.svc.ListBookings(ctx, &request.ListBookingsRequest{Status: tt.status, Page: 1, Limit: 50})
			require.NoError(t, err)

			var got []string
			for _, b := range resp.Bookings {
				got = append(got, b.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	_, err = f.svc.ListBookings(ctx, &request.ListBookingsRequest{Status: "archived", Page: 1, Limit: 50})
	requireKind(t, err, apperror.KindValidation)
}

func TestAvailableSlots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateBooking(ctx, f.createRequest("10:00"))
	require.NoError(t, err)

	slots, err := f.svc.AvailableSlots(ctx, &request.AvailableSlotsRequest{
		StaffID:  f.stylist.ID.String(),
		Date:     "2025-06-02",
		Duration: 60,
	})
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "11:00", slots[1].Time)
	assert.Equal(t, "17:00", slots[len(slots)-1].Time)
	assert.Equal(t, f.stylist.ID.String(), slots[0].StaffID)

	_, err = f.svc.AvailableSlots(ctx, &request.AvailableSlotsRequest{StaffID: uuid.NewString(), Date: "2025-06-02", Duration: 60})
	requireKind(t, err, apperror.KindNotFound)

	sunday, err := f.svc.AvailableSlots(ctx, &request.AvailableSlotsRequest{StaffID: f.stylist.ID.String(), Date: "2025-06-01", Duration: 60})
	require.NoError(t, err)
	assert.Empty(t, sunday)
}

// gateUpdates pauses the first Update whose status is status until the
// returned release func is called.
func gateUpdates(f *fixture, status entity.BookingStatus) (entered <-chan struct{}, release func()) {
	in := make(chan struct{})
	out := make(chan struct{})
	var once sync.Once

	f.bookings.beforeUpdate = func(b entity.Booking) {
		if b.Status != status {
			return
		}
		once.Do(func() {
			close(in)
			<-out
		})
	}
	return in, func() { close(out) }
}

func TestUpdateBooking_SlowConfirmDoesNotUndoReschedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreateBooking(ctx, f.createRequest("10:00"))
	require.NoError(t, err)

	entered, release := gateUpdates(f, entity.BookingStatusConfirmed)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		confirmed := string(entity.BookingStatusConfirmed)
		_, err := f.svc.UpdateBooking(ctx, first.ID, &request.UpdateBookingRequest{Status: &confirmed})
		assert.NoError(t, err)
	}()
	<-entered

	// both have to wait for the confirm to finish
	var rescheduleErr, createErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		later := "14:00"
		_, rescheduleErr = f.svc.UpdateBooking(ctx, first.ID, &request.UpdateBookingRequest{Time: &later})
	}()
	go func() {
		defer wg.Done()
		_, createErr = f.svc.CreateBooking(ctx, f.createRequest("10:00"))
	}()

	time.Sleep(50 * time.Millisecond)
	release()
	wg.Wait()

	require.NoError(t, rescheduleErr)
	if createErr != nil {
		requireKind(t, createErr, apperror.KindSlotConflict)
	}

	stored, err := f.bookings.FindByID(ctx, uuid.MustParse(first.ID))
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, stored.Status)
	assert.Equal(t, "14:00", stored.Time)

	for at, n := range f.bookings.activeAt(f.stylist.ID, testMonday) {
		assert.Equal(t, 1, n, "staff double-booked at %s", at)
	}
}

func TestUpdateBooking_CancelIsNotUndoneByConcurrentConfirm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateBooking(ctx, f.createRequest("10:00"))
	require.NoError(t, err)

	entered, release := gateUpdates(f, entity.BookingStatusCancelled)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		cancelled := string(entity.BookingStatusCancelled)
		_, err := f.svc.UpdateBooking(ctx, created.ID, &request.UpdateBookingRequest{Status: &cancelled})
		assert.NoError(t, err)
	}()
	<-entered

	var confirmErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		confirmed := string(entity.BookingStatusConfirmed)
		_, confirmErr = f.svc.UpdateBooking(ctx, created.ID, &request.UpdateBookingRequest{Status: &confirmed})
	}()

	time.Sleep(50 * time.Millisecond)
	release()
	wg.Wait()

	requireKind(t, confirmErr, apperror.KindInvalidTransition)

	stored, err := f.bookings.FindByID(ctx, uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, stored.Status)
}

func TestUpdateBooking_MoveToAnotherDayChecksTargetDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tuesday := "2025-06-03"

	monday, err := f.svc.CreateBooking(ctx, f.createRequest("10:00"))
	require.NoError(t, err)

	req := f.createRequest("10:00")
	req.Date = tuesday
	_, err = f.svc.CreateBooking(ctx, req)
	require.NoError(t, err)

	_, err = f.svc.UpdateBooking(ctx, monday.ID, &request.UpdateBookingRequest{Date: &tuesday})
	requireKind(t, err, apperror.KindSlotConflict)

	later := "13:00"
	resp, err := f.svc.UpdateBooking(ctx, monday.ID, &request.UpdateBookingRequest{Date: &tuesday, Time: &later})
	require.NoError(t, err)
	assert.Equal(t, tuesday, resp.Date)
	assert.Equal(t, 0, f.bookings.active(f.stylist.ID, testMonday))
}

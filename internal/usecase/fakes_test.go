package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/notification"
	"salon-booking/pkg/redislock"

	"github.com/google/uuid"
)

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
	marked   []uuid.UUID
	lastDay  time.Time

	// beforeUpdate runs ahead of every Update, outside the lock
	beforeUpdate func(b entity.Booking)
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}}
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBookingRepo) Update(ctx context.Context, b *entity.Booking) error {
	if r.beforeUpdate != nil {
		r.beforeUpdate(*b)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; !ok {
		return fmt.Errorf("update booking %s: %w", b.ID, repository.ErrNotFound)
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return fmt.Errorf("delete booking %s: %w", id, repository.ErrNotFound)
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) List(ctx context.Context, filter entity.BookingFilter) ([]*entity.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Booking
	for _, b := range r.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, int64(len(out)), nil
}

func (r *fakeBookingRepo) FindActiveByStaffAndDate(ctx context.Context, staffID uuid.UUID, date time.Time, excludeID *uuid.UUID) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.StaffID != staffID || !b.Date.Equal(date) || !b.Status.IsActive() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeBookingRepo) Stats(ctx context.Context, today time.Time) (*entity.BookingStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastDay = today
	var s entity.BookingStats
	for _, b := range r.bookings {
		s.TotalBookings++
		switch b.Status {
		case entity.BookingStatusPending:
			s.PendingBookings++
		case entity.BookingStatusConfirmed:
			s.ConfirmedBookings++
			s.Revenue += b.TotalPrice
		case entity.BookingStatusCompleted:
			s.Revenue += b.TotalPrice
		}
		if b.Date.Equal(today) {
			s.TodayBookings++
		}
	}
	return &s, nil
}

func (r *fakeBookingRepo) MarkConfirmationSent(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.ConfirmationSent = true
	r.marked = append(r.marked, id)
	return nil
}

func (r *fakeBookingRepo) LockStaffDay(ctx context.Context, staffID uuid.UUID, date time.Time) error {
	return nil
}

// activeAt counts active bookings per start time for staffID on date.
func (r *fakeBookingRepo) activeAt(staffID uuid.UUID, date time.Time) map[string]int {
	list, _ := r.FindActiveByStaffAndDate(context.Background(), staffID, date, nil)
	counts := map[string]int{}
	for _, b := range list {
		counts[b.Time]++
	}
	return counts
}

func (r *fakeBookingRepo) active(staffID uuid.UUID, date time.Time) int {
	list, _ := r.FindActiveByStaffAndDate(context.Background(), staffID, date, nil)
	return len(list)
}

type fakeServiceRepo struct {
	services map[uuid.UUID]*entity.Service
}

func (r *fakeServiceRepo) Create(ctx context.Context, s *entity.Service) error {
	r.services[s.ID] = s
	return nil
}

func (r *fakeServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) List(ctx context.Context, filter entity.ServiceFilter) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range r.services {
		if filter.Category != nil && s.Category != *filter.Category {
			continue
		}
		if filter.IsActive != nil && s.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// slowServiceRepo blocks until the caller's deadline passes.
type slowServiceRepo struct {
	fakeServiceRepo
}

func (r *slowServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	<-ctx.Done()
	return nil, fmt.Errorf("find service by ID %s: %w", id, ctx.Err())
}

type fakeStaffRepo struct {
	staff map[uuid.UUID]*entity.Staff
}

func (r *fakeStaffRepo) Create(ctx context.Context, s *entity.Staff) error {
	r.staff[s.ID] = s
	return nil
}

func (r *fakeStaffRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStaffRepo) List(ctx context.Context, filter entity.StaffFilter) ([]*entity.Staff, error) {
	var out []*entity.Staff
	for _, s := range r.staff {
		if filter.ServiceID != nil && !s.Offers(*filter.ServiceID) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type inlineTx struct{}

func (inlineTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	mu            sync.Mutex
	confirmations []notification.BookingEmail
	updates       []notification.BookingEmail
	tests         []string
	err           error
}

func (n *fakeNotifier) SendBookingConfirmation(ctx context.Context, msg notification.BookingEmail) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.confirmations = append(n.confirmations, msg)
	return nil
}

func (n *fakeNotifier) SendBookingUpdate(ctx context.Context, msg notification.BookingEmail) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.updates = append(n.updates, msg)
	return nil
}

func (n *fakeNotifier) SendTest(ctx context.Context, to string) error {
	if n.err != nil {
		return n.err
	}
	n.tests = append(n.tests, to)
	return nil
}

// downLocker fails every acquisition the way redislock does when Redis is
// unreachable.
type downLocker struct{}

func (downLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	return fmt.Errorf("acquire lock %s: %w: dial tcp: connection refused", key, redislock.ErrUnavailable)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/database"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	// FindByIDForUpdate is FindByID plus a row lock held until the
	// surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	List(ctx context.Context, filter entity.BookingFilter) ([]*entity.Booking, int64, error)
	FindActiveByStaffAndDate(ctx context.Context, staffID uuid.UUID, date time.Time, excludeID *uuid.UUID) ([]*entity.Booking, error)
	Stats(ctx context.Context, today time.Time) (*entity.BookingStats, error)
	MarkConfirmationSent(ctx context.Context, id uuid.UUID) error

	// LockStaffDay blocks until the caller's transaction holds the
	// (staff, date) advisory lock. It must run inside RunInTx.
	LockStaffDay(ctx context.Context, staffID uuid.UUID, date time.Time) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

var bookingColumns = []string{
	"b.id", "b.service_id", "b.staff_id",
	"b.customer_name", "b.customer_email", "b.customer_phone",
	"b.date", "b.time", "b.status", "b.payment_status", "b.total_price", "b.notes",
	"b.confirmation_sent", "b.reminder_sent", "b.created_at", "b.updated_at",
	"COALESCE(s.name, '')", "COALESCE(st.name, '')",
}

func selectBookings() squirrel.SelectBuilder {
	return psql.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("services s ON s.id = b.service_id").
		LeftJoin("staff st ON st.id = b.staff_id")
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.ServiceID,
		&b.StaffID,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.Date,
		&b.Time,
		&b.Status,
		&b.PaymentStatus,
		&b.TotalPrice,
		&b.Notes,
		&b.ConfirmationSent,
		&b.ReminderSent,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.ServiceName,
		&b.StaffName,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query, args, err := psql.Insert("bookings").
		Columns(
			"id", "service_id", "staff_id",
			"customer_name", "customer_email", "customer_phone",
			"date", "time", "status", "payment_status", "total_price", "notes",
			"confirmation_sent", "reminder_sent", "created_at", "updated_at",
		).
		Values(
			booking.ID,
			booking.ServiceID,
			booking.StaffID,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.Date,
			booking.Time,
			booking.Status,
			booking.PaymentStatus,
			booking.TotalPrice,
			booking.Notes,
			booking.ConfirmationSent,
			booking.ReminderSent,
			booking.CreatedAt,
			booking.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert booking: %w", err)
	}

	if _, err := database.GetExecutor(ctx, r.db).Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("staff_id", booking.StaffID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.findOne(ctx, selectBookings().Where("b.id = ?", id), id)
}

func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	// the joined tables are nullable, so only the booking row is locked
	return r.findOne(ctx, findBookingForUpdate(id), id)
}

func findBookingForUpdate(id uuid.UUID) squirrel.SelectBuilder {
	return selectBookings().Where("b.id = ?", id).Suffix("FOR UPDATE OF b")
}

func (r *bookingRepository) findOne(ctx context.Context, q squirrel.SelectBuilder, id uuid.UUID) (*entity.Booking, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find booking: %w", err)
	}

	booking, err := scanBooking(database.GetExecutor(ctx, r.db).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return booking, nil
}

// Update writes every mutable column. total_price is never touched.
func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query, args, err := psql.Update("bookings").
		SetMap(map[string]any{
			"service_id":        booking.ServiceID,
			"staff_id":          booking.StaffID,
			"customer_name":     booking.CustomerName,
			"customer_email":    booking.CustomerEmail,
			"customer_phone":    booking.CustomerPhone,
			"date":              booking.Date,
			"time":              booking.Time,
			"status":            booking.Status,
			"payment_status":    booking.PaymentStatus,
			"notes":             booking.Notes,
			"confirmation_sent": booking.ConfirmationSent,
			"reminder_sent":     booking.ReminderSent,
			"updated_at":        booking.UpdatedAt,
		}).
		Where("id = ?", booking.ID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking: %w", err)
	}

	result, err := database.GetExecutor(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update booking %s: %w", booking.ID, ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := database.GetExecutor(ctx, r.db).Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete booking %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) List(ctx context.Context, filter entity.BookingFilter) ([]*entity.Booking, int64, error) {
	listQuery, countQuery := buildBookingListQueries(filter)
	exec := database.GetExecutor(ctx, r.db)

	query, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count bookings: %w", err)
	}

	var total int64
	if err := exec.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	query, args, err = listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings: %w", err)
	}

	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("page", filter.Page),
			zap.Int("limit", filter.PageSize()),
		)
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []*entity.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, 0, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, total, nil
}

// buildBookingListQueries returns the page query and the matching count query.
func buildBookingListQueries(filter entity.BookingFilter) (squirrel.SelectBuilder, squirrel.SelectBuilder) {
	conds := squirrel.And{}

	if filter.Status != nil {
		conds = append(conds, squirrel.Eq{"b.status": string(*filter.Status)})
	}

	switch filter.DateRange {
	case entity.DateRangeToday:
		conds = append(conds, squirrel.Expr("b.date = ?", filter.Today))
	case entity.DateRangeUpcoming:
		conds = append(conds, squirrel.Expr("b.date >= ?", filter.Today))
	case entity.DateRangePast:
		conds = append(conds, squirrel.Expr("b.date < ?", filter.Today))
	}

	if filter.StaffID != nil {
		conds = append(conds, squirrel.Expr("b.staff_id = ?", *filter.StaffID))
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		conds = append(conds, squirrel.Or{
			squirrel.ILike{"b.customer_name": pattern},
			squirrel.ILike{"b.customer_email": pattern},
			squirrel.ILike{"b.customer_phone": pattern},
		})
	}

	list := selectBookings().
		OrderBy("b.date ASC", "b.time ASC").
		Limit(uint64(filter.PageSize())).
		Offset(uint64(filter.Offset()))
	count := psql.Select("COUNT(*)").From("bookings b")

	if len(conds) > 0 {
		list = list.Where(conds)
		count = count.Where(conds)
	}

	return list, count
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *bookingRepository) FindActiveByStaffAndDate(ctx context.Context, staffID uuid.UUID, date time.Time, excludeID *uuid.UUID) ([]*entity.Booking, error) {
	q := selectBookings().
		Where("b.staff_id = ?", staffID).
		Where("b.date = ?", date).
		Where(squirrel.Eq{"b.status": activeStatusValues()}).
		OrderBy("b.time ASC")
	if excludeID != nil {
		q = q.Where("b.id <> ?", *excludeID)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build active bookings: %w", err)
	}

	rows, err := database.GetExecutor(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find active bookings",
			zap.Error(err),
			zap.String("staff_id", staffID.String()),
			zap.String("date", entity.FormatDate(date)),
		)
		return nil, fmt.Errorf("find active bookings for staff %s on %s: %w", staffID, entity.FormatDate(date), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func activeStatusValues() []string {
	values := make([]string, len(entity.ActiveStatuses))
	for i, s := range entity.ActiveStatuses {
		values[i] = string(s)
	}
	return values
}

func (r *bookingRepository) Stats(ctx context.Context, today time.Time) (*entity.BookingStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'confirmed'),
			COUNT(*) FILTER (WHERE date = $1),
			COALESCE(SUM(total_price) FILTER (WHERE status IN ('confirmed', 'completed')), 0)::float8
		FROM bookings
	`

	var stats entity.BookingStats
	err := database.GetExecutor(ctx, r.db).QueryRow(ctx, query, today).Scan(
		&stats.TotalBookings,
		&stats.PendingBookings,
		&stats.ConfirmedBookings,
		&stats.TodayBookings,
		&stats.Revenue,
	)
	if err != nil {
		r.log.Error("Failed to aggregate booking stats", zap.Error(err))
		return nil, fmt.Errorf("booking stats: %w", err)
	}

	return &stats, nil
}

func (r *bookingRepository) MarkConfirmationSent(ctx context.Context, id uuid.UUID) error {
	result, err := database.GetExecutor(ctx, r.db).Exec(ctx,
		`UPDATE bookings SET confirmation_sent = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to mark confirmation sent",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("mark confirmation sent %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("mark confirmation sent %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) LockStaffDay(ctx context.Context, staffID uuid.UUID, date time.Time) error {
	tx, ok := database.TxFromContext(ctx)
	if !ok {
		return errors.New("lock staff day: no transaction in context")
	}

	key := staffID.String() + "|" + entity.FormatDate(date)
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		r.log.Error("Failed to acquire staff-day lock",
			zap.Error(err),
			zap.String("key", key),
		)
		return fmt.Errorf("lock staff day %s: %w", key, err)
	}

	return nil
}

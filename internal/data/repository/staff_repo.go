package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/database"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error)
	List(ctx context.Context, filter entity.StaffFilter) ([]*entity.Staff, error)
}

type staffRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStaffRepository(db database.PgxIface, log *zap.Logger) StaffRepository {
	return &staffRepository{
		db:  db,
		log: log.With(zap.String("repository", "staff")),
	}
}

var staffColumns = []string{
	"id", "name", "title", "bio", "email", "phone", "image_url",
	"specialties", "service_ids::text[]", "working_hours", "is_active", "created_at", "updated_at",
}

func scanStaff(row pgx.Row) (*entity.Staff, error) {
	var (
		s          entity.Staff
		serviceIDs []string
		hours      []byte
	)
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Title,
		&s.Bio,
		&s.Email,
		&s.Phone,
		&s.ImageURL,
		&s.Specialties,
		&serviceIDs,
		&hours,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.ServiceIDs = make([]uuid.UUID, 0, len(serviceIDs))
	for _, raw := range serviceIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("staff %s service id %q: %w", s.ID, raw, err)
		}
		s.ServiceIDs = append(s.ServiceIDs, id)
	}

	if err := json.Unmarshal(hours, &s.WorkingHours); err != nil {
		return nil, fmt.Errorf("staff %s working hours: %w", s.ID, err)
	}

	return &s, nil
}

func (r *staffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	hours, err := json.Marshal(staff.WorkingHours)
	if err != nil {
		return fmt.Errorf("encode working hours: %w", err)
	}

	serviceIDs := make([]string, len(staff.ServiceIDs))
	for i, id := range staff.ServiceIDs {
		serviceIDs[i] = id.String()
	}

	specialties := staff.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	query, args, err := psql.Insert("staff").
		Columns(
			"id", "name", "title", "bio", "email", "phone", "image_url",
			"specialties", "service_ids", "working_hours", "is_active", "created_at", "updated_at",
		).
		Values(
			staff.ID,
			staff.Name,
			staff.Title,
			staff.Bio,
			staff.Email,
			staff.Phone,
			staff.ImageURL,
			specialties,
			squirrel.Expr("?::uuid[]", serviceIDs),
			string(hours),
			staff.IsActive,
			staff.CreatedAt,
			staff.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert staff: %w", err)
	}

	if _, err := database.GetExecutor(ctx, r.db).Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to create staff",
			zap.Error(err),
			zap.String("email", staff.Email),
		)
		return fmt.Errorf("create staff %s: %w", staff.Email, err)
	}

	return nil
}

func (r *staffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	query, args, err := psql.Select(staffColumns...).
		From("staff").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find staff: %w", err)
	}

	staff, err := scanStaff(database.GetExecutor(ctx, r.db).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find staff by ID",
			zap.Error(err),
			zap.String("staff_id", id.String()),
		)
		return nil, fmt.Errorf("find staff by ID %s: %w", id, err)
	}

	return staff, nil
}

func (r *staffRepository) List(ctx context.Context, filter entity.StaffFilter) ([]*entity.Staff, error) {
	query, args, err := buildStaffListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list staff: %w", err)
	}

	rows, err := database.GetExecutor(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list staff", zap.Error(err))
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	members := []*entity.Staff{}
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			r.log.Error("Failed to scan staff row", zap.Error(err))
			return nil, fmt.Errorf("scan staff row: %w", err)
		}
		members = append(members, staff)
	}

	return members, rows.Err()
}

func buildStaffListQuery(filter entity.StaffFilter) squirrel.SelectBuilder {
	q := psql.Select(staffColumns...).From("staff")
	if filter.ServiceID != nil {
		q = q.Where("? = ANY(service_ids)", *filter.ServiceID)
	}
	if filter.IsActive != nil {
		q = q.Where(squirrel.Eq{"is_active": *filter.IsActive})
	}
	return q.OrderBy("name")
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/database"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	List(ctx context.Context, filter entity.ServiceFilter) ([]*entity.Service, error)
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

var serviceColumns = []string{
	"id", "name", "description", "duration", "price", "category", "image_url", "is_active", "created_at", "updated_at",
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.Duration,
		&s.Price,
		&s.Category,
		&s.ImageURL,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	query, args, err := psql.Insert("services").
		Columns(serviceColumns...).
		Values(
			service.ID,
			service.Name,
			service.Description,
			service.Duration,
			service.Price,
			service.Category,
			service.ImageURL,
			service.IsActive,
			service.CreatedAt,
			service.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert service: %w", err)
	}

	if _, err := database.GetExecutor(ctx, r.db).Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("name", service.Name),
		)
		return fmt.Errorf("create service %s: %w", service.Name, err)
	}

	return nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	query, args, err := psql.Select(serviceColumns...).
		From("services").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find service: %w", err)
	}

	service, err := scanService(database.GetExecutor(ctx, r.db).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return nil, fmt.Errorf("find service by ID %s: %w", id, err)
	}

	return service, nil
}

func (r *serviceRepository) List(ctx context.Context, filter entity.ServiceFilter) ([]*entity.Service, error) {
	query, args, err := buildServiceListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list services: %w", err)
	}

	rows, err := database.GetExecutor(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	services := []*entity.Service{}
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, service)
	}

	return services, rows.Err()
}

func buildServiceListQuery(filter entity.ServiceFilter) squirrel.SelectBuilder {
	q := psql.Select(serviceColumns...).From("services")
	if filter.Category != nil {
		q = q.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.IsActive != nil {
		q = q.Where(squirrel.Eq{"is_active": *filter.IsActive})
	}
	return q.OrderBy("category", "name")
}

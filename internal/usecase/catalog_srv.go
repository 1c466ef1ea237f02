package usecase

import (
	"context"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"
	"salon-booking/pkg/apperror"
	"salon-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService exposes services and staff read-only.
type CatalogService interface {
	ListServices(ctx context.Context, req *request.ListServicesRequest) ([]response.ServiceResponse, error)
	GetService(ctx context.Context, serviceID string) (*response.ServiceResponse, error)
	ListStaff(ctx context.Context, req *request.ListStaffRequest) ([]response.StaffResponse, error)
	GetStaff(ctx context.Context, staffID string) (*response.StaffResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListServices(ctx context.Context, req *request.ListServicesRequest) ([]response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation(errs...)
	}

	filter := entity.ServiceFilter{IsActive: req.IsActive}
	if req.Category != "" {
		category := entity.ServiceCategory(req.Category)
		if !category.Valid() {
			return nil, apperror.InvalidField("category", "Unknown service category")
		}
		filter.Category = &category
	}

	services, err := s.repo.Service.List(ctx, filter)
	if err != nil {
		return nil, toAppError(err, "Service not found")
	}

	resp := make([]response.ServiceResponse, len(services))
	for i, service := range services {
		resp[i] = response.ServiceToResponse(service)
	}
	return resp, nil
}

func (s *catalogService) GetService(ctx context.Context, serviceID string) (*response.ServiceResponse, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, apperror.NotFound("Service not found")
	}

	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		return nil, toAppError(err, "Service not found")
	}
	if service == nil {
		return nil, apperror.NotFound("Service not found")
	}

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) ListStaff(ctx context.Context, req *request.ListStaffRequest) ([]response.StaffResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation(errs...)
	}

	filter := entity.StaffFilter{IsActive: req.IsActive}
	if req.ServiceID != "" {
		serviceID := uuid.MustParse(req.ServiceID)
		filter.ServiceID = &serviceID
	}

	members, err := s.repo.Staff.List(ctx, filter)
	if err != nil {
		return nil, toAppError(err, "Staff member not found")
	}

	resp := make([]response.StaffResponse, len(members))
	for i, member := range members {
		resp[i] = response.StaffToResponse(member)
	}
	return resp, nil
}

func (s *catalogService) GetStaff(ctx context.Context, staffID string) (*response.StaffResponse, error) {
	id, err := uuid.Parse(staffID)
	if err != nil {
		return nil, apperror.NotFound("Staff member not found")
	}

	staff, err := s.repo.Staff.FindByID(ctx, id)
	if err != nil {
		return nil, toAppError(err, "Staff member not found")
	}
	if staff == nil {
		return nil, apperror.NotFound("Staff member not found")
	}

	resp := response.StaffToResponse(staff)
	return &resp, nil
}

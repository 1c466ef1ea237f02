package adaptor

import (
	"net/http"

	"salon-booking/internal/dto/request"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	errs    *errorWriter
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, errs *errorWriter, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		errs:    errs,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ListServices handles GET /api/services
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListServicesRequest{
		Category: query.Get("category"),
		IsActive: utils.ParseBool(query.Get("isActive")),
	}

	services, err := h.service.ListServices(r.Context(), req)
	if err != nil {
		h.errs.write(w, r, err, "list services")
		return
	}

	utils.ResponseSuccess(w, services)
}

// GetService handles GET /api/services/{id}
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	service, err := h.service.GetService(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.errs.write(w, r, err, "get service")
		return
	}

	utils.ResponseSuccess(w, service)
}

// ListStaff handles GET /api/staff
func (h *CatalogHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListStaffRequest{
		ServiceID: query.Get("serviceId"),
		IsActive:  utils.ParseBool(query.Get("isActive")),
	}

	staff, err := h.service.ListStaff(r.Context(), req)
	if err != nil {
		h.errs.write(w, r, err, "list staff")
		return
	}

	utils.ResponseSuccess(w, staff)
}

// GetStaff handles GET /api/staff/{id}
func (h *CatalogHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	member, err := h.service.GetStaff(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.errs.write(w, r, err, "get staff")
		return
	}

	utils.ResponseSuccess(w, member)
}

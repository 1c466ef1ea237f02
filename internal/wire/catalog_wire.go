package wire

import (
	"salon-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireCatalog mounts the read-only service and staff listings
func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	r.Get("/services", catalogHandler.ListServices)
	r.Get("/services/{id}", catalogHandler.GetService)

	r.Get("/staff", catalogHandler.ListStaff)
	r.Get("/staff/{id}", catalogHandler.GetStaff)
}

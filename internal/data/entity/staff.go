package entity

import (
	"github.com/google/uuid"
)

type Staff struct {
	Base
	Name         string      `db:"name"`
	Title        string      `db:"title"`
	Bio          string      `db:"bio"`
	Email        string      `db:"email"`
	Phone        string      `db:"phone"`
	ImageURL     string      `db:"image_url"`
	Specialties  []string    `db:"specialties"`
	ServiceIDs   []uuid.UUID `db:"service_ids"`
	WorkingHours Calendar    `db:"working_hours"`
	IsActive     bool        `db:"is_active"`
}

// Offers reports whether the staff member performs serviceID. An empty
// service list means every service.
func (s *Staff) Offers(serviceID uuid.UUID) bool {
	if len(s.ServiceIDs) == 0 {
		return true
	}
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

type StaffFilter struct {
	ServiceID *uuid.UUID
	IsActive  *bool
}

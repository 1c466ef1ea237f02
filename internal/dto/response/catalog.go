package response

import (
	"salon-booking/internal/data/entity"
)

type ServiceResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Duration    int                    `json:"duration"`
	Price       float64                `json:"price"`
	Category    entity.ServiceCategory `json:"category"`
	ImageURL    string                 `json:"imageUrl,omitempty"`
	IsActive    bool                   `json:"isActive"`
}

type StaffResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Title        string          `json:"title"`
	Bio          string          `json:"bio,omitempty"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	Specialties  []string        `json:"specialties"`
	ServiceIDs   []string        `json:"services"`
	WorkingHours entity.Calendar `json:"workingHours"`
	IsActive     bool            `json:"isActive"`
}

func ServiceToResponse(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Description: s.Description,
		Duration:    s.Duration,
		Price:       s.Price,
		Category:    s.Category,
		ImageURL:    s.ImageURL,
		IsActive:    s.IsActive,
	}
}

func StaffToResponse(s *entity.Staff) StaffResponse {
	ids := make([]string, len(s.ServiceIDs))
	for i, id := range s.ServiceIDs {
		ids[i] = id.String()
	}
	specialties := s.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return StaffResponse{
		ID:           s.ID.String(),
		Name:         s.Name,
		Title:        s.Title,
		Bio:          s.Bio,
		Email:        s.Email,
		Phone:        s.Phone,
		ImageURL:     s.ImageURL,
		Specialties:  specialties,
		ServiceIDs:   ids,
		WorkingHours: s.WorkingHours,
		IsActive:     s.IsActive,
	}
}

package request

// ListServicesRequest category is checked against entity.ServiceCategories
// by the service layer.
type ListServicesRequest struct {
	Category string `json:"category" validate:"max=50"`
	IsActive *bool  `json:"isActive"`
}

type ListStaffRequest struct {
	ServiceID string `json:"serviceId" validate:"omitempty,uuid"`
	IsActive  *bool  `json:"isActive"`
}

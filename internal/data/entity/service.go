package entity

type ServiceCategory string

const (
	CategoryHairDesign       ServiceCategory = "Hair Design"
	CategoryColorServices    ServiceCategory = "Color Services"
	CategoryHairTreatments   ServiceCategory = "Hair Treatments"
	CategorySpecialOccasions ServiceCategory = "Special Occasions"
	CategoryExtensions       ServiceCategory = "Extensions"
	CategoryMensServices     ServiceCategory = "Men's Services"
)

var ServiceCategories = []ServiceCategory{
	CategoryHairDesign,
	CategoryColorServices,
	CategoryHairTreatments,
	CategorySpecialOccasions,
	CategoryExtensions,
	CategoryMensServices,
}

func (c ServiceCategory) Valid() bool {
	for _, known := range ServiceCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Service is something the salon sells. Duration is in minutes.
type Service struct {
	Base
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Duration    int             `db:"duration"`
	Price       float64         `db:"price"`
	Category    ServiceCategory `db:"category"`
	ImageURL    string          `db:"image_url"`
	IsActive    bool            `db:"is_active"`
}

type ServiceFilter struct {
	Category *ServiceCategory
	IsActive *bool
}

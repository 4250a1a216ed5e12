package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/enum"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service represents a catalog offering shown on the public site and
// referenced by bookings.
type Service struct {
	ID               uuid.UUID                            `gorm:"type:uuid;primary_key" json:"id"`
	Name             string                               `gorm:"size:255;not null" json:"name"`
	Slug             string                               `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	ShortDescription string                               `gorm:"size:200" json:"short_description"`
	FullDescription  string                               `gorm:"type:text" json:"full_description"`
	Image            string                               `gorm:"size:255" json:"image"`
	Icon             string                               `gorm:"size:100;default:Wrench" json:"icon"`
	VehicleTypes     datatypes.JSONSlice[enum.VehicleType] `json:"vehicle_types"`
	BasePrice        float64                              `gorm:"not null;default:0" json:"base_price"`
	EstimatedTime    string                               `gorm:"size:100;default:1-2 hours" json:"estimated_time"`
	Features         datatypes.JSONSlice[string]          `json:"features"`
	IsActive         bool                                 `gorm:"default:true;index" json:"is_active"`
	DisplayOrder     int                                  `gorm:"default:0" json:"display_order"`
	CreatedAt        time.Time                            `json:"created_at"`
	UpdatedAt        time.Time                            `json:"updated_at"`
	DeletedAt        gorm.DeletedAt                       `gorm:"index" json:"-"`
}

// SupportsVehicleType reports whether the service applies to the given type
func (s *Service) SupportsVehicleType(vt enum.VehicleType) bool {
	for _, t := range s.VehicleTypes {
		if t == vt {
			return true
		}
	}
	return false
}

// BeforeCreate generates a UUID before creating a new service
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Service model
func (Service) TableName() string {
	return "services"
}

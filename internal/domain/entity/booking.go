package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/enum"
	"gorm.io/gorm"
)

// Booking represents a customer appointment request. Bookings are never
// physically deleted; cancellation is a status change.
type Booking struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	BookingID     string             `gorm:"size:30;uniqueIndex;not null" json:"booking_id"`
	CustomerName  string             `gorm:"size:255;not null" json:"customer_name"`
	Phone         string             `gorm:"size:20;not null;index" json:"phone"`
	Email         string             `gorm:"size:255" json:"email,omitempty"`
	VehicleType   enum.VehicleType   `gorm:"size:5;not null" json:"vehicle_type"`
	VehicleBrand  string             `gorm:"size:100;not null" json:"vehicle_brand"`
	VehicleModel  string             `gorm:"size:100;not null" json:"vehicle_model"`
	VehicleNumber string             `gorm:"size:20" json:"vehicle_number,omitempty"`
	ServiceTypeID uuid.UUID          `gorm:"type:uuid;not null;index" json:"service_type_id"`
	PreferredDate time.Time          `gorm:"type:date;not null" json:"preferred_date"`
	PreferredTime string             `gorm:"size:20;not null" json:"preferred_time"`
	Notes         string             `gorm:"size:500" json:"notes,omitempty"`
	Status        enum.BookingStatus `gorm:"size:20;not null;default:pending;index" json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relationships
	ServiceType *Service `gorm:"foreignKey:ServiceTypeID" json:"service_type,omitempty"`
}

// BeforeCreate generates a UUID before creating a new booking
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

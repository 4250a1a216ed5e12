package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents an admin or a customer account. Customers are created on
// first OTP verification and carry no password.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Email     *string        `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	Phone     string         `gorm:"size:20;not null;index" json:"phone"`
	Password  string         `gorm:"size:255" json:"-"`
	Role      enum.UserRole  `gorm:"size:20;not null;default:customer" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

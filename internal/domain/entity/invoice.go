package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/enum"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InvoiceServiceLine is a frozen service row on an invoice
type InvoiceServiceLine struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// InvoicePartLine is a frozen part row on an invoice
type InvoicePartLine struct {
	Name       string  `json:"name"`
	PartNumber string  `json:"part_number,omitempty"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	Amount     float64 `json:"amount"`
}

// VehicleDetails is the vehicle snapshot frozen onto an invoice
type VehicleDetails struct {
	Type   enum.VehicleType `gorm:"size:5" json:"type"`
	Brand  string           `gorm:"size:100" json:"brand"`
	Model  string           `gorm:"size:100" json:"model"`
	Number string           `gorm:"size:20" json:"number"`
	Color  string           `gorm:"size:50" json:"color,omitempty"`
}

// Invoice is an immutable financial snapshot of exactly one job card. Line
// items and totals are fixed at generation time; only the payment fields
// change afterwards.
type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber string    `gorm:"size:30;uniqueIndex;not null" json:"invoice_number"`
	JobCardID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"job_card_id"`

	CustomerName   string         `gorm:"size:255;not null" json:"customer_name"`
	Phone          string         `gorm:"size:20;not null;index" json:"phone"`
	Email          string         `gorm:"size:255" json:"email,omitempty"`
	Address        string         `gorm:"size:500" json:"address,omitempty"`
	VehicleDetails VehicleDetails `gorm:"embedded;embeddedPrefix:vehicle_" json:"vehicle_details"`

	Services datatypes.JSONSlice[InvoiceServiceLine] `json:"services"`
	Parts    datatypes.JSONSlice[InvoicePartLine]    `json:"parts"`

	LabourCharges   float64 `gorm:"not null;default:0" json:"labour_charges"`
	Subtotal        float64 `gorm:"not null" json:"subtotal"`
	DiscountPercent float64 `gorm:"not null;default:0" json:"discount_percent"`
	DiscountAmount  float64 `gorm:"not null;default:0" json:"discount_amount"`
	TaxableAmount   float64 `gorm:"not null" json:"taxable_amount"`
	CGSTPercent     float64 `gorm:"not null;default:9" json:"cgst_percent"`
	CGSTAmount      float64 `gorm:"not null;default:0" json:"cgst_amount"`
	SGSTPercent     float64 `gorm:"not null;default:9" json:"sgst_percent"`
	SGSTAmount      float64 `gorm:"not null;default:0" json:"sgst_amount"`
	TotalTax        float64 `gorm:"not null;default:0" json:"total_tax"`
	GrandTotal      float64 `gorm:"not null" json:"grand_total"`
	RoundOff        float64 `gorm:"not null;default:0" json:"round_off"`
	FinalAmount     float64 `gorm:"not null" json:"final_amount"`

	PaymentStatus enum.PaymentStatus `gorm:"size:20;not null;default:pending;index" json:"payment_status"`
	PaymentMethod string             `gorm:"size:50" json:"payment_method,omitempty"`
	AmountPaid    float64            `gorm:"not null;default:0" json:"amount_paid"`
	BalanceDue    float64            `gorm:"not null;default:0" json:"balance_due"`

	Notes              string `gorm:"size:500" json:"notes,omitempty"`
	TermsAndConditions string `gorm:"type:text" json:"terms_and_conditions,omitempty"`

	GeneratedAt time.Time  `gorm:"not null" json:"generated_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	JobCard *JobCard `gorm:"foreignKey:JobCardID" json:"job_card,omitempty"`
}

// ApplyPayment re-derives balance and payment status from AmountPaid. The
// derived status wins over whatever the caller supplied: fully paid forces
// "paid" and stamps PaidAt once; any positive partial amount forces "partial".
// PaidAt is never cleared once set.
func (i *Invoice) ApplyPayment(now time.Time) {
	i.BalanceDue = i.FinalAmount - i.AmountPaid

	if i.AmountPaid >= i.FinalAmount {
		i.PaymentStatus = enum.PaymentStatusPaid
		if i.PaidAt == nil {
			t := now
			i.PaidAt = &t
		}
	} else if i.AmountPaid > 0 {
		i.PaymentStatus = enum.PaymentStatusPartial
	}
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/enum"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ServiceItem is a service line on a job card. ActualCost stays 0 until the
// work is costed; billing falls back to EstimatedCost in that case.
type ServiceItem struct {
	ServiceID     *uuid.UUID `json:"service_id,omitempty"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	EstimatedCost float64    `json:"estimated_cost"`
	ActualCost    float64    `json:"actual_cost"`
}

// PartItem is a part line on a job card
type PartItem struct {
	Name       string  `json:"name"`
	PartNumber string  `json:"part_number,omitempty"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	Total      float64 `json:"total"`
}

// StatusEntry is an append-only record of a status change
type StatusEntry struct {
	Status    enum.JobCardStatus `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
	Notes     string             `json:"notes,omitempty"`
	UpdatedBy string             `json:"updated_by,omitempty"`
}

// JobCard is the operational record of work performed on a vehicle. Customer
// and vehicle fields are copied from the booking at creation so the card stays
// valid if the booking is edited later.
type JobCard struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	JobCardNumber string           `gorm:"size:30;uniqueIndex;not null" json:"job_card_number"`
	BookingID     *uuid.UUID       `gorm:"type:uuid;index" json:"booking_id,omitempty"`
	CustomerName  string           `gorm:"size:255;not null" json:"customer_name"`
	Phone         string           `gorm:"size:20;not null;index" json:"phone"`
	Email         string           `gorm:"size:255" json:"email,omitempty"`
	VehicleType   enum.VehicleType `gorm:"size:5;not null" json:"vehicle_type"`
	VehicleBrand  string           `gorm:"size:100;not null" json:"vehicle_brand"`
	VehicleModel  string           `gorm:"size:100;not null" json:"vehicle_model"`
	VehicleNumber string           `gorm:"size:20;not null;index" json:"vehicle_number"`
	VehicleColor  string           `gorm:"size:50" json:"vehicle_color,omitempty"`

	OdometerReading *int   `json:"odometer_reading,omitempty"`
	FuelLevel       string `gorm:"size:20" json:"fuel_level,omitempty"`

	ServicesRequested datatypes.JSONSlice[ServiceItem] `json:"services_requested"`
	PartsUsed         datatypes.JSONSlice[PartItem]    `json:"parts_used"`
	LabourCharges     float64                          `gorm:"not null;default:0" json:"labour_charges"`

	MechanicAssigned string `gorm:"size:255" json:"mechanic_assigned,omitempty"`
	ServiceAdvisor   string `gorm:"size:255" json:"service_advisor,omitempty"`

	Status        enum.JobCardStatus               `gorm:"size:20;not null;default:received;index" json:"status"`
	StatusHistory datatypes.JSONSlice[StatusEntry] `json:"status_history"`

	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
	EstimatedTotal    float64    `gorm:"not null;default:0" json:"estimated_total"`
	FinalTotal        float64    `gorm:"not null;default:0" json:"final_total"`

	CustomerNotes string `gorm:"size:1000" json:"customer_notes,omitempty"`
	InternalNotes string `gorm:"size:1000" json:"internal_notes,omitempty"`

	ReceivedAt           time.Time  `gorm:"not null" json:"received_at"`
	DiagnosisCompletedAt *time.Time `json:"diagnosis_completed_at,omitempty"`
	RepairStartedAt      *time.Time `json:"repair_started_at,omitempty"`
	ReadyAt              *time.Time `json:"ready_at,omitempty"`
	DeliveredAt          *time.Time `json:"delivered_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

// ApplyStatus moves the job card to newStatus at the given time: appends one
// StatusHistory entry and stamps the matching milestone timestamp, set-once.
// Any status is reachable from any other; no transition is rejected.
func (j *JobCard) ApplyStatus(newStatus enum.JobCardStatus, now time.Time, notes, updatedBy string) {
	j.Status = newStatus
	j.StatusHistory = append(j.StatusHistory, StatusEntry{
		Status:    newStatus,
		Timestamp: now,
		Notes:     notes,
		UpdatedBy: updatedBy,
	})

	switch newStatus {
	case enum.JobCardStatusDiagnosis:
		if j.DiagnosisCompletedAt == nil {
			t := now
			j.DiagnosisCompletedAt = &t
		}
	case enum.JobCardStatusInProgress:
		if j.RepairStartedAt == nil {
			t := now
			j.RepairStartedAt = &t
		}
	case enum.JobCardStatusReady:
		if j.ReadyAt == nil {
			t := now
			j.ReadyAt = &t
		}
	case enum.JobCardStatusDelivered:
		if j.DeliveredAt == nil {
			t := now
			j.DeliveredAt = &t
		}
	}
}

// RecomputeFinalTotal refreshes the derived total from part line totals,
// actual service costs, and labour. Called after every edit to any of those.
func (j *JobCard) RecomputeFinalTotal() {
	var total float64
	for _, p := range j.PartsUsed {
		total += p.Total
	}
	for _, s := range j.ServicesRequested {
		total += s.ActualCost
	}
	total += j.LabourCharges
	j.FinalTotal = total
}

// BeforeCreate generates a UUID before creating a new job card
func (j *JobCard) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the JobCard model
func (JobCard) TableName() string {
	return "job_cards"
}

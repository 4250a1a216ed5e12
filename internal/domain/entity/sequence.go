package entity

import "fmt"

// SequenceKind identifies which document number series a counter belongs to
type SequenceKind string

const (
	SequenceKindBooking SequenceKind = "booking"
	SequenceKindJobCard SequenceKind = "job_card"
	SequenceKindInvoice SequenceKind = "invoice"
)

// Prefix returns the label prefix for the series
func (k SequenceKind) Prefix() string {
	switch k {
	case SequenceKindBooking:
		return "RMW"
	case SequenceKindJobCard:
		return "JC"
	case SequenceKindInvoice:
		return "INV"
	}
	return ""
}

// NumberSequence is an atomically incremented counter per document kind and
// calendar year. The counter resets naturally each year because the year is
// part of the key.
type NumberSequence struct {
	Kind  SequenceKind `gorm:"size:20;primaryKey" json:"kind"`
	Year  int          `gorm:"primaryKey" json:"year"`
	Value int64        `gorm:"not null;default:0" json:"value"`
}

// TableName returns the table name for the NumberSequence model
func (NumberSequence) TableName() string {
	return "number_sequences"
}

// FormatDocumentNumber renders a human-readable identifier like INV-2026-0042
func FormatDocumentNumber(kind SequenceKind, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%04d", kind.Prefix(), year, seq)
}

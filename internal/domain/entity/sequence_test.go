package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDocumentNumber(t *testing.T) {
	assert.Equal(t, "RMW-2026-0001", FormatDocumentNumber(SequenceKindBooking, 2026, 1))
	assert.Equal(t, "JC-2026-0042", FormatDocumentNumber(SequenceKindJobCard, 2026, 42))
	assert.Equal(t, "INV-2026-0999", FormatDocumentNumber(SequenceKindInvoice, 2026, 999))

	// Width grows past four digits instead of truncating
	assert.Equal(t, "INV-2026-12345", FormatDocumentNumber(SequenceKindInvoice, 2026, 12345))
}

func TestSequenceKindPrefix(t *testing.T) {
	assert.Equal(t, "RMW", SequenceKindBooking.Prefix())
	assert.Equal(t, "JC", SequenceKindJobCard.Prefix())
	assert.Equal(t, "INV", SequenceKindInvoice.Prefix())
	assert.Equal(t, "", SequenceKind("unknown").Prefix())
}

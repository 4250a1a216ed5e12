// Package billing computes invoice totals and GST breakdowns. Everything here
// is pure; persistence is the caller's concern.
package billing

import (
	"math"

	"github.com/invinci009/rmw/internal/domain/entity"
	"github.com/invinci009/rmw/pkg/apperror"
)

// Defaults applied when the caller does not override the percentages.
const (
	DefaultCGSTPercent = 9.0
	DefaultSGSTPercent = 9.0
)

// Input carries the frozen line items and rates for a calculation.
type Input struct {
	Services        []entity.InvoiceServiceLine
	Parts           []entity.InvoicePartLine
	LabourCharges   float64
	DiscountPercent float64
	CGSTPercent     float64
	SGSTPercent     float64
}

// Breakdown is the full tax and totals result.
type Breakdown struct {
	ServicesTotal   float64
	PartsTotal      float64
	LabourCharges   float64
	Subtotal        float64
	DiscountPercent float64
	DiscountAmount  float64
	TaxableAmount   float64
	CGSTPercent     float64
	CGSTAmount      float64
	SGSTPercent     float64
	SGSTAmount      float64
	TotalTax        float64
	GrandTotal      float64
	RoundOff        float64
	FinalAmount     float64
}

// FreezeServiceLine converts a job card service item into an immutable invoice
// row. The rate falls back to the estimate while the actual cost is still 0.
func FreezeServiceLine(item entity.ServiceItem) entity.InvoiceServiceLine {
	rate := item.ActualCost
	if rate == 0 {
		rate = item.EstimatedCost
	}
	return entity.InvoiceServiceLine{
		Name:        item.Name,
		Description: item.Description,
		Quantity:    1,
		Rate:        rate,
		Amount:      rate,
	}
}

// FreezePartLine converts a job card part item into an immutable invoice row.
func FreezePartLine(item entity.PartItem) entity.InvoicePartLine {
	return entity.InvoicePartLine{
		Name:       item.Name,
		PartNumber: item.PartNumber,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		Amount:     item.Total,
	}
}

// Calculate runs the totals pipeline in order: line totals, subtotal,
// discount, taxable amount, CGST/SGST, grand total, then rounding to the
// nearest rupee. RoundOff records the signed rounding delta.
func Calculate(in Input) (*Breakdown, error) {
	if len(in.Services) == 0 && len(in.Parts) == 0 && in.LabourCharges == 0 {
		return nil, apperror.NewBadRequestError("Job card has no billable items")
	}

	var servicesTotal float64
	for _, s := range in.Services {
		servicesTotal += s.Amount
	}
	var partsTotal float64
	for _, p := range in.Parts {
		partsTotal += p.Amount
	}

	subtotal := servicesTotal + partsTotal + in.LabourCharges
	discountAmount := subtotal * in.DiscountPercent / 100
	taxableAmount := subtotal - discountAmount

	cgstAmount := taxableAmount * in.CGSTPercent / 100
	sgstAmount := taxableAmount * in.SGSTPercent / 100
	totalTax := cgstAmount + sgstAmount

	grandTotal := taxableAmount + totalTax
	finalAmount := math.Floor(grandTotal + 0.5) // round half up
	roundOff := finalAmount - grandTotal

	return &Breakdown{
		ServicesTotal:   servicesTotal,
		PartsTotal:      partsTotal,
		LabourCharges:   in.LabourCharges,
		Subtotal:        subtotal,
		DiscountPercent: in.DiscountPercent,
		DiscountAmount:  discountAmount,
		TaxableAmount:   taxableAmount,
		CGSTPercent:     in.CGSTPercent,
		CGSTAmount:      cgstAmount,
		SGSTPercent:     in.SGSTPercent,
		SGSTAmount:      sgstAmount,
		TotalTax:        totalTax,
		GrandTotal:      grandTotal,
		RoundOff:        roundOff,
		FinalAmount:     finalAmount,
	}, nil
}

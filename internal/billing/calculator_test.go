package billing

import (
	"testing"

	"github.com/invinci009/rmw/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_StandardInvoice(t *testing.T) {
	// 2000 in services + 500 labour, default 9% + 9% GST
	breakdown, err := Calculate(Input{
		Services: []entity.InvoiceServiceLine{
			{Name: "General Service", Quantity: 1, Rate: 2000, Amount: 2000},
		},
		LabourCharges: 500,
		CGSTPercent:   DefaultCGSTPercent,
		SGSTPercent:   DefaultSGSTPercent,
	})
	require.NoError(t, err)

	assert.Equal(t, 2000.0, breakdown.ServicesTotal)
	assert.Equal(t, 0.0, breakdown.PartsTotal)
	assert.Equal(t, 2500.0, breakdown.Subtotal)
	assert.Equal(t, 0.0, breakdown.DiscountAmount)
	assert.Equal(t, 2500.0, breakdown.TaxableAmount)
	assert.Equal(t, 225.0, breakdown.CGSTAmount)
	assert.Equal(t, 225.0, breakdown.SGSTAmount)
	assert.Equal(t, 450.0, breakdown.TotalTax)
	assert.Equal(t, 2950.0, breakdown.GrandTotal)
	assert.Equal(t, 2950.0, breakdown.FinalAmount)
	assert.Equal(t, 0.0, breakdown.RoundOff)
}

func TestCalculate_WithDiscountAndParts(t *testing.T) {
	breakdown, err := Calculate(Input{
		Services: []entity.InvoiceServiceLine{
			{Name: "Engine Diagnostics", Quantity: 1, Rate: 999, Amount: 999},
		},
		Parts: []entity.InvoicePartLine{
			{Name: "Oil Filter", Quantity: 2, UnitPrice: 250, Amount: 500},
		},
		LabourCharges:   300,
		DiscountPercent: 10,
		CGSTPercent:     DefaultCGSTPercent,
		SGSTPercent:     DefaultSGSTPercent,
	})
	require.NoError(t, err)

	assert.Equal(t, 999.0, breakdown.ServicesTotal)
	assert.Equal(t, 500.0, breakdown.PartsTotal)
	assert.Equal(t, 1799.0, breakdown.Subtotal)
	assert.InDelta(t, 179.9, breakdown.DiscountAmount, 1e-9)
	assert.InDelta(t, 1619.1, breakdown.TaxableAmount, 1e-9)
	assert.InDelta(t, 145.719, breakdown.CGSTAmount, 1e-9)
	assert.InDelta(t, 145.719, breakdown.SGSTAmount, 1e-9)
	assert.InDelta(t, 1910.538, breakdown.GrandTotal, 1e-9)

	// Rounds up to the nearest rupee
	assert.Equal(t, 1911.0, breakdown.FinalAmount)
	assert.InDelta(t, 0.462, breakdown.RoundOff, 1e-9)
}

func TestCalculate_RoundsHalfUp(t *testing.T) {
	// Taxable 100 at 0.25% twice gives 100.50 exactly
	breakdown, err := Calculate(Input{
		Services: []entity.InvoiceServiceLine{
			{Name: "Check-up", Quantity: 1, Rate: 100, Amount: 100},
		},
		CGSTPercent: 0.25,
		SGSTPercent: 0.25,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.5, breakdown.GrandTotal)
	assert.Equal(t, 101.0, breakdown.FinalAmount)
	assert.InDelta(t, 0.5, breakdown.RoundOff, 1e-9)
}

func TestCalculate_RoundsDown(t *testing.T) {
	breakdown, err := Calculate(Input{
		Parts: []entity.InvoicePartLine{
			{Name: "Brake Pad", Quantity: 1, UnitPrice: 100.2, Amount: 100.2},
		},
		CGSTPercent: 0,
		SGSTPercent: 0,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, breakdown.FinalAmount)
	assert.InDelta(t, -0.2, breakdown.RoundOff, 1e-9)
}

func TestCalculate_ZeroTaxPercent(t *testing.T) {
	breakdown, err := Calculate(Input{
		LabourCharges: 1000,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, breakdown.TotalTax)
	assert.Equal(t, 1000.0, breakdown.GrandTotal)
	assert.Equal(t, 1000.0, breakdown.FinalAmount)
}

func TestCalculate_FullDiscount(t *testing.T) {
	breakdown, err := Calculate(Input{
		Services: []entity.InvoiceServiceLine{
			{Name: "Wash", Quantity: 1, Rate: 499, Amount: 499},
		},
		DiscountPercent: 100,
		CGSTPercent:     DefaultCGSTPercent,
		SGSTPercent:     DefaultSGSTPercent,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, breakdown.TaxableAmount)
	assert.Equal(t, 0.0, breakdown.FinalAmount)
}

func TestCalculate_NoBillableItems(t *testing.T) {
	_, err := Calculate(Input{})
	assert.Error(t, err)
}

func TestFreezeServiceLine_FallsBackToEstimate(t *testing.T) {
	line := FreezeServiceLine(entity.ServiceItem{
		Name:          "General Service",
		EstimatedCost: 1499,
		ActualCost:    0,
	})

	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 1499.0, line.Rate)
	assert.Equal(t, 1499.0, line.Amount)
}

func TestFreezeServiceLine_PrefersActualCost(t *testing.T) {
	line := FreezeServiceLine(entity.ServiceItem{
		Name:          "General Service",
		EstimatedCost: 1499,
		ActualCost:    1750,
	})

	assert.Equal(t, 1750.0, line.Rate)
	assert.Equal(t, 1750.0, line.Amount)
}

func TestFreezePartLine(t *testing.T) {
	line := FreezePartLine(entity.PartItem{
		Name:       "Air Filter",
		PartNumber: "AF-102",
		Quantity:   2,
		UnitPrice:  350,
		Total:      700,
	})

	assert.Equal(t, "Air Filter", line.Name)
	assert.Equal(t, "AF-102", line.PartNumber)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 350.0, line.UnitPrice)
	assert.Equal(t, 700.0, line.Amount)
}

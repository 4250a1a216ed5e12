package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// InvoiceDocument holds the data rendered into an invoice PDF. Callers map
// their persisted invoice snapshot into this view model.
type InvoiceDocument struct {
	InvoiceNumber string
	GeneratedAt   time.Time

	CustomerName string
	Phone        string
	Address      string

	VehicleLabel  string
	VehicleNumber string

	Services []LineItem
	Parts    []LineItem

	LabourCharges   float64
	Subtotal        float64
	DiscountPercent float64
	DiscountAmount  float64
	TaxableAmount   float64
	CGSTPercent     float64
	CGSTAmount      float64
	SGSTPercent     float64
	SGSTAmount      float64
	RoundOff        float64
	FinalAmount     float64

	AmountPaid    float64
	BalanceDue    float64
	PaymentStatus string

	Notes              string
	TermsAndConditions string
}

// LineItem is a single billed row.
type LineItem struct {
	Name        string
	Description string
	Quantity    int
	Rate        float64
	Amount      float64
}

const (
	workshopName    = "Republic Motor Works"
	workshopTagline = "Complete 2-Wheeler & 4-Wheeler Care"
)

// Render produces the PDF bytes for the invoice.
func Render(doc *InvoiceDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, workshopName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, workshopTagline, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(95, 8, "TAX INVOICE", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 8, fmt.Sprintf("%s  |  %s", doc.InvoiceNumber, doc.GeneratedAt.Format("02 Jan 2006")), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// Customer and vehicle block
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(95, 6, "Billed To", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Vehicle", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 5, doc.CustomerName, "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 5, doc.VehicleLabel, "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 5, doc.Phone, "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 5, doc.VehicleNumber, "", 1, "L", false, 0, "")
	if doc.Address != "" {
		pdf.CellFormat(95, 5, doc.Address, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Line items
	writeItemsHeader(pdf)
	row := 1
	for _, it := range doc.Services {
		writeItemRow(pdf, row, it)
		row++
	}
	for _, it := range doc.Parts {
		writeItemRow(pdf, row, it)
		row++
	}
	if doc.LabourCharges > 0 {
		writeItemRow(pdf, row, LineItem{Name: "Labour Charges", Quantity: 1, Rate: doc.LabourCharges, Amount: doc.LabourCharges})
	}
	pdf.Ln(4)

	// Totals
	writeTotalRow(pdf, "Subtotal", doc.Subtotal, false)
	if doc.DiscountAmount > 0 {
		writeTotalRow(pdf, fmt.Sprintf("Discount (%.1f%%)", doc.DiscountPercent), -doc.DiscountAmount, false)
		writeTotalRow(pdf, "Taxable Amount", doc.TaxableAmount, false)
	}
	writeTotalRow(pdf, fmt.Sprintf("CGST (%.1f%%)", doc.CGSTPercent), doc.CGSTAmount, false)
	writeTotalRow(pdf, fmt.Sprintf("SGST (%.1f%%)", doc.SGSTPercent), doc.SGSTAmount, false)
	if doc.RoundOff != 0 {
		writeTotalRow(pdf, "Round Off", doc.RoundOff, false)
	}
	writeTotalRow(pdf, "Total", doc.FinalAmount, true)
	if doc.AmountPaid > 0 {
		writeTotalRow(pdf, "Amount Paid", doc.AmountPaid, false)
		writeTotalRow(pdf, "Balance Due", doc.BalanceDue, false)
	}
	pdf.Ln(6)

	if doc.Notes != "" {
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(0, 5, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, doc.Notes, "", "L", false)
		pdf.Ln(2)
	}
	if doc.TermsAndConditions != "" {
		pdf.SetFont("Arial", "I", 8)
		pdf.MultiCell(0, 4, doc.TermsAndConditions, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeItemsHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(85, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 7, "Amount", "1", 1, "R", true, 0, "")
}

func writeItemRow(pdf *gofpdf.Fpdf, n int, it LineItem) {
	name := it.Name
	if it.Description != "" {
		name = name + " - " + it.Description
	}
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(10, 6, fmt.Sprintf("%d", n), "1", 0, "C", false, 0, "")
	pdf.CellFormat(85, 6, name, "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 6, fmt.Sprintf("%d", it.Quantity), "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", it.Rate), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", it.Amount), "1", 1, "R", false, 0, "")
}

func writeTotalRow(pdf *gofpdf.Fpdf, label string, amount float64, bold bool) {
	if bold {
		pdf.SetFont("Arial", "B", 10)
	} else {
		pdf.SetFont("Arial", "", 9)
	}
	pdf.CellFormat(115, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 6, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", amount), "", 1, "R", false, 0, "")
}

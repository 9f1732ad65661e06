// Package pdf regenerates the print representation of a resolved invoice.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/dharanikaviyav/Invoice-Management/internal/models"
)

// Render produces an A4 PDF for a single resolved invoice. It is a pure
// rendering step: the invoice's cached totals are printed as-is.
func Render(inv *models.Invoice) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Arial", "B", 18)
	doc.Cell(120, 10, "INVOICE")
	doc.SetFont("Arial", "B", 12)
	doc.CellFormat(0, 10, inv.Number, "", 1, "R", false, 0, "")

	doc.SetFont("Arial", "", 10)
	doc.CellFormat(120, 6, fmt.Sprintf("Date: %s", inv.Date), "", 0, "L", false, 0, "")
	doc.CellFormat(0, 6, fmt.Sprintf("Due: %s", inv.DueDate), "", 1, "R", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Arial", "B", 10)
	doc.CellFormat(0, 6, "Bill To:", "", 1, "L", false, 0, "")
	doc.SetFont("Arial", "", 10)
	doc.CellFormat(0, 6, inv.CustomerName, "", 1, "L", false, 0, "")
	doc.MultiCell(0, 5, inv.CustomerAddress, "", "L", false)
	doc.Ln(6)

	// Items table
	doc.SetFont("Arial", "B", 10)
	doc.SetFillColor(240, 240, 240)
	doc.CellFormat(80, 7, "Description", "1", 0, "L", true, 0, "")
	doc.CellFormat(20, 7, "Qty", "1", 0, "R", true, 0, "")
	doc.CellFormat(30, 7, "Unit Price", "1", 0, "R", true, 0, "")
	doc.CellFormat(20, 7, "Tax %", "1", 0, "R", true, 0, "")
	doc.CellFormat(40, 7, "Amount", "1", 1, "R", true, 0, "")

	doc.SetFont("Arial", "", 10)
	for _, item := range inv.Items {
		amount := item.Quantity * item.UnitPrice
		doc.CellFormat(80, 7, item.Description, "1", 0, "L", false, 0, "")
		doc.CellFormat(20, 7, trimFloat(item.Quantity), "1", 0, "R", false, 0, "")
		doc.CellFormat(30, 7, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		doc.CellFormat(20, 7, trimFloat(item.TaxRate), "1", 0, "R", false, 0, "")
		doc.CellFormat(40, 7, fmt.Sprintf("%.2f", amount), "1", 1, "R", false, 0, "")
	}
	doc.Ln(4)

	// Totals block
	doc.CellFormat(150, 7, "Subtotal", "", 0, "R", false, 0, "")
	doc.CellFormat(40, 7, fmt.Sprintf("%.2f", inv.Subtotal), "", 1, "R", false, 0, "")
	doc.CellFormat(150, 7, "Tax", "", 0, "R", false, 0, "")
	doc.CellFormat(40, 7, fmt.Sprintf("%.2f", inv.TaxTotal), "", 1, "R", false, 0, "")
	doc.SetFont("Arial", "B", 11)
	doc.CellFormat(150, 8, "Grand Total", "T", 0, "R", false, 0, "")
	doc.CellFormat(40, 8, fmt.Sprintf("%.2f", inv.GrandTotal), "T", 1, "R", false, 0, "")

	if inv.Notes != "" {
		doc.Ln(6)
		doc.SetFont("Arial", "B", 10)
		doc.CellFormat(0, 6, "Notes:", "", 1, "L", false, 0, "")
		doc.SetFont("Arial", "", 10)
		doc.MultiCell(0, 5, inv.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice %s: %w", inv.Number, err)
	}
	return buf.Bytes(), nil
}

// trimFloat formats quantities and tax rates without trailing zeros.
func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

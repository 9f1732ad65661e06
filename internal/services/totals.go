package services

import "github.com/dharanikaviyav/Invoice-Management/internal/models"

// ComputeTotals turns a sequence of line items into subtotal, tax total and
// grand total. Items are accumulated in input order so results are
// reproducible. The function performs no validation; callers reject
// malformed quantities, prices and tax rates before calling (see
// ValidateDraft). An empty sequence yields all zeros.
func ComputeTotals(items []models.LineItem) models.Totals {
	var t models.Totals
	for _, item := range items {
		lineTotal := item.Quantity * item.UnitPrice
		t.Subtotal += lineTotal
		t.TaxTotal += lineTotal * (item.TaxRate / 100)
	}
	t.GrandTotal = t.Subtotal + t.TaxTotal
	return t
}

package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dharanikaviyav/Invoice-Management/internal/models"
)

func validDraft() models.InvoiceDraft {
	return models.InvoiceDraft{
		CustomerID:   "c1",
		CustomerName: "Aarav Enterprises",
		Date:         "2024-02-01",
		DueDate:      "2024-03-01",
		Status:       models.StatusPending,
		Items: []models.LineItem{
			{ID: "i1", Description: "Consulting Hours", Quantity: 2, UnitPrice: 100, TaxRate: 10},
		},
	}
}

func TestValidateDraft_Valid(t *testing.T) {
	assert.NoError(t, ValidateDraft(validDraft()))
}

func TestValidateDraft_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.InvoiceDraft)
	}{
		{"no items", func(d *models.InvoiceDraft) { d.Items = nil }},
		{"empty description", func(d *models.InvoiceDraft) { d.Items[0].Description = "   " }},
		{"zero quantity", func(d *models.InvoiceDraft) { d.Items[0].Quantity = 0 }},
		{"negative quantity", func(d *models.InvoiceDraft) { d.Items[0].Quantity = -1 }},
		{"negative price", func(d *models.InvoiceDraft) { d.Items[0].UnitPrice = -0.01 }},
		{"tax below range", func(d *models.InvoiceDraft) { d.Items[0].TaxRate = -1 }},
		{"tax above range", func(d *models.InvoiceDraft) { d.Items[0].TaxRate = 100.5 }},
		{"NaN quantity", func(d *models.InvoiceDraft) { d.Items[0].Quantity = math.NaN() }},
		{"infinite price", func(d *models.InvoiceDraft) { d.Items[0].UnitPrice = math.Inf(1) }},
		{"unknown status", func(d *models.InvoiceDraft) { d.Status = "Cancelled" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)
			err := ValidateDraft(draft)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestValidateDraft_BoundaryValuesAllowed(t *testing.T) {
	draft := validDraft()
	draft.Items[0].UnitPrice = 0
	draft.Items[0].TaxRate = 0
	assert.NoError(t, ValidateDraft(draft))

	draft.Items[0].TaxRate = 100
	assert.NoError(t, ValidateDraft(draft))

	// Empty status defaults at create time and is not a validation error.
	draft.Status = ""
	assert.NoError(t, ValidateDraft(draft))
}

package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharanikaviyav/Invoice-Management/internal/models"
)

func TestRender_ProducesPDF(t *testing.T) {
	inv := &models.Invoice{
		ID:              "abc",
		Number:          "INV-0001",
		CustomerName:    "Aarav Enterprises",
		CustomerAddress: "101, MG Road, Bengaluru, KA 560001",
		Date:            "2024-02-01",
		DueDate:         "2024-03-01",
		Items: []models.LineItem{
			{ID: "i1", Description: "Consulting Hours", Quantity: 2, UnitPrice: 100, TaxRate: 10},
			{ID: "i2", Description: "On-site Support Visit", Quantity: 1.5, UnitPrice: 2000, TaxRate: 18},
		},
		Subtotal:   3200,
		TaxTotal:   560,
		GrandTotal: 3760,
		Status:     models.StatusPending,
		Notes:      "Payment due within 30 days.",
	}

	data, err := Render(inv)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, len(data), 500)
}

func TestRender_NoItemsNoNotes(t *testing.T) {
	inv := &models.Invoice{
		Number: "INV-0002",
		Date:   "2024-02-01",
		Status: models.StatusDraft,
	}

	data, err := Render(inv)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

package services

import (
	"strings"

	"github.com/dharanikaviyav/Invoice-Management/internal/models"
)

// FilterAll is the wildcard token for the status and client filters.
const FilterAll = "all"

// InvoiceFilter is the listing surface's filter criteria. Zero values (and
// FilterAll for Status/Client) impose no constraint.
type InvoiceFilter struct {
	Search    string // case-insensitive substring match on the invoice number
	Status    string // exact status equality, or "all"
	Client    string // exact customerId equality, or "all"
	DateStart string // inclusive YYYY-MM-DD lower bound on the invoice date
	DateEnd   string // inclusive YYYY-MM-DD upper bound on the invoice date
}

// FilterInvoices derives a filtered view over the given invoices. All
// predicates are conjunctive and the relative order of the input is
// preserved. The input is never mutated.
func FilterInvoices(invoices []models.Invoice, f InvoiceFilter) []models.Invoice {
	search := strings.ToLower(f.Search)
	result := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if search != "" && !strings.Contains(strings.ToLower(inv.Number), search) {
			continue
		}
		if f.Status != "" && f.Status != FilterAll && string(inv.Status) != f.Status {
			continue
		}
		if f.Client != "" && f.Client != FilterAll && inv.CustomerID != f.Client {
			continue
		}
		// Dates are canonical YYYY-MM-DD strings, so lexicographic
		// comparison is chronological.
		if f.DateStart != "" && inv.Date < f.DateStart {
			continue
		}
		if f.DateEnd != "" && inv.Date > f.DateEnd {
			continue
		}
		result = append(result, inv)
	}
	return result
}

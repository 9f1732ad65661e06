package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/dharanikaviyav/Invoice-Management/internal/models"
)

// ValidateDraft checks an invoice draft before it reaches the store. It
// enforces the engine's pre-conditions: at least one item, non-empty
// descriptions, quantity > 0, unitPrice >= 0 and 0 <= taxRate <= 100, with
// NaN/Inf rejected outright. Failures wrap ErrValidation.
func ValidateDraft(draft models.InvoiceDraft) error {
	if len(draft.Items) == 0 {
		return fmt.Errorf("%w: invoice must have at least one line item", ErrValidation)
	}
	if draft.Status != "" && !draft.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, draft.Status)
	}
	for i, item := range draft.Items {
		if err := validateItem(i, item); err != nil {
			return err
		}
	}
	return nil
}

func validateItem(i int, item models.LineItem) error {
	if strings.TrimSpace(item.Description) == "" {
		return fmt.Errorf("%w: item %d: description must not be empty", ErrValidation, i)
	}
	if !isFinite(item.Quantity) || !isFinite(item.UnitPrice) || !isFinite(item.TaxRate) {
		return fmt.Errorf("%w: item %d: numeric fields must be finite", ErrValidation, i)
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("%w: item %d: quantity must be positive", ErrValidation, i)
	}
	if item.UnitPrice < 0 {
		return fmt.Errorf("%w: item %d: unit price must not be negative", ErrValidation, i)
	}
	if item.TaxRate < 0 || item.TaxRate > 100 {
		return fmt.Errorf("%w: item %d: tax rate must be between 0 and 100", ErrValidation, i)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

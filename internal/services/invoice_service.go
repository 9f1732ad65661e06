package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/dharanikaviyav/Invoice-Management/internal/config"
	"github.com/dharanikaviyav/Invoice-Management/internal/models"
	"github.com/dharanikaviyav/Invoice-Management/internal/store"
	"github.com/dharanikaviyav/Invoice-Management/internal/utils"
)

// IInvoiceService defines the interface for the invoice repository. The
// boolean results of UpdateStatus and Delete are tagged outcomes: false
// means no record with that id existed, which is not an error.
type IInvoiceService interface {
	ListAll(ctx context.Context) ([]models.Invoice, error)
	FindByID(ctx context.Context, id string) (*models.Invoice, error)
	Create(ctx context.Context, draft models.InvoiceDraft) (*models.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status models.InvoiceStatus) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

const (
	invoicesKey   = "proinvoice_invoices"
	invoiceSeqKey = "proinvoice_invoice_seq"
)

// invoiceService implements IInvoiceService. Every mutation is a whole
// collection read-modify-write against the KV store; the mutex serializes
// them so numbering and read-your-writes hold under concurrent callers.
type invoiceService struct {
	kv  store.KV
	cfg *config.Config
	mu  sync.Mutex
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(kv store.KV, cfg *config.Config) IInvoiceService {
	return &invoiceService{
		kv:  kv,
		cfg: cfg,
	}
}

// loadAll reads the full invoice collection. A store that has never been
// written yields an empty slice.
func (s *invoiceService) loadAll(ctx context.Context) ([]models.Invoice, error) {
	data, found, err := s.kv.Get(ctx, invoicesKey)
	if err != nil {
		return nil, fmt.Errorf("%w: reading invoices: %v", ErrStorage, err)
	}
	if !found {
		return []models.Invoice{}, nil
	}
	var invoices []models.Invoice
	if err := json.Unmarshal(data, &invoices); err != nil {
		return nil, fmt.Errorf("%w: decoding invoices: %v", ErrStorage, err)
	}
	return invoices, nil
}

// saveAll persists the full collection in a single write.
func (s *invoiceService) saveAll(ctx context.Context, invoices []models.Invoice) error {
	data, err := json.Marshal(invoices)
	if err != nil {
		return fmt.Errorf("%w: encoding invoices: %v", ErrStorage, err)
	}
	if err := s.kv.Set(ctx, invoicesKey, data); err != nil {
		return fmt.Errorf("%w: writing invoices: %v", ErrStorage, err)
	}
	return nil
}

// nextNumber advances the persisted sequence counter and returns the
// formatted invoice number. The counter is written before the collection,
// so a create that fails afterwards burns a number instead of ever
// reusing one. When the counter key does not exist yet (legacy data) it is
// initialized from the current collection length.
func (s *invoiceService) nextNumber(ctx context.Context, collectionLen int) (string, error) {
	var seq uint64
	data, found, err := s.kv.Get(ctx, invoiceSeqKey)
	if err != nil {
		return "", fmt.Errorf("%w: reading invoice sequence: %v", ErrStorage, err)
	}
	if found {
		seq, err = strconv.ParseUint(string(data), 10, 64)
		if err != nil {
			return "", fmt.Errorf("%w: decoding invoice sequence: %v", ErrStorage, err)
		}
	} else {
		seq = uint64(collectionLen)
	}
	seq++
	if err := s.kv.Set(ctx, invoiceSeqKey, []byte(strconv.FormatUint(seq, 10))); err != nil {
		return "", fmt.Errorf("%w: writing invoice sequence: %v", ErrStorage, err)
	}
	return fmt.Sprintf("%s%0*d", s.cfg.InvoiceNumberPrefix, s.cfg.InvoiceNumberWidth, seq), nil
}

// ListAll returns every persisted invoice, most-recently-created first.
func (s *invoiceService) ListAll(ctx context.Context) ([]models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAll(ctx)
}

// FindByID returns the invoice with the given id, or ErrNotFound.
func (s *invoiceService) FindByID(ctx context.Context, id string) (*models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	invoices, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			inv := invoices[i]
			return &inv, nil
		}
	}
	return nil, fmt.Errorf("%w: invoice %s", ErrNotFound, id)
}

// Create validates the draft, assigns a fresh id and the next sequence
// number, recomputes totals from the draft's items (caller-supplied totals
// are never trusted) and prepends the record to the persisted collection.
func (s *invoiceService) Create(ctx context.Context, draft models.InvoiceDraft) (*models.Invoice, error) {
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	invoices, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	number, err := s.nextNumber(ctx, len(invoices))
	if err != nil {
		return nil, err
	}

	status := draft.Status
	if status == "" {
		status = models.StatusDraft
	}

	items := make([]models.LineItem, len(draft.Items))
	copy(items, draft.Items)
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = utils.NewID()
		}
	}

	totals := ComputeTotals(items)
	invoice := models.Invoice{
		ID:              utils.NewID(),
		Number:          number,
		CustomerID:      draft.CustomerID,
		CustomerName:    draft.CustomerName,
		CustomerAddress: draft.CustomerAddress,
		Date:            draft.Date,
		DueDate:         draft.DueDate,
		Items:           items,
		Subtotal:        totals.Subtotal,
		TaxTotal:        totals.TaxTotal,
		GrandTotal:      totals.GrandTotal,
		Status:          status,
		Notes:           draft.Notes,
	}

	updated := append([]models.Invoice{invoice}, invoices...)
	if err := s.saveAll(ctx, updated); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// UpdateStatus overwrites only the status field of the invoice with the
// given id and persists the collection. It returns false (and no error)
// when no such invoice exists, so callers can tell the two outcomes apart.
func (s *invoiceService) UpdateStatus(ctx context.Context, id string, status models.InvoiceStatus) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	invoices, err := s.loadAll(ctx)
	if err != nil {
		return false, err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			invoices[i].Status = status
			if err := s.saveAll(ctx, invoices); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Delete removes the invoice with the given id and persists the remaining
// collection. It returns false (and no error) when no such invoice exists.
func (s *invoiceService) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	invoices, err := s.loadAll(ctx)
	if err != nil {
		return false, err
	}
	remaining := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.ID != id {
			remaining = append(remaining, inv)
		}
	}
	if len(remaining) == len(invoices) {
		return false, nil
	}
	if err := s.saveAll(ctx, remaining); err != nil {
		return false, err
	}
	return true, nil
}

package models

// InvoiceStatus is the lifecycle state of an invoice. There is no enforced
// transition graph: any status is reachable from any other.
type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "Draft"
	StatusPending InvoiceStatus = "Pending"
	StatusPaid    InvoiceStatus = "Paid"
	StatusOverdue InvoiceStatus = "Overdue"
)

// Valid reports whether s is one of the known status tokens.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// LineItem is a single billable row on an invoice. It is owned exclusively
// by its parent invoice.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TaxRate     float64 `json:"taxRate"` // percentage, e.g. 10 for 10%
}

// Totals is the aggregation result over a sequence of line items.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	TaxTotal   float64 `json:"taxTotal"`
	GrandTotal float64 `json:"grandTotal"`
}

// Invoice is a persisted invoice record. CustomerName and CustomerAddress
// are snapshots taken at creation time; they must not be re-joined against
// the customer collection if the customer changes later.
type Invoice struct {
	ID              string        `json:"id"`
	Number          string        `json:"number"` // readable, e.g. INV-0001
	CustomerID      string        `json:"customerId"`
	CustomerName    string        `json:"customerName"`
	CustomerAddress string        `json:"customerAddress"`
	Date            string        `json:"date"`    // YYYY-MM-DD
	DueDate         string        `json:"dueDate"` // YYYY-MM-DD
	Items           []LineItem    `json:"items"`
	Subtotal        float64       `json:"subtotal"`
	TaxTotal        float64       `json:"taxTotal"`
	GrandTotal      float64       `json:"grandTotal"`
	Status          InvoiceStatus `json:"status"`
	Notes           string        `json:"notes,omitempty"`
}

// InvoiceDraft carries every invoice field the caller controls. ID, Number
// and the three totals are assigned by the invoice service at create time;
// totals present on the incoming payload are ignored and recomputed from
// Items.
type InvoiceDraft struct {
	CustomerID      string        `json:"customerId"`
	CustomerName    string        `json:"customerName"`
	CustomerAddress string        `json:"customerAddress"`
	Date            string        `json:"date"`
	DueDate         string        `json:"dueDate"`
	Items           []LineItem    `json:"items"`
	Status          InvoiceStatus `json:"status"`
	Notes           string        `json:"notes,omitempty"`
}

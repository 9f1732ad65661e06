package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dharanikaviyav/Invoice-Management/internal/models"
	"github.com/dharanikaviyav/Invoice-Management/internal/pdf"
	"github.com/dharanikaviyav/Invoice-Management/internal/services"
)

// RestInvoiceHandler handles REST requests for invoices.
type RestInvoiceHandler struct {
	invoiceService services.IInvoiceService
}

// NewRestInvoiceHandler creates a new RestInvoiceHandler.
func NewRestInvoiceHandler(invoiceService services.IInvoiceService) *RestInvoiceHandler {
	return &RestInvoiceHandler{
		invoiceService: invoiceService,
	}
}

// ListInvoices handles GET /v1/invoices. Optional query parameters
// (search, status, client, date_start, date_end) are applied through the
// filter layer; the repository's newest-first order is preserved.
func (h *RestInvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}

	filter := services.InvoiceFilter{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		Client:    c.Query("client"),
		DateStart: c.Query("date_start"),
		DateEnd:   c.Query("date_end"),
	}
	c.JSON(http.StatusOK, gin.H{"data": services.FilterInvoices(invoices, filter)})
}

// GetInvoiceByID handles GET /v1/invoices/:id
func (h *RestInvoiceHandler) GetInvoiceByID(c *gin.Context) {
	invoice, err := h.invoiceService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoice"})
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// CreateInvoice handles POST /v1/invoices. The body is an invoice draft;
// id, number and totals are assigned by the engine. Validation failures
// surface as 400 before anything is persisted.
func (h *RestInvoiceHandler) CreateInvoice(c *gin.Context) {
	var draft models.InvoiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice payload"})
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), draft)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// statusUpdateRequest is the PATCH body for a status change.
type statusUpdateRequest struct {
	Status models.InvoiceStatus `json:"status" binding:"required"`
}

// UpdateInvoiceStatus handles PATCH /v1/invoices/:id/status
func (h *RestInvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status payload"})
		return
	}

	updated, err := h.invoiceService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice status"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// DeleteInvoice handles DELETE /v1/invoices/:id
func (h *RestInvoiceHandler) DeleteInvoice(c *gin.Context) {
	deleted, err := h.invoiceService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invoice"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetInvoicePDF handles GET /v1/invoices/:id/pdf. It regenerates the print
// representation of the resolved invoice on demand.
func (h *RestInvoiceHandler) GetInvoicePDF(c *gin.Context) {
	invoice, err := h.invoiceService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoice"})
		return
	}

	data, err := pdf.Render(invoice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render invoice PDF"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", invoice.Number))
	c.Data(http.StatusOK, "application/pdf", data)
}

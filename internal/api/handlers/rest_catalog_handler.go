package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dharanikaviyav/Invoice-Management/internal/services"
)

// RestCatalogHandler handles REST requests for the customer and product
// reference data.
type RestCatalogHandler struct {
	catalogService services.ICatalogService
}

// NewRestCatalogHandler creates a new RestCatalogHandler.
func NewRestCatalogHandler(catalogService services.ICatalogService) *RestCatalogHandler {
	return &RestCatalogHandler{
		catalogService: catalogService,
	}
}

// ListCustomers handles GET /v1/customers. First access seeds the durable
// customer collection with the canonical set.
func (h *RestCatalogHandler) ListCustomers(c *gin.Context) {
	customers, err := h.catalogService.ListCustomers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customers})
}

// ListProducts handles GET /v1/products.
func (h *RestCatalogHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.catalogService.ListProducts()})
}

// MatchProduct handles GET /v1/products/match?description=... — the
// one-shot price autofill used when a line item's description is edited.
func (h *RestCatalogHandler) MatchProduct(c *gin.Context) {
	description := c.Query("description")
	price, ok := h.catalogService.MatchProductPrice(description)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No matching product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unitPrice": price})
}

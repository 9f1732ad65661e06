package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dharanikaviyav/Invoice-Management/internal/api/handlers"
	"github.com/dharanikaviyav/Invoice-Management/internal/api/middleware"
	"github.com/dharanikaviyav/Invoice-Management/internal/config"
	"github.com/dharanikaviyav/Invoice-Management/internal/services"
	"github.com/dharanikaviyav/Invoice-Management/internal/store"
)

// SetupRouter configures and returns the main Gin engine.
func SetupRouter(cfg *config.Config, kv store.KV) *gin.Engine {
	// Initialize services needed by API handlers HERE
	invoiceService := services.NewInvoiceService(kv, cfg)
	catalogService := services.NewCatalogService(kv, cfg)

	r := gin.Default()

	// Initialize Middleware
	rateLimiter := middleware.NewRateLimiterMiddleware(cfg)

	// Apply global middleware first (order matters)
	r.Use(middleware.CORSMiddleware())
	r.Use(rateLimiter.Limit())

	// Initialize handlers
	restInvoiceHandler := handlers.NewRestInvoiceHandler(invoiceService)
	restCatalogHandler := handlers.NewRestCatalogHandler(catalogService)

	v1 := r.Group("/v1")
	{
		// Invoice routes
		v1.GET("/invoices", restInvoiceHandler.ListInvoices)
		v1.POST("/invoices", restInvoiceHandler.CreateInvoice)
		v1.GET("/invoices/:id", restInvoiceHandler.GetInvoiceByID)
		v1.PATCH("/invoices/:id/status", restInvoiceHandler.UpdateInvoiceStatus)
		v1.DELETE("/invoices/:id", restInvoiceHandler.DeleteInvoice)
		v1.GET("/invoices/:id/pdf", restInvoiceHandler.GetInvoicePDF)

		// Catalog routes
		v1.GET("/customers", restCatalogHandler.ListCustomers)
		v1.GET("/products", restCatalogHandler.ListProducts)
		v1.GET("/products/match", restCatalogHandler.MatchProduct)

		v1.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})
	}

	return r
}

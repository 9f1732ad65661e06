package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/dharanikaviyav/Invoice-Management/internal/config"
	"github.com/dharanikaviyav/Invoice-Management/internal/models"
	"github.com/dharanikaviyav/Invoice-Management/internal/store"
)

// ICatalogService defines read-only access to the reference data: the
// durable customer collection and the static product price list.
type ICatalogService interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	ListProducts() []models.Product
	MatchProductPrice(description string) (float64, bool)
}

const customersKey = "proinvoice_customers"

// catalogService implements ICatalogService.
type catalogService struct {
	kv  store.KV
	cfg *config.Config
	mu  sync.Mutex
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(kv store.KV, cfg *config.Config) ICatalogService {
	return &catalogService{
		kv:  kv,
		cfg: cfg,
	}
}

// ListCustomers returns the durable customer collection. On first access —
// or when the stored collection turns out to be a legacy/truncated seed
// (shorter than the configured minimum) or undecodable — it rewrites the
// canonical seed set and returns that. The guard is idempotent: once a
// full set is stored, subsequent calls return it unchanged.
func (s *catalogService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, found, err := s.kv.Get(ctx, customersKey)
	if err != nil {
		return nil, fmt.Errorf("%w: reading customers: %v", ErrStorage, err)
	}
	if found {
		var customers []models.Customer
		if err := json.Unmarshal(data, &customers); err == nil && len(customers) >= s.cfg.CustomerSeedMin {
			return customers, nil
		}
		log.Printf("Stored customer collection is legacy or unreadable, re-seeding with canonical set.")
	}
	if err := s.writeSeed(ctx); err != nil {
		return nil, err
	}
	return seedCustomers(), nil
}

func (s *catalogService) writeSeed(ctx context.Context) error {
	data, err := json.Marshal(seedCustomers())
	if err != nil {
		return fmt.Errorf("%w: encoding customer seed: %v", ErrStorage, err)
	}
	if err := s.kv.Set(ctx, customersKey, data); err != nil {
		return fmt.Errorf("%w: writing customer seed: %v", ErrStorage, err)
	}
	return nil
}

// ListProducts returns the static product catalog.
func (s *catalogService) ListProducts() []models.Product {
	products := make([]models.Product, len(productCatalog))
	copy(products, productCatalog)
	return products
}

// MatchProductPrice looks up a product whose name matches the description
// case-insensitively and returns its unit price. This is a one-shot fill
// for the moment a line item's description is set, not a live binding.
func (s *catalogService) MatchProductPrice(description string) (float64, bool) {
	for _, p := range productCatalog {
		if strings.EqualFold(p.Name, description) {
			return p.UnitPrice, true
		}
	}
	return 0, false
}

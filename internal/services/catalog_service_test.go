package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharanikaviyav/Invoice-Management/internal/models"
	"github.com/dharanikaviyav/Invoice-Management/internal/store"
)

func newTestCatalogService() (ICatalogService, *store.MemoryStore) {
	kv := store.NewMemoryStore()
	return NewCatalogService(kv, testConfig()), kv
}

func TestCatalogService_ListCustomers_SeedsOnFirstAccess(t *testing.T) {
	svc, kv := newTestCatalogService()
	ctx := context.Background()

	customers, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 100)
	assert.Equal(t, "c1", customers[0].ID)
	assert.Equal(t, "Aarav Enterprises", customers[0].Name)

	// The seed was written to the durable store.
	data, found, err := kv.Get(ctx, customersKey)
	require.NoError(t, err)
	require.True(t, found)
	var stored []models.Customer
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, customers, stored)

	// A second call returns the same set without duplicating it.
	again, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, customers, again)
}

func TestCatalogService_ListCustomers_KeepsStoredSet(t *testing.T) {
	svc, kv := newTestCatalogService()
	ctx := context.Background()

	// A full-size stored collection is returned unchanged, even though it
	// differs from the canonical seed.
	stored := seedCustomers()
	stored[0].Name = "Renamed By User"
	data, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, customersKey, data))

	customers, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Renamed By User", customers[0].Name)
}

func TestCatalogService_ListCustomers_ReseedsLegacyShortSet(t *testing.T) {
	svc, kv := newTestCatalogService()
	ctx := context.Background()

	legacy := []models.Customer{{ID: "c1", Name: "Old Seed"}}
	data, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, customersKey, data))

	customers, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 100)
	assert.Equal(t, "Aarav Enterprises", customers[0].Name)
}

func TestCatalogService_ListCustomers_ReseedsCorruptBlob(t *testing.T) {
	svc, kv := newTestCatalogService()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, customersKey, []byte("{not json")))

	customers, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 100)
}

func TestCatalogService_ListProducts(t *testing.T) {
	svc, _ := newTestCatalogService()

	products := svc.ListProducts()
	require.Len(t, products, 10)
	assert.Equal(t, "Web Development Services", products[0].Name)
	assert.Equal(t, 5000.0, products[0].UnitPrice)

	// Callers get a copy, not the catalog itself.
	products[0].UnitPrice = 1
	assert.Equal(t, 5000.0, svc.ListProducts()[0].UnitPrice)
}

func TestCatalogService_MatchProductPrice(t *testing.T) {
	svc, _ := newTestCatalogService()

	price, ok := svc.MatchProductPrice("consulting hours")
	assert.True(t, ok)
	assert.Equal(t, 2500.0, price)

	price, ok = svc.MatchProductPrice("CONSULTING HOURS")
	assert.True(t, ok)
	assert.Equal(t, 2500.0, price)

	// Exact-name match only, no substrings.
	_, ok = svc.MatchProductPrice("consulting")
	assert.False(t, ok)

	_, ok = svc.MatchProductPrice("no such product")
	assert.False(t, ok)
}

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_GetAbsentKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	value, found, err := s.Get(context.Background(), "proinvoice_invoices")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestFileStore_SetAndGet(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "proinvoice_invoices", []byte(`[{"id":"a"}]`)))

	value, found, err := s.Get(ctx, "proinvoice_invoices")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[{"id":"a"}]`), value)

	// Overwrite replaces the whole value.
	require.NoError(t, s.Set(ctx, "proinvoice_invoices", []byte(`[]`)))
	value, found, err = s.Get(ctx, "proinvoice_invoices")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[]`), value)
}

func TestFileStore_ValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "proinvoice_customers", []byte(`[]`)))

	second, err := NewFileStore(dir)
	require.NoError(t, err)
	value, found, err := second.Get(ctx, "proinvoice_customers")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[]`), value)
}

func TestFileStore_KeysAreIndependent(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "b", []byte("2")))

	value, found, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("1"), value)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	original := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", original))
	original[0] = 'z'

	value, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("abc"), value)

	value[1] = 'z'
	again, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

// Package store provides the durable key-value blob store behind the
// invoice and customer collections. Each named collection is serialized as
// a single JSON value under its own key; callers perform whole-value
// read-modify-write cycles and are responsible for serializing writers.
package store

import "context"

// KV is a flat key-addressed record store. Get reports absence via the
// second return value rather than an error, so callers can distinguish
// "never written" from a failed read.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

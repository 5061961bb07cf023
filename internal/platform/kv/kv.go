// Package kv is the persisted key-value store shared by the catalog and
// the profile preferences. Values are opaque strings.
package kv

import "context"

// Store gets and sets string values by key. Get returns
// apperrors.ErrNotFound for an absent key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
